// Package postgres connects the order log archive to PostgreSQL.
//
// The archive is write-only: every saved order log becomes a snapshot row
// with one child row per order, and nothing is ever loaded back into the
// in-memory order store.
//
// Connection setup:
//
//	db, err := postgres.Open(ctx, postgres.Config{
//	    Host: "localhost", Port: "5432", User: "app", Password: "secret",
//	    DBName: "orders", SSLMode: "disable",
//	})
//	if err != nil {
//	    return err
//	}
//	if err := postgres.Migrate(db); err != nil {
//	    return err
//	}
//	archive := orderlogrepo.NewGormOrderLogRepository(db)
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	"ordertracker/internal/adapters/out/postgres/orderlogrepo"

	_ "github.com/lib/pq" // registers the "postgres" database/sql driver
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds the connection parameters of the archive database.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN renders the configuration as a lib/pq connection URL.
func (c Config) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     c.DBName,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}

// Open opens a lib/pq connection pool, checks it and wraps it in GORM.
func Open(ctx context.Context, cfg Config) (*gorm.DB, error) {
	return OpenDSN(ctx, cfg.DSN())
}

// OpenDSN is Open for an already rendered connection string.
func OpenDSN(ctx context.Context, dsn string) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		return nil, errors.Join(fmt.Errorf("ping postgres: %w", err), sqlDB.Close())
	}

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, errors.Join(fmt.Errorf("open gorm: %w", err), sqlDB.Close())
	}
	return db, nil
}

// Migrate creates or updates the archive tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&orderlogrepo.OrderLogSnapshotDTO{}, &orderlogrepo.OrderLogEntryDTO{})
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
