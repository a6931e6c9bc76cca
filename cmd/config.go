package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"ordertracker/internal/adapters/out/postgres"
)

// Application modes selecting the input adapter.
const (
	ModeCLI  = "cli"
	ModeHTTP = "http"
	ModeMCP  = "mcp"
)

type Config struct {
	AppMode          string
	HTTPPort         string
	OrderLogFile     string
	AutosaveSchedule string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	AMQPURL          string
	LogLevel         string
}

// Validate checks the settings that have no usable fallback.
func (c Config) Validate() error {
	switch c.Mode() {
	case ModeCLI, ModeHTTP, ModeMCP:
		return nil
	default:
		return fmt.Errorf("unknown app mode %q, want %s, %s or %s", c.AppMode, ModeCLI, ModeHTTP, ModeMCP)
	}
}

// Mode returns the normalized application mode, defaulting to ModeCLI.
func (c Config) Mode() string {
	if c.AppMode == "" {
		return ModeCLI
	}
	return strings.ToLower(c.AppMode)
}

// Port returns the HTTP port, defaulting to 8080.
func (c Config) Port() string {
	if c.HTTPPort == "" {
		return "8080"
	}
	return c.HTTPPort
}

// ArchiveEnabled reports whether order logs are also archived to PostgreSQL.
func (c Config) ArchiveEnabled() bool {
	return c.DBHost != ""
}

// NotificationsEnabled reports whether refunds are also published to RabbitMQ.
func (c Config) NotificationsEnabled() bool {
	return c.AMQPURL != ""
}

// Postgres returns the archive connection parameters.
func (c Config) Postgres() postgres.Config {
	return postgres.Config{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error"), defaulting to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
