package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ordertracker/cmd"
	httpin "ordertracker/internal/adapters/in/http"
	"ordertracker/internal/adapters/out/amqp"
	"ordertracker/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	mode := flag.String("mode", "", "input adapter: cli, http or mcp (overrides APP_MODE)")
	flag.Parse()

	configs := getConfigs()
	if *mode != "" {
		configs.AppMode = *mode
	}
	if err := configs.Validate(); err != nil {
		log.Fatal(err)
	}

	logger := newLogger(configs)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := openArchive(ctx, configs, logger)
	if gormDB != nil {
		defer func() {
			if err := postgres.Close(gormDB); err != nil {
				logger.Error("Failed to close archive database", "error", err)
			}
		}()
	}

	var publisher amqp.Publisher
	if configs.NotificationsEnabled() {
		conn, err := amqp.Dial(configs.AMQPURL, logger)
		if err != nil {
			log.Fatalf("Error connecting to RabbitMQ: %v", err)
		}
		defer func() {
			if err := conn.Close(); err != nil {
				logger.Error("Failed to close RabbitMQ connection", "error", err)
			}
		}()
		publisher = conn.Channel()
	}

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, noticeWriter(configs), logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	if err := run(ctx, app, configs, logger); err != nil {
		logger.Error("Order tracker stopped with error", "error", err)
		os.Exit(1)
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	return cmd.Config{
		AppMode:          os.Getenv("APP_MODE"),
		HTTPPort:         os.Getenv("HTTP_PORT"),
		OrderLogFile:     os.Getenv("ORDER_LOG_FILE"),
		AutosaveSchedule: os.Getenv("AUTOSAVE_SCHEDULE"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           os.Getenv("DB_PORT"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBSslMode:        os.Getenv("DB_SSLMODE"),
		AMQPURL:          os.Getenv("AMQP_URL"),
		LogLevel:         os.Getenv("LOG_LEVEL"),
	}
}

// newLogger writes JSON logs to stdout for the HTTP server and to stderr
// otherwise, where stdout belongs to the menu or the MCP protocol.
func newLogger(configs cmd.Config) *slog.Logger {
	var out io.Writer = os.Stderr
	if configs.Mode() == cmd.ModeHTTP {
		out = os.Stdout
	}

	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)
	return logger
}

func noticeWriter(configs cmd.Config) io.Writer {
	if configs.Mode() == cmd.ModeMCP {
		return os.Stderr
	}
	return os.Stdout
}

func openArchive(ctx context.Context, configs cmd.Config, logger *slog.Logger) *gorm.DB {
	if !configs.ArchiveEnabled() {
		return nil
	}

	gormDB, err := postgres.Open(ctx, configs.Postgres())
	if err != nil {
		log.Fatalf("Error connecting to archive database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating archive database: %v", err)
	}

	logger.Info("Order log archive enabled", "host", configs.DBHost, "database", configs.DBName)
	return gormDB
}

func run(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) error {
	switch configs.Mode() {
	case cmd.ModeHTTP:
		return runHTTP(ctx, app, configs.Port(), logger)
	case cmd.ModeMCP:
		return runMCP(ctx, app, logger)
	default:
		return runCLI(ctx, app)
	}
}

func runHTTP(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e, err := httpin.NewEcho(ctx, app.CreateHTTPServer(), app.CreateServerMetrics())
	if err != nil {
		return fmt.Errorf("build http server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func runMCP(ctx context.Context, app *cmd.CompositionRoot, logger *slog.Logger) error {
	logger.Info("MCP server listening on stdio")
	err := app.CreateMCPServer().Serve(ctx, os.Stdin, os.Stdout, os.Stderr)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// runCLI runs the menu until Exit, the end of stdin or a signal.
func runCLI(ctx context.Context, app *cmd.CompositionRoot) error {
	return app.CreateMenu(os.Stdin, os.Stdout).Run(ctx)
}
