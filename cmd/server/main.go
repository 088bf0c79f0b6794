// Package main runs the course API server.
//
// Without flags it serves HTTP on the configured port until SIGINT or
// SIGTERM. With -migrate it runs a migration command against the configured
// PostgreSQL database and exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/coursekit/course-api/internal/config"
	"github.com/coursekit/course-api/internal/platform/logger"
)

func main() {
	log.SetPrefix("course-api: ")
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("Fatal error: %s", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	migrate := fs.String("migrate", "", "Run a migration command (up, down, reset, status, version) and exit")
	configFile := fs.String("config", "", "Path to a YAML config file")
	envFile := fs.String("env-file", ".env", "Path to a .env file, ignored when missing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(config.WithConfigFile(*configFile), config.WithEnvFile(*envFile))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	l.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("store_driver", cfg.Store.Driver),
		slog.String("files_fs", cfg.Files.FS))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *migrate != "" {
		return runMigrations(ctx, cfg, *migrate, l)
	}

	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}
