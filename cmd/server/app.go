package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"go.uber.org/multierr"

	"github.com/coursekit/course-api/internal/api"
	"github.com/coursekit/course-api/internal/config"
	"github.com/coursekit/course-api/internal/platform/blob"
	"github.com/coursekit/course-api/internal/platform/memory"
	"github.com/coursekit/course-api/internal/platform/postgres"
	"github.com/coursekit/course-api/internal/service"
	"github.com/coursekit/course-api/internal/service/auth"
	"github.com/coursekit/course-api/internal/store"
)

// application holds the shared dependencies of the server and releases
// them on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil for the memory store.
	db *sql.DB

	stores     store.Stores
	transactor store.Transactor
	blobs      *blob.Storage
	jwtService auth.JWTService
	hasher     *auth.BcryptVerifier
}

// newApplication opens the configured backends and builds the services.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		hasher: auth.NewBcryptVerifier(cfg.Auth.BcryptCost),
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	switch cfg.Store.Driver {
	case "postgres":
		app.db, err = postgres.Open(ctx, cfg.Database.URL, logger)
		if err != nil {
			return nil, err
		}
		app.stores = postgres.NewStores(app.db, logger)
		app.transactor = postgres.NewTransactor(app.db, logger)
	case "memory":
		db := memory.New()
		app.stores = db.Stores()
		app.transactor = db
		logger.Warn("using in-memory store, data is lost on restart")
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	app.blobs, err = blob.NewFromConfig(cfg.Files, logger)
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("failed to initialize file storage: %w", err), app.Close())
	}

	logger.Info("application initialized")
	return app, nil
}

// Handler builds the HTTP router over the application services.
func (app *application) Handler() http.Handler {
	return api.NewRouter(api.RouterConfig{
		Logger:        app.logger,
		JWTService:    app.jwtService,
		Tokens:        auth.NewAuthenticator(app.stores.Users, app.jwtService, app.hasher, app.logger),
		Users:         service.NewUserService(app.stores.Users, app.transactor, app.hasher, app.logger),
		Files:         service.NewFileService(app.stores.Files, app.blobs, app.logger),
		Courses:       service.NewCourseService(app.stores, app.transactor, app.logger),
		Exercises:     service.NewExerciseService(app.stores, app.transactor, app.logger),
		Static:        app.blobs.HTTPFileSystem(),
		PublicBaseURL: app.config.Server.PublicBaseURL,
	})
}

// Close releases every backend the application opened.
func (app *application) Close() error {
	var err error
	if app.db != nil {
		err = multierr.Append(err, app.db.Close())
	}
	if err != nil {
		app.logger.Error("failed to release resources", slog.String("error", err.Error()))
	}
	return err
}

// runMigrations executes a goose command against the configured database.
func runMigrations(ctx context.Context, cfg *config.Config, command string, logger *slog.Logger) (err error) {
	if cfg.Store.Driver != "postgres" {
		return fmt.Errorf("migrations require the postgres store, got %q", cfg.Store.Driver)
	}
	db, err := postgres.Open(ctx, cfg.Database.URL, logger)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, db.Close()) }()

	return postgres.Migrate(ctx, db, command, logger)
}
