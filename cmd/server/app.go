package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/amihq/ami-auth/internal/config"
	"github.com/amihq/ami-auth/internal/platform/postgres"
	"github.com/amihq/ami-auth/internal/service/auth"
	"github.com/amihq/ami-auth/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	accountStore store.AccountStore

	// Service interfaces
	passwordHasher auth.PasswordHasher
	authService    auth.AuthService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize password hasher (0 selects the default bcrypt cost)
	app.passwordHasher = auth.NewBcryptHasher(0)

	// Initialize stores
	app.accountStore = postgres.NewPostgresAccountStore(db, logger)

	// Initialize the auth service
	app.authService = auth.NewAuthService(app.accountStore, app.passwordHasher, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
