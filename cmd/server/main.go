// Package main implements the entry point for the Ami auth server,
// which handles account signup and login for the Ami frontend.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real environment variables take precedence.
	_ = godotenv.Load()

	ctx := context.Background()

	app, err := initializeApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components:
// logging, the database connection, schema migrations and the dependency
// graph. Returns the application or any initialization error.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return nil, err
	}

	db, err := setupAppDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	// Schema setup is fatal on failure: without the unique email index the
	// service would silently degrade to advisory-only duplicate protection.
	if err := runMigrations(ctx, db, logger); err != nil {
		return nil, err
	}

	return newApplication(cfg, logger, db)
}
