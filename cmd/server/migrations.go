package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/amihq/ami-auth/internal/platform/postgres"
)

// runMigrations applies the embedded schema migrations, establishing the
// accounts table and its unique email index. Idempotent; a failure here
// aborts startup.
func runMigrations(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if err := postgres.EnsureSchema(ctx, db, logger); err != nil {
		return fmt.Errorf("failed to ensure database schema: %w", err)
	}
	return nil
}
