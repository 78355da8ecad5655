// Package commands holds the operations run by the tooling binary.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/jrazmi/taskapi/core/repositories/tasksrepo/stores/tasksgormstore"
	"github.com/jrazmi/taskapi/infrastructure/postgresdb"
	"github.com/jrazmi/taskapi/sdk/logger"
)

// migrateTimeout bounds a whole migration run.
const migrateTimeout = 5 * time.Minute

// MigratePostgres applies the pending schema migrations.
func MigratePostgres(ctx context.Context, log *logger.Logger, pool *postgresdb.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, migrateTimeout)
	defer cancel()

	log.InfoContext(ctx, "migration started", "step", "checking database status")

	if err := postgresdb.StatusCheck(ctx, pool); err != nil {
		return fmt.Errorf("database status check failed: %w", err)
	}

	log.InfoContext(ctx, "database status check successful", "step", "running migrations")

	if err := postgresdb.Migrate(ctx, pool, log.Logger); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	log.InfoContext(ctx, "migrations completed successfully")
	return nil
}

// MigrateSQLite creates or updates the tasks table of an SQLite database.
func MigrateSQLite(ctx context.Context, log *logger.Logger, store *tasksgormstore.Store) error {
	ctx, cancel := context.WithTimeout(ctx, migrateTimeout)
	defer cancel()

	log.InfoContext(ctx, "migration started", "driver", "sqlite")

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	log.InfoContext(ctx, "migrations completed successfully")
	return nil
}
