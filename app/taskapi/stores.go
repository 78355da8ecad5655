package main

import (
	"context"
	"fmt"

	"github.com/jrazmi/taskapi/app/taskapi/config"
	"github.com/jrazmi/taskapi/bridge/checkbridge"
	"github.com/jrazmi/taskapi/core/repositories/tasksrepo"
	"github.com/jrazmi/taskapi/core/repositories/tasksrepo/stores/tasksgormstore"
	"github.com/jrazmi/taskapi/core/repositories/tasksrepo/stores/tasksmemstore"
	"github.com/jrazmi/taskapi/core/repositories/tasksrepo/stores/taskspgxstore"
	"github.com/jrazmi/taskapi/infrastructure/postgresdb"
	"github.com/jrazmi/taskapi/infrastructure/sqlitedb"
	"github.com/jrazmi/taskapi/sdk/logger"
)

// store is an opened task store with its readiness check and cleanup.
type store struct {
	storer tasksrepo.Storer
	check  checkbridge.StatusCheck
	close  func()
}

func openStore(ctx context.Context, log *logger.Logger, cfg config.Config) (store, error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		db, err := sqlitedb.NewFromEnv(appName, sqlitedb.WithLogger(log))
		if err != nil {
			return store{}, err
		}

		s := tasksgormstore.NewStore(log, db)
		if cfg.MigrateOnStart {
			if err := s.Migrate(ctx); err != nil {
				sqlitedb.Close(db)
				return store{}, err
			}
		}

		return store{
			storer: s,
			check:  func(ctx context.Context) error { return sqlitedb.StatusCheck(ctx, db) },
			close:  func() { sqlitedb.Close(db) },
		}, nil

	case config.DriverMemory:
		return store{
			storer: tasksmemstore.NewStore(),
			close:  func() {},
		}, nil

	default:
		pool, err := postgresdb.NewFromEnv(appName, postgresdb.WithLogger(log.Logger))
		if err != nil {
			return store{}, err
		}

		if cfg.MigrateOnStart {
			if err := postgresdb.Migrate(ctx, pool, log.Logger); err != nil {
				pool.Close()
				return store{}, fmt.Errorf("migrating: %w", err)
			}
		}

		return store{
			storer: taskspgxstore.NewStore(log, pool),
			check:  func(ctx context.Context) error { return postgresdb.StatusCheck(ctx, pool) },
			close:  pool.Close,
		}, nil
	}
}
