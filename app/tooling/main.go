package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jrazmi/taskapi/app/tooling/commands"
	"github.com/jrazmi/taskapi/core/repositories/tasksrepo"
	"github.com/jrazmi/taskapi/core/repositories/tasksrepo/stores/tasksgormstore"
	"github.com/jrazmi/taskapi/core/repositories/tasksrepo/stores/taskspgxstore"
	"github.com/jrazmi/taskapi/infrastructure/postgresdb"
	"github.com/jrazmi/taskapi/infrastructure/sqlitedb"
	"github.com/jrazmi/taskapi/sdk/environment"
	"github.com/jrazmi/taskapi/sdk/logger"
	"github.com/spf13/cobra"
)

var build = "develop"
var appName = "TOOLING"

var (
	driver    string
	seedCount int
	log       *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:     "tooling",
	Short:   "Database tooling for the task service",
	Version: build,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch driver {
		case "postgres", "sqlite":
		default:
			return fmt.Errorf("unknown driver %q: want postgres or sqlite", driver)
		}

		var err error
		log, err = logger.NewFromEnv(appName, logger.WithService(appName))
		if err != nil {
			return fmt.Errorf("configuring logger: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the tasks schema",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo tasks",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&driver, "driver", "postgres", "store driver: postgres or sqlite")
	seedCmd.Flags().IntVarP(&seedCount, "count", "n", 12, "number of tasks to create")

	rootCmd.AddCommand(migrateCmd, seedCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if driver == "sqlite" {
		db, err := sqlitedb.NewFromEnv(appName, sqlitedb.WithLogger(log))
		if err != nil {
			return fmt.Errorf("configuring sqlite support: %w", err)
		}
		defer sqlitedb.Close(db)

		return commands.MigrateSQLite(ctx, log, tasksgormstore.NewStore(log, db))
	}

	pool, err := postgresdb.NewFromEnv(appName, postgresdb.WithTracer(postgresdb.NewLoggingQueryTracer(log.Logger)))
	if err != nil {
		return fmt.Errorf("configuring postgres support: %w", err)
	}
	defer func() {
		log.InfoContext(ctx, "shutdown", "status", "closing database connection")
		pool.Close()
	}()

	return commands.MigratePostgres(ctx, log, pool)
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if seedCount < 1 {
		return errors.New("count must be at least 1")
	}

	var storer tasksrepo.Storer
	if driver == "sqlite" {
		db, err := sqlitedb.NewFromEnv(appName, sqlitedb.WithLogger(log))
		if err != nil {
			return fmt.Errorf("configuring sqlite support: %w", err)
		}
		defer sqlitedb.Close(db)

		storer = tasksgormstore.NewStore(log, db)
	} else {
		pool, err := postgresdb.NewFromEnv(appName, postgresdb.WithLogger(log.Logger))
		if err != nil {
			return fmt.Errorf("configuring postgres support: %w", err)
		}
		defer pool.Close()

		storer = taskspgxstore.NewStore(log, pool)
	}

	ids, err := commands.Seed(ctx, log, tasksrepo.NewRepository(log, storer), seedCount, time.Now())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d tasks (ids %d-%d)\n", len(ids), ids[0], ids[len(ids)-1])
	return nil
}

func main() {
	environment.LoadEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
