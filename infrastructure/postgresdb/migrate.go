package postgresdb

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jrazmi/taskapi/schema"
)

// ErrChecksumMismatch is returned when an applied migration file was edited.
var ErrChecksumMismatch = errors.New("checksum mismatch")

// Migrate runs all pending migrations from schema/pgmigrations/*.sql.
// Files are applied in name order (001_xxx.sql, 002_xxx.sql) and tracked
// in schema_migrations. Forward only.
func Migrate(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	if err := StatusCheck(ctx, pool); err != nil {
		return fmt.Errorf("status check database: %w", err)
	}

	log.InfoContext(ctx, "running database migrations")

	applied, err := runMigrations(ctx, pool, log, schema.MigrationsFS, schema.MigrationsDir)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	log.InfoContext(ctx, "migrations complete", "applied", applied)
	return nil
}

func runMigrations(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger, fsys fs.FS, dir string) (int, error) {
	if err := createMigrationsTable(ctx, pool); err != nil {
		return 0, fmt.Errorf("create migrations table: %w", err)
	}

	files, err := migrationFiles(fsys, dir)
	if err != nil {
		return 0, fmt.Errorf("get migration files: %w", err)
	}

	var applied int
	for _, file := range files {
		ok, err := applyMigration(ctx, pool, log, fsys, path.Join(dir, file))
		if err != nil {
			return applied, fmt.Errorf("apply migration %s: %w", file, err)
		}
		if ok {
			applied++
		}
	}

	return applied, nil
}

func createMigrationsTable(ctx context.Context, pool *pgxpool.Pool) error {
	const q = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version    VARCHAR(255) PRIMARY KEY,
		checksum   VARCHAR(64) NOT NULL,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

	_, err := pool.Exec(ctx, q)
	return err
}

// migrationFiles returns the sorted base names of the .sql files in dir.
func migrationFiles(fsys fs.FS, dir string) ([]string, error) {
	var files []string

	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".sql") {
			files = append(files, path.Base(p))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func checksum(content []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(content))
}

// applyMigration applies one file unless it was applied before. It reports
// whether the file was applied by this call.
func applyMigration(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger, fsys fs.FS, filePath string) (bool, error) {
	version := path.Base(filePath)

	content, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return false, fmt.Errorf("read migration file: %w", err)
	}
	sum := checksum(content)

	var existing string
	err = pool.QueryRow(ctx, "SELECT checksum FROM schema_migrations WHERE version = $1", version).Scan(&existing)
	switch {
	case err == nil:
		if existing != sum {
			return false, fmt.Errorf("%w: %s was modified after being applied (expected %s, got %s)", ErrChecksumMismatch, version, existing, sum)
		}
		log.DebugContext(ctx, "migration already applied", "version", version)
		return false, nil

	case !errors.Is(err, pgx.ErrNoRows):
		return false, fmt.Errorf("lookup migration: %w", err)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, string(content)); err != nil {
		return false, fmt.Errorf("execute migration: %w", err)
	}

	if _, err := tx.Exec(ctx, "INSERT INTO schema_migrations (version, checksum) VALUES ($1, $2)", version, sum); err != nil {
		return false, fmt.Errorf("record migration: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit transaction: %w", err)
	}

	log.InfoContext(ctx, "migration applied", "version", version, "checksum", sum[:8])
	return true, nil
}
