// Package schema contains embedded migration files.
package schema

import "embed"

// MigrationsFS contains the Postgres migrations applied in file name order.
//
//go:embed pgmigrations/*.sql
var MigrationsFS embed.FS

// MigrationsDir is the directory inside MigrationsFS holding the files.
const MigrationsDir = "pgmigrations"
