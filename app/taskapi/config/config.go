// Package config holds the settings of the taskapi service.
package config

import (
	"fmt"
	"strings"

	"github.com/jrazmi/taskapi/sdk/environment"
)

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config is the service level configuration.
type Config struct {
	StoreDriver    string   `env:"STORE_DRIVER" default:"postgres"`
	APIRoute       string   `env:"API_ROUTE"`
	CORSOrigins    []string `env:"CORS_ORIGINS" default:"*" separator:","`
	MigrateOnStart bool     `env:"MIGRATE_ON_START" default:"false"`
}

// Load reads the configuration from prefixed environment variables.
func Load(prefix string) (Config, error) {
	var cfg Config
	if err := environment.ParseEnvTags(prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing service config: %w", err)
	}

	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	switch cfg.StoreDriver {
	case DriverPostgres, DriverSQLite, DriverMemory:
	default:
		return Config{}, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	cfg.APIRoute = "/" + strings.Trim(cfg.APIRoute, "/")
	if cfg.APIRoute == "/" {
		cfg.APIRoute = ""
	}

	return cfg, nil
}
