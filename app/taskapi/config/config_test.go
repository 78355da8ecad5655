package config_test

import (
	"testing"

	"github.com/jrazmi/taskapi/app/taskapi/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("CFGTEST")
	require.NoError(t, err)

	assert.Equal(t, config.DriverPostgres, cfg.StoreDriver)
	assert.Equal(t, "", cfg.APIRoute)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.False(t, cfg.MigrateOnStart)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("CFGTEST_STORE_DRIVER", "SQLite")
	t.Setenv("CFGTEST_API_ROUTE", "api/v1/")
	t.Setenv("CFGTEST_CORS_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("CFGTEST_MIGRATE_ON_START", "true")

	cfg, err := config.Load("CFGTEST")
	require.NoError(t, err)

	assert.Equal(t, config.DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "/api/v1", cfg.APIRoute)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.True(t, cfg.MigrateOnStart)
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("CFGTEST_STORE_DRIVER", "mongo")

	_, err := config.Load("CFGTEST")
	assert.ErrorContains(t, err, "mongo")
}
