// Package sqlitedb opens an embedded SQLite database through gorm.
package sqlitedb

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jrazmi/taskapi/sdk/environment"
	"github.com/jrazmi/taskapi/sdk/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Options represents the exportable database configuration.
type Options struct {
	Path          string        `env:"SQLITE_PATH" default:"tasks.db"`
	LogLevel      string        `env:"SQLITE_LOG_LEVEL" default:"silent"`
	SlowThreshold time.Duration `env:"SQLITE_SLOW_THRESHOLD" default:"200ms"`
}

type options struct {
	path          string
	logLevel      gormlogger.LogLevel
	slowThreshold time.Duration
	log           *logger.Logger
}

// Option is a function that configures the database options.
type Option func(*options)

// WithPath overrides the database file.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithLogger routes gorm's statement log through log.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithLogLevel sets gorm's log level: silent, error, warn or info.
func WithLogLevel(level string) Option {
	return func(o *options) {
		o.logLevel = parseLogLevel(level)
	}
}

// NewFromEnv opens the database configured by prefixed environment variables.
func NewFromEnv(prefix string, opts ...Option) (*gorm.DB, error) {
	var cfg Options
	if err := environment.ParseEnvTags(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing sqlite config: %w", err)
	}
	return newDatabase(cfg, opts...)
}

// NewTestDB opens a silent in-memory database.
func NewTestDB(opts ...Option) (*gorm.DB, error) {
	cfg := Options{
		Path:     MemoryPath,
		LogLevel: "silent",
	}
	return newDatabase(cfg, opts...)
}

func newDatabase(cfg Options, opts ...Option) (*gorm.DB, error) {
	o := &options{
		path:          cfg.Path,
		logLevel:      parseLogLevel(cfg.LogLevel),
		slowThreshold: cfg.SlowThreshold,
	}
	for _, opt := range opts {
		opt(o)
	}

	gormLog := gormlogger.Default.LogMode(o.logLevel)
	if o.log != nil {
		gormLog = gormlogger.New(logger.NewStdLogger(o.log, slog.LevelInfo), gormlogger.Config{
			SlowThreshold:             o.slowThreshold,
			LogLevel:                  o.logLevel,
			IgnoreRecordNotFoundError: true,
		})
	}

	db, err := gorm.Open(sqlite.Open(o.path), &gorm.Config{
		Logger:  gormLog,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database %q: %w", o.path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB: %w", err)
	}

	// Every connection to :memory: is a separate database.
	if o.path == MemoryPath {
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// StatusCheck returns nil if the database answers a ping.
func StatusCheck(ctx context.Context, db *gorm.DB) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Second)
		defer cancel()
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func parseLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "info":
		return gormlogger.Info
	case "warn":
		return gormlogger.Warn
	case "error":
		return gormlogger.Error
	default:
		return gormlogger.Silent
	}
}
