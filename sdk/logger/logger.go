// Package logger provides a thin wrapper over log/slog configured from the
// environment.
package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"time"

	"github.com/jrazmi/taskapi/sdk/environment"
)

// Logger is a wrapper around the standard slog.Logger.
type Logger struct {
	*slog.Logger
}

// TraceIDFn returns the trace id carried by a context.
type TraceIDFn func(ctx context.Context) string

// Options is the exportable configuration struct.
type Options struct {
	Level      string `env:"LOG_LEVEL" default:"INFO"`
	Output     string `env:"LOG_OUTPUT" default:"STDOUT"`
	Format     string `env:"LOG_FORMAT" default:"json"`
	TimeFormat string `env:"LOG_TIME_FORMAT" default:"RFC3339"`
	AddSource  bool   `env:"LOG_ADD_SOURCE" default:"false"`
}

type options struct {
	level      slog.Level
	output     io.Writer
	addSource  bool
	format     string
	timeFormat string
	traceIDFn  TraceIDFn
	attrs      []slog.Attr
}

// Option overrides a setting after the configuration has been read.
type Option func(*options)

// WithLevel sets the minimum level.
func WithLevel(level string) Option {
	return func(o *options) {
		o.level = parseLevel(level)
	}
}

// WithOutput redirects records to w.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithFormat selects "json" or "text".
func WithFormat(format string) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithTraceIDFn adds a trace_id attribute to every record logged with a
// context that carries one.
func WithTraceIDFn(fn TraceIDFn) Option {
	return func(o *options) {
		o.traceIDFn = fn
	}
}

// WithService tags every record with the service name.
func WithService(name string) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, slog.String("service", name))
	}
}

// NewDefault creates a JSON logger at INFO level writing to stdout.
func NewDefault(opts ...Option) *Logger {
	cfg := Options{
		Level:      "INFO",
		Output:     "STDOUT",
		Format:     "json",
		TimeFormat: "RFC3339",
	}
	return newLogger(cfg, opts...)
}

// NewDiscard creates a logger that drops every record. Useful in tests.
func NewDiscard() *Logger {
	return newLogger(Options{Level: "ERROR"}, WithOutput(io.Discard))
}

// NewFromEnv creates a logger configured from prefixed environment variables.
func NewFromEnv(prefix string, opts ...Option) (*Logger, error) {
	var cfg Options
	if err := environment.ParseEnvTags(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing logger config: %w", err)
	}
	return newLogger(cfg, opts...), nil
}

// NewStdLogger adapts the logger for APIs that need a *log.Logger, such as
// http.Server.ErrorLog.
func NewStdLogger(logger *Logger, level slog.Level) *log.Logger {
	return slog.NewLogLogger(logger.Handler(), level)
}

func newLogger(cfg Options, opts ...Option) *Logger {
	o := &options{
		level:      parseLevel(cfg.Level),
		output:     parseOutput(cfg.Output),
		addSource:  cfg.AddSource,
		format:     cfg.Format,
		timeFormat: cfg.TimeFormat,
	}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     o.level,
		AddSource: o.addSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.TimeKey || len(groups) > 0 || o.timeFormat == "" {
				return a
			}
			t := a.Value.Time()
			switch o.timeFormat {
			case "Unix":
				return slog.Int64(slog.TimeKey, t.Unix())
			case "UnixMilli":
				return slog.Int64(slog.TimeKey, t.UnixMilli())
			case "RFC3339Nano":
				return slog.String(slog.TimeKey, t.Format(time.RFC3339Nano))
			case "RFC3339":
				return slog.String(slog.TimeKey, t.Format(time.RFC3339))
			default:
				return slog.String(slog.TimeKey, t.Format(o.timeFormat))
			}
		},
	}

	var handler slog.Handler
	switch o.format {
	case "text":
		handler = slog.NewTextHandler(o.output, handlerOpts)
	default:
		handler = slog.NewJSONHandler(o.output, handlerOpts)
	}

	if o.traceIDFn != nil {
		handler = &traceHandler{Handler: handler, traceIDFn: o.traceIDFn}
	}
	if len(o.attrs) > 0 {
		handler = handler.WithAttrs(o.attrs)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// InfoContextf logs an info message with formatting.
func (l *Logger) InfoContextf(ctx context.Context, format string, args ...any) {
	l.InfoContext(ctx, fmt.Sprintf(format, args...))
}

// ErrorContextf logs an error message with formatting.
func (l *Logger) ErrorContextf(ctx context.Context, format string, args ...any) {
	l.ErrorContext(ctx, fmt.Sprintf(format, args...))
}
