package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/jrazmi/taskapi/sdk/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

func traceID(ctx context.Context) string {
	v, _ := ctx.Value(ctxKey{}).(string)
	return v
}

func TestLogger_TraceID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewDefault(
		logger.WithOutput(&buf),
		logger.WithTraceIDFn(traceID),
		logger.WithService("taskapi"),
	)

	ctx := context.WithValue(context.Background(), ctxKey{}, "abc-123")
	log.InfoContext(ctx, "request started", "path", "/tasks")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "request started", rec["msg"])
	assert.Equal(t, "abc-123", rec["trace_id"])
	assert.Equal(t, "taskapi", rec["service"])
	assert.Equal(t, "/tasks", rec["path"])
}

func TestLogger_NoTraceID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewDefault(logger.WithOutput(&buf), logger.WithTraceIDFn(traceID))

	log.InfoContext(context.Background(), "startup")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	_, ok := rec["trace_id"]
	assert.False(t, ok)
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewDefault(logger.WithOutput(&buf), logger.WithLevel("warn"))

	log.Info("dropped")
	assert.Zero(t, buf.Len())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}
