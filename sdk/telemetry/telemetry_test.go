package telemetry_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jrazmi/taskapi/sdk/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceID(t *testing.T) {
	tel := telemetry.NewTelemetry()

	assert.Empty(t, tel.GetTraceID(context.Background()))

	ctx := tel.SetTraceID(context.Background())
	tid := tel.GetTraceID(ctx)
	_, err := uuid.Parse(tid)
	require.NoError(t, err)

	other := tel.GetTraceID(tel.SetTraceID(context.Background()))
	assert.NotEqual(t, tid, other)
}
