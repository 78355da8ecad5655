package metrics_test

import (
	"context"
	"expvar"
	"testing"

	"github.com/jrazmi/taskapi/bridge/scaffolding/metrics"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	ctx := metrics.Set(context.Background())

	before := expvar.Get("requests").(*expvar.Int).Value()
	assert.Equal(t, before+1, metrics.AddRequests(ctx))
	assert.Positive(t, metrics.AddGoroutines(ctx))

	server := metrics.AddServerErrors(ctx)
	assert.Equal(t, server+1, metrics.AddServerErrors(ctx))

	client := expvar.Get("client_errors").(*expvar.Int).Value()
	assert.Equal(t, client+1, metrics.AddClientErrors(ctx))
	assert.Equal(t, server+1, expvar.Get("server_errors").(*expvar.Int).Value())

	panics := metrics.AddPanics(ctx)
	assert.Equal(t, panics, expvar.Get("panics").(*expvar.Int).Value())
}

func TestMetrics_WithoutSet(t *testing.T) {
	ctx := context.Background()

	assert.Zero(t, metrics.AddRequests(ctx))
	assert.Zero(t, metrics.AddClientErrors(ctx))
	assert.Zero(t, metrics.AddServerErrors(ctx))
	assert.Zero(t, metrics.AddPanics(ctx))
	assert.Zero(t, metrics.AddGoroutines(ctx))
}
