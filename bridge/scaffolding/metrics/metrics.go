// Package metrics constructs the metrics the application will track and
// publishes them through expvar.
package metrics

import (
	"context"
	"expvar"
	"runtime"
)

// m holds the single instance of metrics, published once per process.
var m *metrics

type metrics struct {
	goroutines   *expvar.Int
	requests     *expvar.Int
	clientErrors *expvar.Int
	serverErrors *expvar.Int
	panics       *expvar.Int
}

func init() {
	m = &metrics{
		goroutines:   expvar.NewInt("goroutines"),
		requests:     expvar.NewInt("requests"),
		clientErrors: expvar.NewInt("client_errors"),
		serverErrors: expvar.NewInt("server_errors"),
		panics:       expvar.NewInt("panics"),
	}
}

type ctxKey int

const key ctxKey = 1

// Set sets the metrics data into the context.
func Set(ctx context.Context) context.Context {
	return context.WithValue(ctx, key, m)
}

func get(ctx context.Context) *metrics {
	v, ok := ctx.Value(key).(*metrics)
	if !ok {
		return nil
	}
	return v
}

// AddGoroutines refreshes the goroutine metric.
func AddGoroutines(ctx context.Context) int64 {
	if v := get(ctx); v != nil {
		g := int64(runtime.NumGoroutine())
		v.goroutines.Set(g)
		return g
	}
	return 0
}

// AddRequests increments the request metric by 1.
func AddRequests(ctx context.Context) int64 {
	if v := get(ctx); v != nil {
		v.requests.Add(1)
		return v.requests.Value()
	}
	return 0
}

// AddClientErrors counts a request answered with a 4xx status.
func AddClientErrors(ctx context.Context) int64 {
	if v := get(ctx); v != nil {
		v.clientErrors.Add(1)
		return v.clientErrors.Value()
	}
	return 0
}

// AddServerErrors counts a request answered with a 5xx status.
func AddServerErrors(ctx context.Context) int64 {
	if v := get(ctx); v != nil {
		v.serverErrors.Add(1)
		return v.serverErrors.Value()
	}
	return 0
}

// AddPanics increments the panics metric by 1.
func AddPanics(ctx context.Context) int64 {
	if v := get(ctx); v != nil {
		v.panics.Add(1)
		return v.panics.Value()
	}
	return 0
}
