package mid

import (
	"context"
	"net/http"

	"github.com/jrazmi/taskapi/bridge/scaffolding/metrics"
	"github.com/jrazmi/taskapi/infrastructure/web"
)

// Metrics counts every request and sorts failed ones by the status class
// they will be answered with.
func Metrics() web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			ctx = metrics.Set(ctx)

			resp := next(ctx, r)

			if n := metrics.AddRequests(ctx); n%1000 == 0 {
				metrics.AddGoroutines(ctx)
			}

			switch status := statusOf(resp); {
			case status >= http.StatusInternalServerError:
				metrics.AddServerErrors(ctx)
			case status >= http.StatusBadRequest:
				metrics.AddClientErrors(ctx)
			}

			return resp
		}
	}
}
