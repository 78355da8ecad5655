// Package checkbridge serves the liveness and readiness endpoints.
package checkbridge

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jrazmi/taskapi/bridge/scaffolding/errs"
	"github.com/jrazmi/taskapi/infrastructure/web"
	"github.com/jrazmi/taskapi/sdk/logger"
)

// StatusCheck reports whether a backing service can take traffic.
type StatusCheck func(ctx context.Context) error

// Config holds the dependencies of the check routes.
type Config struct {
	Build string
	Log   *logger.Logger
	Check StatusCheck
}

// Status is the body of a healthy check.
type Status struct {
	Status string `json:"status"`
	Build  string `json:"build,omitempty"`
}

// Encode implements the encoder interface.
func (s Status) Encode() ([]byte, string, error) {
	data, err := json.Marshal(s)
	return data, "application/json; charset=utf-8", err
}

type bridge struct {
	build string
	log   *logger.Logger
	check StatusCheck
}

// AddHttpRoutes registers /liveness and /readiness.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := &bridge{
		build: cfg.Build,
		log:   cfg.Log,
		check: cfg.Check,
	}

	group.GET("/liveness", b.liveness)
	group.GET("/readiness", b.readiness)
}

func (b *bridge) liveness(ctx context.Context, r *http.Request) web.Encoder {
	return Status{
		Status: "up",
		Build:  b.build,
	}
}

// readiness checks the store. A failing store answers 503.
func (b *bridge) readiness(ctx context.Context, r *http.Request) web.Encoder {
	if b.check == nil {
		return Status{Status: "ok"}
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	if err := b.check(ctx); err != nil {
		b.log.InfoContext(ctx, "readiness failure", "err", err)
		return errs.Newf(errs.Unavailable, "store not ready")
	}

	return Status{Status: "ok"}
}
