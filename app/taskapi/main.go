package main

import (
	"context"
	"expvar"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/jrazmi/taskapi/app/taskapi/config"
	"github.com/jrazmi/taskapi/bridge/checkbridge"
	"github.com/jrazmi/taskapi/bridge/repositories/tasksrepobridge"
	"github.com/jrazmi/taskapi/bridge/scaffolding/errs"
	"github.com/jrazmi/taskapi/bridge/scaffolding/mid"
	"github.com/jrazmi/taskapi/core/repositories/tasksrepo"
	"github.com/jrazmi/taskapi/infrastructure/web"
	"github.com/jrazmi/taskapi/sdk/environment"
	"github.com/jrazmi/taskapi/sdk/logger"
	"github.com/jrazmi/taskapi/sdk/telemetry"
)

var build = "develop"
var appName = "TASKAPI"

func main() {
	environment.LoadEnv()

	tel := telemetry.NewTelemetry()
	log, err := logger.NewFromEnv(appName,
		logger.WithService(appName),
		logger.WithTraceIDFn(tel.GetTraceID),
	)
	if err != nil {
		fmt.Println("oh no we couldn't even get logging going.")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log, tel); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger, tel telemetry.Telemetry) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	cfg, err := config.Load(appName)
	if err != nil {
		return err
	}

	// :*: START STORES :*:
	st, err := openStore(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("configuring %s store: %w", cfg.StoreDriver, err)
	}
	defer func() {
		log.InfoContext(ctx, "shutdown", "status", "closing store", "driver", cfg.StoreDriver)
		st.close()
	}()
	log.InfoContext(ctx, "init", "store", cfg.StoreDriver)
	// END STORES //

	// REPOSITORIES //
	taskRepository := tasksrepo.NewRepository(log, st.storer)
	// END REPOSITORIES //

	server, err := web.NewServerFromEnv(appName,
		web.WithErrorLog(logger.NewStdLogger(log, slog.LevelError)),
	)
	if err != nil {
		return fmt.Errorf("webserver: %w", err)
	}

	handler, err := webHandler(log, tel, cfg, server.Config.EnableDebug, taskRepository, st.check)
	if err != nil {
		return err
	}
	server.Handler = handler

	log.InfoContext(ctx, "startup", "status", "api router started", "host", server.Addr, "route", cfg.APIRoute)
	defer log.InfoContext(ctx, "shutdown", "status", "shutdown complete")

	return server.Serve(ctx, nil)
}

func webHandler(log *logger.Logger, tel telemetry.Telemetry, cfg config.Config, debug bool, taskRepository *tasksrepo.Repository, check checkbridge.StatusCheck) (http.Handler, error) {
	// INITIALIZATION
	wh, err := web.NewWebHandlerFromEnv(appName,
		web.WithLogging(log.Logger),
		web.WithTelemetry(tel),
		// GLOBAL MIDDLEWARE
		web.WithGlobalMiddleware(
			mid.CORS(cfg.CORSOrigins...), // CORS, answers preflight
			mid.Logger(log),              // Request logging
			mid.Errors(log),              // Error handling
			mid.Metrics(),                // Metrics collection
			mid.Panics(),                 // Panic recovery
		),
	)
	if err != nil {
		return nil, fmt.Errorf("webhandler: %w", err)
	}

	// Unmatched requests still pass through the middleware, so CORS can
	// answer preflights for any route. A known path hit with the wrong
	// method gets 405 and an Allow header.
	wh.Any("/", func(ctx context.Context, r *http.Request) web.Encoder {
		allowed := wh.AllowedMethods(r)
		if len(allowed) == 0 {
			return errs.Newf(errs.NotFound, "route %s not found", r.URL.Path)
		}
		if w := web.GetWriter(ctx); w != nil {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		return errs.Newf(errs.MethodNotAllowed, "method %s not allowed on %s", r.Method, r.URL.Path)
	})

	if debug {
		wh.HandleRaw("GET /debug/vars", expvar.Handler())
	}

	api := wh.Group(cfg.APIRoute)

	// CHECKS
	checkbridge.AddHttpRoutes(api, checkbridge.Config{
		Build: build,
		Log:   log,
		Check: check,
	})

	// TASKS
	tasksrepobridge.AddHttpRoutes(api, tasksrepobridge.Config{
		Log:        log,
		Repository: taskRepository,
	})

	return wh, nil
}
