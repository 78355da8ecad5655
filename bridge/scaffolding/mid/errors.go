package mid

import (
	"context"
	"errors"
	"net/http"
	"path"

	"github.com/jrazmi/taskapi/bridge/scaffolding/errs"
	"github.com/jrazmi/taskapi/infrastructure/web"
	"github.com/jrazmi/taskapi/sdk/logger"
)

// Errors turns anything a handler fails with into an *errs.Error. Server
// faults log at ERROR with their origin; client mistakes log at INFO.
func Errors(log *logger.Logger) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			resp := next(ctx, r)
			err := isError(resp)
			if err == nil {
				return resp
			}

			var appErr *errs.Error
			if !errors.As(err, &appErr) {
				appErr = errs.Newf(errs.Internal, "Internal Server Error")
			}

			status := appErr.HTTPStatus()
			if status < http.StatusInternalServerError {
				log.InfoContext(ctx, "request rejected",
					"status", status,
					"code", appErr.Code.String(),
					"err", err)
				return appErr
			}

			log.ErrorContext(ctx, "request failed",
				"status", status,
				"err", err,
				"source_err_file", path.Base(appErr.FileName),
				"source_err_func", path.Base(appErr.FuncName))

			if appErr.Code == errs.InternalOnlyLog {
				return errs.Newf(errs.Internal, "Internal Server Error")
			}
			return appErr
		}
	}
}
