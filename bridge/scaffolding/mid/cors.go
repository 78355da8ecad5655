package mid

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/jrazmi/taskapi/infrastructure/web"
)

// CORSConfig holds CORS configuration options
type CORSConfig struct {
	Origins     []string
	Methods     []string
	Headers     []string
	Credentials bool
	MaxAge      string
}

// DefaultCORSConfig returns a default CORS configuration
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		Origins:     []string{"*"},
		Methods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		Headers:     []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		Credentials: false,
		MaxAge:      "86400",
	}
}

// CORS creates CORS middleware with the given origins
func CORS(origins ...string) web.Middleware {
	config := DefaultCORSConfig()
	if len(origins) > 0 {
		config.Origins = origins
	}
	return CORSWithConfig(config)
}

// CORSWithConfig creates CORS middleware with full configuration. Preflight
// requests are answered here and never reach the handler.
func CORSWithConfig(config CORSConfig) web.Middleware {
	methods := strings.Join(config.Methods, ", ")
	headers := strings.Join(config.Headers, ", ")
	wildcard := slices.Contains(config.Origins, "*")

	return func(handler web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			w := web.GetWriter(ctx)
			if w == nil {
				return handler(ctx, r)
			}

			reqOrigin := r.Header.Get("Origin")
			switch {
			case wildcard && !config.Credentials:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case reqOrigin != "" && (wildcard || slices.Contains(config.Origins, reqOrigin)):
				w.Header().Set("Access-Control-Allow-Origin", reqOrigin)
				w.Header().Add("Vary", "Origin")
			}

			if config.Credentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}
			if methods != "" {
				w.Header().Set("Access-Control-Allow-Methods", methods)
			}
			if headers != "" {
				w.Header().Set("Access-Control-Allow-Headers", headers)
			}
			if config.MaxAge != "" {
				w.Header().Set("Access-Control-Max-Age", config.MaxAge)
			}

			if r.Method == http.MethodOptions {
				return nil
			}

			return handler(ctx, r)
		}
	}
}
