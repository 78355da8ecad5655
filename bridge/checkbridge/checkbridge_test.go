package checkbridge_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrazmi/taskapi/bridge/checkbridge"
	"github.com/jrazmi/taskapi/infrastructure/web"
	"github.com/jrazmi/taskapi/sdk/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, check checkbridge.StatusCheck, path string) (int, map[string]any) {
	t.Helper()

	wh := web.NewWebHandler()
	checkbridge.AddHttpRoutes(wh.Group(""), checkbridge.Config{
		Build: "v1.2.3",
		Log:   logger.NewDiscard(),
		Check: check,
	})

	w := httptest.NewRecorder()
	wh.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestLiveness(t *testing.T) {
	code, body := serve(t, nil, "/liveness")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "up", body["status"])
	assert.Equal(t, "v1.2.3", body["build"])
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name  string
		check checkbridge.StatusCheck
		code  int
	}{
		{name: "no check", check: nil, code: http.StatusOK},
		{name: "healthy", check: func(context.Context) error { return nil }, code: http.StatusOK},
		{name: "down", check: func(context.Context) error { return errors.New("connection refused") }, code: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := serve(t, tt.check, "/readiness")

			assert.Equal(t, tt.code, code)
			if tt.code == http.StatusOK {
				assert.Equal(t, "ok", body["status"])
			} else {
				assert.Equal(t, "unavailable", body["code"])
			}
		})
	}
}
