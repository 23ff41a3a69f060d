package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/people-registry/internal/handler"
	"github.com/pkordes/people-registry/internal/handler/gen"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func getHealth(t *testing.T, db handler.Pinger) (int, gen.HealthResponse) {
	t.Helper()
	h := handler.NewServer(nil, db)
	httpHandler := gen.Handler(gen.NewStrictHandler(h, nil))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	httpHandler.ServeHTTP(rec, req)

	var body gen.HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return rec.Code, body
}

// TestGetHealth_returns200WithOKStatus verifies that GET /healthz returns
// HTTP 200 and a JSON body of {"status":"ok"} when the database answers.
func TestGetHealth_returns200WithOKStatus(t *testing.T) {
	code, body := getHealth(t, pingerFunc(func(context.Context) error { return nil }))

	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "ok", body.Status)
}

func TestGetHealth_withoutDatabase(t *testing.T) {
	code, body := getHealth(t, nil)

	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "ok", body.Status)
}

func TestGetHealth_returns503WhenPingFails(t *testing.T) {
	code, body := getHealth(t, pingerFunc(func(context.Context) error {
		return errors.New("dial tcp: connection refused")
	}))

	require.Equal(t, http.StatusServiceUnavailable, code)
	require.Equal(t, "unavailable", body.Status)
}
