package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/people-registry/internal/middleware"
)

func TestMetricsHandler_labelsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()

	r := chi.NewRouter()
	r.Use(middleware.NewMetricsHandler(reg))
	r.Get("/people/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, path := range []string{"/people/a", "/people/b", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "http_request_duration_seconds", families[0].GetName())

	counts := map[string]uint64{}
	for _, m := range families[0].GetMetric() {
		var route, status string
		for _, l := range m.GetLabel() {
			switch l.GetName() {
			case "route":
				route = l.GetValue()
			case "status":
				status = l.GetValue()
			}
		}
		counts[route+" "+status] = m.GetHistogram().GetSampleCount()
	}

	assert.Equal(t, uint64(2), counts["/people/{id} 404"], "both ids share one series")
	assert.Equal(t, uint64(1), counts["unmatched 404"])

	n, err := testutil.GatherAndCount(reg, "http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
