package middleware

import (
	"net/http"
	"strconv"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// unmatchedRoute labels requests that no route matched, keeping the route
// label bounded.
const unmatchedRoute = "unmatched"

// NewMetricsHandler returns a middleware that records request latency in
// http_request_duration_seconds{method,route,status}, registered on reg.
// route is the chi pattern ("/people/{id}"), never the raw path.
func NewMetricsHandler(reg prometheus.Registerer) func(http.Handler) http.Handler {
	duration := promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests by method, route and status",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "route", "status"})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := routePattern(r)
			if route == "" {
				route = unmatchedRoute
			}
			duration.WithLabelValues(r.Method, route, strconv.Itoa(statusOf(ww))).
				Observe(time.Since(start).Seconds())
		})
	}
}
