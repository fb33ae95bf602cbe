package middleware

import (
	"net/http"
	"strconv"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records per-route request counts and latencies.
// Routes are labelled by chi pattern, never by raw path, so label
// cardinality stays bounded no matter what paths clients request.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	views    *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "site",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "site",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds.",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "route"},
		),
		views: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "site",
				Subsystem: "pages",
				Name:      "rendered_total",
				Help:      "Pages rendered, by view and whether the wildcard route matched.",
			},
			[]string{"view", "fallback"},
		),
	}
	reg.MustRegister(m.requests, m.duration, m.views)
	return m
}

// Handler returns the middleware. Wire it inside the chi router so the
// route pattern is known once the downstream handler returns.
func (m *Metrics) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := routePattern(r)
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(status(ww))).Inc()
		m.duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// ObserveView counts one rendered page view.
func (m *Metrics) ObserveView(view string, fallback bool) {
	m.views.WithLabelValues(view, strconv.FormatBool(fallback)).Inc()
}
