package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/wacrm/wacrm/internal/services/web/platform/httpx"
	"github.com/wacrm/wacrm/internal/services/web/routepath"
)

const metricsNamespace = "wacrm_web"

// Metrics holds the Prometheus collectors of the web service.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	landing  *prometheus.CounterVec
}

// NewMetrics registers the web collectors on reg. A nil reg uses the default
// registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		landing: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "landing_outcomes_total",
			Help:      "Landing page responses by outcome: rendered, redirected, or loading.",
		}, []string{"outcome"}),
	}
}

// Middleware records request count and latency per route label.
func (m *Metrics) Middleware() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)
			route := routepath.Label(r.URL.Path)
			m.requests.WithLabelValues(route, strconv.Itoa(rec.statusCode())).Inc()
			m.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		})
	}
}

// RecordLandingOutcome counts one landing page response.
func (m *Metrics) RecordLandingOutcome(outcome string) {
	if m == nil || outcome == "" {
		return
	}
	m.landing.WithLabelValues(outcome).Inc()
}
