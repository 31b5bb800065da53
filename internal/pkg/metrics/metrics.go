package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the counters and histograms used to monitor the portal's
// traffic to the backend and the route guard's redirect behavior.
type Metrics struct {
	BackendRequests *prometheus.CounterVec
	BackendDuration *prometheus.HistogramVec
	GuardRedirects  *prometheus.CounterVec
}

// New registers the portal metrics with the provided Registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		BackendRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "worklogportal_backend_requests_total",
			Help: "Total requests issued to the backend API, by endpoint and status class.",
		}, []string{"endpoint", "status"}),
		BackendDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "worklogportal_backend_request_duration_seconds",
			Help:    "Duration of backend API requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		GuardRedirects: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "worklogportal_guard_redirects_total",
			Help: "Total redirects issued by the route guard, by reason.",
		}, []string{"reason"}),
	}

	m.GuardRedirects.WithLabelValues("login")
	m.GuardRedirects.WithLabelValues("dashboard")

	return m
}
