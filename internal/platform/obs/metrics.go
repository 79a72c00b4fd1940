package obs

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the Prometheus collectors exposed by the service.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	PlansCreated    prometheus.Counter
}

// NewMetrics registers the service collectors with the given registerer
// (pass nil to use the default registry).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "loadplan_http_requests_total",
			Help: "HTTP requests processed, by method, path and status code.",
		}, []string{"method", "path", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "loadplan_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by method and path.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		PlansCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "loadplan_plans_created_total",
			Help: "Load plans computed and persisted.",
		}),
	}

	reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.PlansCreated)
	return m
}
