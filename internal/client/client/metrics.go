package client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for linkdash_api_requests_total.
const (
	OutcomeSuccess          = "success"
	OutcomeApplicationError = "application_error"
	OutcomeNetworkError     = "network_error"
)

// Fully qualified metric names as exposed by the registry.
const (
	RequestsMetric = "linkdash_api_requests_total"
	DurationMetric = "linkdash_api_request_duration_seconds"
)

// Metrics counts API calls per endpoint and outcome. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the client collectors on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "linkdash",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "API calls by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "linkdash",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "API call latency by endpoint.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(endpoint, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(endpoint, outcome).Inc()
	m.duration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

func outcomeOf(err error) string {
	switch err.(type) {
	case nil:
		return OutcomeSuccess
	case *ApplicationError:
		return OutcomeApplicationError
	default:
		return OutcomeNetworkError
	}
}
