package verity

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type clientMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// newClientMetrics creates the request collectors and registers them on reg
// when it is non-nil. Clients sharing a registerer share collectors.
func newClientMetrics(reg prometheus.Registerer) *clientMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "verity",
		Subsystem: "client",
		Name:      "requests_total",
		Help:      "Verity API calls by HTTP method and response status.",
	}, []string{"method", "status"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "verity",
		Subsystem: "client",
		Name:      "request_duration_seconds",
		Help:      "Verity API call latency by HTTP method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	return &clientMetrics{
		requests: register(reg, requests),
		duration: register(reg, duration),
	}
}

func register[C prometheus.Collector](reg prometheus.Registerer, collector C) C {
	if reg == nil {
		return collector
	}
	if err := reg.Register(collector); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing
			}
		}
	}
	return collector
}

// observe records one finished call. status is the numeric HTTP status, or
// "error" when no response arrived.
func (m *clientMetrics) observe(method, status string, elapsed time.Duration) {
	m.requests.WithLabelValues(method, status).Inc()
	m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}
