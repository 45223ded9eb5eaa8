package metrics

import (
	"net/http"

	"github.com/flowbaker/infomaniak/pkg/clients/infomaniak"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess     = "success"
	OutcomeClientError = "client_error"
	OutcomeServerError = "server_error"
	OutcomeTransport   = "transport_error"
)

// RequestMetrics records every Infomaniak API call made by the executor.
type RequestMetrics struct {
	registry *prometheus.Registry
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewRequestMetrics() *RequestMetrics {
	registry := prometheus.NewRegistry()

	m := &RequestMetrics{
		registry: registry,
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "infomaniak_api_requests_total",
			Help: "Infomaniak API requests by method, intent and outcome.",
		}, []string{"method", "intent", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "infomaniak_api_request_duration_seconds",
			Help:    "Infomaniak API request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "intent"}),
	}

	registry.MustRegister(
		m.total,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *RequestMetrics) ObserveRequest(event infomaniak.RequestEvent) {
	m.total.WithLabelValues(event.Method, event.Intent, outcome(event)).Inc()
	m.duration.WithLabelValues(event.Method, event.Intent).Observe(event.Duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *RequestMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *RequestMetrics) Registry() *prometheus.Registry {
	return m.registry
}

func outcome(event infomaniak.RequestEvent) string {
	switch {
	case event.StatusCode == 0 && event.Err != nil:
		return OutcomeTransport
	case event.StatusCode >= 500:
		return OutcomeServerError
	case event.StatusCode >= 400 || event.Err != nil:
		return OutcomeClientError
	}

	return OutcomeSuccess
}
