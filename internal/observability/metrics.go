package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the city guide.
type Metrics struct {
	PageRenders    *prometheus.CounterVec // labels: city
	PageNotFound   prometheus.Counter
	FallbackServed *prometheus.CounterVec // labels: city

	UpstreamRequests *prometheus.CounterVec   // labels: provider={ticketmaster,openweather}, outcome={success,error,skipped}
	UpstreamDuration *prometheus.HistogramVec // labels: provider
}

// NewMetrics creates and registers all metrics with the default Prometheus
// registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.PageRenders,
		m.PageNotFound,
		m.FallbackServed,
		m.UpstreamRequests,
		m.UpstreamDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		PageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cityguide",
			Name:      "page_renders_total",
			Help:      "City pages rendered, by city slug.",
		}, []string{"city"}),
		PageNotFound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cityguide",
			Name:      "page_not_found_total",
			Help:      "Requests for unknown city slugs.",
		}),
		FallbackServed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cityguide",
			Name:      "fallback_events_served_total",
			Help:      "Pages rendered with the static fallback event list.",
		}, []string{"city"}),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cityguide",
			Name:      "upstream_requests_total",
			Help:      "Upstream API calls by provider and outcome.",
		}, []string{"provider", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cityguide",
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"provider"}),
	}
}
