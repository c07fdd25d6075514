// Package telemetry exposes process metrics for the request router:
// how many requests were routed to each agent and how long completion
// calls took.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/labstack/echo/v4"
)

type Metrics struct {
	registry *prometheus.Registry

	requestsTotal     *prometheus.CounterVec
	completionSeconds prometheus.Histogram
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "agentcare_requests_total",
			Help: "Routed requests by agent type and outcome.",
		}, []string{"agent_type", "status"}),
		completionSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "agentcare_completion_duration_seconds",
			Help:    "Latency of external text-completion calls.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(m.requestsTotal, m.completionSeconds)
	return m
}

// ObserveRequest records one routed request.
func (m *Metrics) ObserveRequest(agentType, status string) {
	m.requestsTotal.WithLabelValues(agentType, status).Inc()
}

// ObserveCompletion records the duration of one completion call.
func (m *Metrics) ObserveCompletion(d time.Duration) {
	m.completionSeconds.Observe(d.Seconds())
}

// Handler returns the scrape endpoint for the private registry.
func (m *Metrics) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
