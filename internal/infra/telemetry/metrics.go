package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics aggregates the adapter's counters. A nil *Metrics is a valid
// no-op receiver so callers never need nil checks at observation sites.
type Metrics struct {
	toolDuration     *prometheus.HistogramVec
	upstreamAttempts *prometheus.CounterVec
	upstreamRetries  *prometheus.CounterVec
	cacheLookups     *prometheus.CounterVec
}

func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &Metrics{
		toolDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "adhanmcp_tool_duration_seconds",
				Help:    "Duration of tool invocations in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"tool", "status"},
		),
		upstreamAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adhanmcp_upstream_attempts_total",
				Help: "Total upstream request attempts",
			},
			[]string{"path", "outcome"},
		),
		upstreamRetries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adhanmcp_upstream_retries_total",
				Help: "Total upstream retries after a failed attempt",
			},
			[]string{"path"},
		),
		cacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adhanmcp_cache_lookups_total",
				Help: "Methods cache lookups by result",
			},
			[]string{"result"},
		),
	}
}

func (m *Metrics) ObserveTool(tool string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.toolDuration.WithLabelValues(tool, status).Observe(duration.Seconds())
}

func (m *Metrics) ObserveUpstreamAttempt(path string, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.upstreamAttempts.WithLabelValues(path, outcome).Inc()
}

func (m *Metrics) ObserveUpstreamRetry(path string) {
	if m == nil {
		return
	}
	m.upstreamRetries.WithLabelValues(path).Inc()
}

func (m *Metrics) ObserveCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}
