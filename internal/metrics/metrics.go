// Package metrics provides Prometheus metrics for edge detection passes.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cypherlabdev/edge-finder-service/internal/models"
)

// Snapshot status labels
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Sink labels
const (
	SinkCache     = "cache"
	SinkPublisher = "publisher"
)

// Metrics collects edge finder metrics
type Metrics struct {
	SnapshotsTotal *prometheus.CounterVec
	OffersTotal    prometheus.Counter
	OffersRejected *prometheus.CounterVec
	EdgesFound     *prometheus.CounterVec
	PassDuration   prometheus.Histogram
	SinkErrors     *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SnapshotsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "edge_finder_snapshots_total",
				Help: "Total number of offer snapshots processed",
			},
			[]string{"status"},
		),
		OffersTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "edge_finder_offers_total",
				Help: "Total number of offers received",
			},
		),
		OffersRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "edge_finder_offers_rejected_total",
				Help: "Offers dropped by validation",
			},
			[]string{"reason"},
		),
		EdgesFound: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "edge_finder_edges_found_total",
				Help: "Edges detected against the reference bookmaker",
			},
			[]string{"odds_type"},
		),
		PassDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "edge_finder_pass_duration_seconds",
				Help:    "Time spent computing edges for one snapshot",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
			},
		),
		SinkErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "edge_finder_sink_errors_total",
				Help: "Failures writing edges to a downstream sink",
			},
			[]string{"sink"},
		),
	}

	reg.MustRegister(
		m.SnapshotsTotal,
		m.OffersTotal,
		m.OffersRejected,
		m.EdgesFound,
		m.PassDuration,
		m.SinkErrors,
	)

	return m
}

// ObservePass records the outcome of one computation pass
func (m *Metrics) ObservePass(offers int, report *models.EdgeReport, elapsed time.Duration) {
	m.SnapshotsTotal.WithLabelValues(StatusOK).Inc()
	m.OffersTotal.Add(float64(offers))
	m.PassDuration.Observe(elapsed.Seconds())

	for _, r := range report.Rejected {
		m.OffersRejected.WithLabelValues(string(r.Reason)).Inc()
	}
	for _, e := range report.Edges {
		m.EdgesFound.WithLabelValues(string(e.OddsType)).Inc()
	}
}

// ObserveFailure records a pass that produced no report
func (m *Metrics) ObserveFailure() {
	m.SnapshotsTotal.WithLabelValues(StatusFailed).Inc()
}

// ObserveSinkError records a failed write to sink
func (m *Metrics) ObserveSinkError(sink string) {
	m.SinkErrors.WithLabelValues(sink).Inc()
}
