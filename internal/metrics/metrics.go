// Package metrics exposes Prometheus metrics for the client layer and the background
// maintenance of the store. A nil *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/litetable/litetable-go/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "litetable"

// Metrics holds all Prometheus metrics of the process
type Metrics struct {
	registry *prometheus.Registry

	// Client operation metrics
	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	RowsScanned       *prometheus.CounterVec

	// Maintenance metrics
	CompactionRuns       prometheus.Counter
	CompactedVersions    prometheus.Counter
	ExpiredScanners      prometheus.Counter
	OpenScanners         prometheus.Gauge
	MaintenanceDuration  prometheus.Histogram
	SnapshotFlushesTotal *prometheus.CounterVec
}

// New creates and registers all metrics on a dedicated registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		OperationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "client",
			Name:      "operations_total",
			Help:      "Total number of client and server operations by outcome",
		}, []string{"component", "operation", "outcome"}),
		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "client",
			Name:      "operation_duration_seconds",
			Help:      "Latency of client operations",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"component", "operation"}),
		RowsScanned: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "client",
			Name:      "rows_scanned_total",
			Help:      "Rows returned by scans",
		}, []string{"operation"}),

		CompactionRuns: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reaper",
			Name:      "runs_total",
			Help:      "Total number of compaction runs",
		}),
		CompactedVersions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reaper",
			Name:      "removed_versions_total",
			Help:      "Versions and tombstones removed by compaction",
		}),
		ExpiredScanners: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reaper",
			Name:      "expired_scanners_total",
			Help:      "Idle scanners released after their lease",
		}),
		OpenScanners: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "open_scanners",
			Help:      "Scanners currently held by the engine",
		}),
		MaintenanceDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "reaper",
			Name:      "run_duration_seconds",
			Help:      "Duration of a compaction run",
			Buckets:   prometheus.DefBuckets,
		}),
		SnapshotFlushesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "snapshot_flushes_total",
			Help:      "Snapshot flushes by outcome",
		}, []string{"outcome"}),
	}
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Outcome labels an operation result: "ok" or the kind of the error.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return store.KindOf(err).String()
}

// Observe records one client operation that started at start.
func (m *Metrics) Observe(component, operation string, start time.Time, err error) {
	m.ObserveOutcome(component, operation, start, Outcome(err))
}

// ObserveOutcome is Observe with a caller supplied outcome label.
func (m *Metrics) ObserveOutcome(component, operation string, start time.Time, outcome string) {
	if m == nil {
		return
	}
	m.OperationsTotal.WithLabelValues(component, operation, outcome).Inc()
	m.OperationDuration.WithLabelValues(component, operation).Observe(time.Since(start).Seconds())
}

// ObserveRows counts rows returned by a scan.
func (m *Metrics) ObserveRows(operation string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.RowsScanned.WithLabelValues(operation).Add(float64(n))
}

// ObserveMaintenance records one reaper run.
func (m *Metrics) ObserveMaintenance(removed, expired, open int, took time.Duration) {
	if m == nil {
		return
	}
	m.CompactionRuns.Inc()
	m.CompactedVersions.Add(float64(removed))
	m.ExpiredScanners.Add(float64(expired))
	m.OpenScanners.Set(float64(open))
	m.MaintenanceDuration.Observe(took.Seconds())
}

// ObserveFlush records one snapshot flush.
func (m *Metrics) ObserveFlush(err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.SnapshotFlushesTotal.WithLabelValues(outcome).Inc()
}
