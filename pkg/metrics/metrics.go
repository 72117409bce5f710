// Package metrics holds the prometheus collectors shared by the analytics
// and signals services.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "bankdash"

// Metrics groups every collector the application exports.
type Metrics struct {
	Registry *prometheus.Registry

	queries      *prometheus.CounterVec
	queryErrors  *prometheus.CounterVec
	queryLatency *prometheus.HistogramVec
	cacheResults *prometheus.CounterVec
	jobsStarted  *prometheus.CounterVec
	jobsFinished *prometheus.CounterVec
	jobsRunning  prometheus.Gauge
	datasetRows  *prometheus.GaugeVec
}

// New builds the collectors and registers them on a fresh registry together
// with the go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Subsystem: "analytics", Name: "queries_total", Help: "Analytics operations served."},
			[]string{"operation"},
		),
		queryErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Subsystem: "analytics", Name: "query_errors_total", Help: "Analytics operations that failed."},
			[]string{"operation"},
		),
		queryLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Namespace: namespace, Subsystem: "analytics", Name: "query_duration_seconds", Help: "Analytics operation latency.", Buckets: prometheus.DefBuckets},
			[]string{"operation"},
		),
		cacheResults: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Subsystem: "analytics", Name: "cache_lookups_total", Help: "Result cache lookups by outcome."},
			[]string{"result"},
		),
		jobsStarted: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Subsystem: "jobs", Name: "started_total", Help: "Simulated jobs started."},
			[]string{"origin"},
		),
		jobsFinished: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Subsystem: "jobs", Name: "finished_total", Help: "Simulated jobs finished."},
			[]string{"status"},
		),
		jobsRunning: prometheus.NewGauge(
			prometheus.GaugeOpts{Namespace: namespace, Subsystem: "jobs", Name: "running", Help: "Simulated jobs currently running."},
		),
		datasetRows: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Namespace: namespace, Subsystem: "dataset", Name: "rows", Help: "Persisted rows per table."},
			[]string{"table"},
		),
	}
	reg.MustRegister(
		m.queries, m.queryErrors, m.queryLatency, m.cacheResults,
		m.jobsStarted, m.jobsFinished, m.jobsRunning, m.datasetRows,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveQuery records one analytics operation. Safe on a nil receiver.
func (m *Metrics) ObserveQuery(op string, started time.Time, err error) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(op).Inc()
	m.queryLatency.WithLabelValues(op).Observe(time.Since(started).Seconds())
	if err != nil {
		m.queryErrors.WithLabelValues(op).Inc()
	}
}

func (m *Metrics) CacheHit() {
	if m != nil {
		m.cacheResults.WithLabelValues("hit").Inc()
	}
}

func (m *Metrics) CacheMiss() {
	if m != nil {
		m.cacheResults.WithLabelValues("miss").Inc()
	}
}

// JobStarted counts a job start; origin is "trigger" or "poll".
func (m *Metrics) JobStarted(origin string) {
	if m == nil {
		return
	}
	m.jobsStarted.WithLabelValues(origin).Inc()
	m.jobsRunning.Inc()
}

// JobFinished counts a job leaving the running state.
func (m *Metrics) JobFinished(status string) {
	if m == nil {
		return
	}
	m.jobsFinished.WithLabelValues(status).Inc()
	m.jobsRunning.Dec()
}

// SetDatasetRows publishes the persisted row counts.
func (m *Metrics) SetDatasetRows(customers, transactions int64) {
	if m == nil {
		return
	}
	m.datasetRows.WithLabelValues("customers").Set(float64(customers))
	m.datasetRows.WithLabelValues("transactions").Set(float64(transactions))
}
