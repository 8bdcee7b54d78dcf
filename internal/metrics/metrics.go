package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the various metrics used for monitoring the application.
// It includes counters and a histogram for the HTTP API, a histogram for
// database queries, counters and a gauge for seeding runs, and a counter
// for statistics cache lookups.
type Metrics struct {
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	DBQueryDuration    *prometheus.HistogramVec
	SeedRuns           *prometheus.CounterVec
	RecordsSeeded      *prometheus.CounterVec
	LastSuccessfulSeed prometheus.Gauge
	StatsCache         *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance registered on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hestia_http_requests_total",
			Help: "Total number of HTTP requests handled by the API.",
		}, []string{"method", "route", "code"}),
		HTTPDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hestia_http_request_duration_seconds",
			Help:    "Duration of HTTP requests handled by the API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hestia_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: 'find_employees', 'insert_departments', ...
		SeedRuns: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hestia_seed_runs_total",
			Help: "Total times the synthetic dataset generation has completed or failed.",
		}, []string{"status"}),
		RecordsSeeded: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hestia_records_seeded_total",
			Help: "Total number of generated records persisted by seeding.",
		}, []string{"type"}),
		LastSuccessfulSeed: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "hestia_last_successful_seed_timestamp",
			Help: "Last time when seeding completed successfully.",
		}),
		StatsCache: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hestia_stats_cache_requests_total",
			Help: "Statistics cache lookups by result.",
		}, []string{"result"}), // result: 'hit', 'miss', 'error'
	}

	metrics.SeedRuns.WithLabelValues("success")
	metrics.SeedRuns.WithLabelValues("failure")

	return metrics
}
