// Package metrics provides Prometheus metrics for the betcompare parameter engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the parameter engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Core Business Metrics - What really matters for a comparison engine
	valueWrites          prometheus.Counter
	valueUpdates         prometheus.Counter
	validationRejections *prometheus.CounterVec
	historyAppends       prometheus.Counter
	scoreComputations    prometheus.Counter
	comparisonRequests   prometheus.Counter
	rankingRequests      prometheus.Counter
	bulkRegenerations    prometheus.Counter

	// Operational Health Metrics
	totalSubjects prometheus.Gauge
	totalValues   prometheus.Gauge
	catalogSize   prometheus.Gauge

	// Repository Metrics - Relational store performance
	repositoryWriteLatency prometheus.Histogram
	repositoryQueryLatency prometheus.Histogram
	repositoryErrors       *prometheus.CounterVec

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Enhanced Error Metrics - Detailed error tracking
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec
	errorLatency        *prometheus.HistogramVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "betcompare",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // long function required for comprehensive metrics initialization
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	// Core Business Metrics - parameter write/read volume
	m.valueWrites = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "value_writes_total",
		Help:      "Total number of parameter values created",
	})

	m.valueUpdates = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "value_updates_total",
		Help:      "Total number of parameter values updated in place",
	})

	m.validationRejections = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "validation_rejections_total",
			Help:      "Total number of writes rejected by type validation",
		},
		[]string{"value_type", "reason"},
	)

	m.historyAppends = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "history_appends_total",
		Help:      "Total number of history ledger entries appended",
	})

	m.scoreComputations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "score_computations_total",
		Help:      "Total number of on-demand score computations",
	})

	m.comparisonRequests = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "comparison_requests_total",
		Help:      "Total number of comparison matrix resolutions",
	})

	m.rankingRequests = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ranking_requests_total",
		Help:      "Total number of ranking computations",
	})

	m.bulkRegenerations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "bulk_regenerations_total",
		Help:      "Total number of bulk parameter regenerations (seed tooling)",
	})

	// Operational Health Metrics - System scale indicators
	m.totalSubjects = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "total_subjects",
		Help:      "Total number of subjects (bets) tracked",
	})

	m.totalValues = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "total_values",
		Help:      "Total number of current parameter value rows",
	})

	m.catalogSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_size",
		Help:      "Number of parameter definitions in the static catalog",
	})

	// Repository Metrics - Relational store performance
	m.repositoryWriteLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "repository_write_latency_milliseconds",
		Help:      "Repository write operation latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.repositoryQueryLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "repository_query_latency_milliseconds",
		Help:      "Repository query operation latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.repositoryErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "repository_errors_total",
			Help:      "Total number of repository errors by operation",
		},
		[]string{"operation"},
	)

	// HTTP Performance Metrics - User experience indicators
	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds (user experience)",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	// Enhanced Error Metrics - Detailed error tracking
	m.errorRateByType = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_type_total",
			Help:      "Total number of errors by type",
		},
		[]string{"error_type", "severity"},
	)

	m.errorRateByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total number of errors by endpoint",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.errorLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "error_latency_milliseconds",
			Help:      "Latency of operations that resulted in errors",
			Buckets:   m.histogramBuckets,
		},
		[]string{"component", "error_type"},
	)

	// System Performance Metrics
	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_time_milliseconds",
		Help:      "GC pause time in milliseconds",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
}

// RecordValueWrite increments the created-values counter.
func RecordValueWrite() {
	globalManager.valueWrites.Inc()
}

// RecordValueUpdate increments the in-place update counter.
func RecordValueUpdate() {
	globalManager.valueUpdates.Inc()
}

// RecordValidationRejection increments the rejected-writes counter.
func RecordValidationRejection(valueType, reason string) {
	globalManager.validationRejections.WithLabelValues(valueType, reason).Inc()
}

// RecordHistoryAppend increments the history ledger counter.
func RecordHistoryAppend() {
	globalManager.historyAppends.Inc()
}

// RecordScoreComputation increments the score computations counter.
func RecordScoreComputation() {
	globalManager.scoreComputations.Inc()
}

// RecordComparisonRequest increments the comparison resolutions counter.
func RecordComparisonRequest() {
	globalManager.comparisonRequests.Inc()
}

// RecordRankingRequest increments the ranking computations counter.
func RecordRankingRequest() {
	globalManager.rankingRequests.Inc()
}

// RecordBulkRegeneration increments the bulk regeneration counter.
func RecordBulkRegeneration() {
	globalManager.bulkRegenerations.Inc()
}

// UpdateTotalSubjects sets the tracked subjects gauge.
func UpdateTotalSubjects(count int) {
	globalManager.totalSubjects.Set(float64(count))
}

// UpdateTotalValues sets the current value rows gauge.
func UpdateTotalValues(count int) {
	globalManager.totalValues.Set(float64(count))
}

// UpdateCatalogSize sets the catalog definitions gauge.
func UpdateCatalogSize(count int) {
	globalManager.catalogSize.Set(float64(count))
}

// RecordRepositoryWriteLatency records a repository write latency in milliseconds.
func RecordRepositoryWriteLatency(latencyMs float64) {
	globalManager.repositoryWriteLatency.Observe(latencyMs)
}

// RecordRepositoryQueryLatency records a repository query latency in milliseconds.
func RecordRepositoryQueryLatency(latencyMs float64) {
	globalManager.repositoryQueryLatency.Observe(latencyMs)
}

// RecordRepositoryError increments the repository errors counter for an operation.
func RecordRepositoryError(operation string) {
	globalManager.repositoryErrors.WithLabelValues(operation).Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByType records an error by type and severity.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error by endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorLatency records latency of an operation that failed.
func RecordErrorLatency(component, errorType string, latencyMs float64) {
	globalManager.errorLatency.WithLabelValues(component, errorType).Observe(latencyMs)
}

// UpdateSystemMemoryUsage sets the memory usage gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine count gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records a GC pause time observation.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// GetManager returns the global metrics manager.
func GetManager() *Manager {
	return globalManager
}
