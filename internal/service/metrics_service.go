package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/eduverse-api/internal/models"
)

// Fallback reasons reported on datastore_fallback_total.
const (
	FallbackReasonError = "error"
	FallbackReasonEmpty = "empty"
)

// AI outcomes reported on ai_requests_total.
const (
	AIOutcomeOK           = "ok"
	AIOutcomeEmpty        = "empty"
	AIOutcomeError        = "error"
	AIOutcomeInvalid      = "invalid"
	AIOutcomeUnconfigured = "unconfigured"
)

// MetricsService encapsulates Prometheus instrumentation and provides lightweight snapshots for API consumption.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	fallbackTotal   *prometheus.CounterVec
	writeFailures   *prometheus.CounterVec
	writesSkipped   *prometheus.CounterVec
	aiRequests      *prometheus.CounterVec
	aiDuration      *prometheus.HistogramVec
	bySource        *prometheus.CounterVec

	requestCount         uint64
	requestDurationTotal uint64
	fallbackCount        uint64
	writeFailureCount    uint64
	skippedWriteCount    uint64
	aiRequestCount       uint64
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	fallbackTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "datastore_fallback_total",
		Help: "Reads served from the fallback dataset",
	}, []string{"entity", "reason"})

	writeFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "datastore_write_failures_total",
		Help: "Durability writes that failed against the remote store",
	}, []string{"entity"})

	writesSkipped := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "datastore_writes_skipped_total",
		Help: "Writes of seeded records that never reach the remote store",
	}, []string{"entity"})

	aiRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ai_requests_total",
		Help: "Generative model capability invocations by outcome",
	}, []string{"capability", "outcome"})

	aiDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ai_request_duration_seconds",
		Help:    "Latency of generative model calls",
		Buckets: []float64{.25, .5, 1, 2, 4, 8, 16, 32},
	}, []string{"capability"})

	bySource := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_responses_by_source_total",
		Help: "Data responses by the backend that served them",
	}, []string{"source"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, fallbackTotal, writeFailures, writesSkipped, aiRequests, aiDuration, bySource, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:        registry,
		handler:         handler,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		fallbackTotal:   fallbackTotal,
		writeFailures:   writeFailures,
		writesSkipped:   writesSkipped,
		aiRequests:      aiRequests,
		aiDuration:      aiDuration,
		bySource:        bySource,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Registry returns the underlying registry so other collectors can be attached.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveHTTPRequest records request metrics and aggregates simple stats for snapshots.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
}

// RecordResponseSource counts a response served from the remote store or the fallback.
func (m *MetricsService) RecordResponseSource(source string) {
	if m == nil || source == "" {
		return
	}
	m.bySource.WithLabelValues(source).Inc()
}

// RecordFallback counts a read served from the fallback dataset.
func (m *MetricsService) RecordFallback(entity, reason string) {
	if m == nil {
		return
	}
	m.fallbackTotal.WithLabelValues(entity, reason).Inc()
	atomic.AddUint64(&m.fallbackCount, 1)
}

// RecordWriteFailure counts a failed durability write.
func (m *MetricsService) RecordWriteFailure(entity string) {
	if m == nil {
		return
	}
	m.writeFailures.WithLabelValues(entity).Inc()
	atomic.AddUint64(&m.writeFailureCount, 1)
}

// RecordWriteSkipped counts a write that was not attempted because the record is seeded.
func (m *MetricsService) RecordWriteSkipped(entity string) {
	if m == nil {
		return
	}
	m.writesSkipped.WithLabelValues(entity).Inc()
	atomic.AddUint64(&m.skippedWriteCount, 1)
}

// RecordAIRequest counts a capability invocation. Duration is ignored when zero.
func (m *MetricsService) RecordAIRequest(capability, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.aiRequests.WithLabelValues(capability, outcome).Inc()
	if duration > 0 {
		m.aiDuration.WithLabelValues(capability).Observe(duration.Seconds())
	}
	atomic.AddUint64(&m.aiRequestCount, 1)
}

// Snapshot returns aggregated metrics suitable for a JSON status endpoint.
func (m *MetricsService) Snapshot() models.SystemMetrics {
	if m == nil {
		return models.SystemMetrics{}
	}
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)

	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}

	return models.SystemMetrics{
		RequestsTotal:            requests,
		AverageRequestDurationMs: avgRequestMs,
		FallbackReads:            atomic.LoadUint64(&m.fallbackCount),
		WriteFailures:            atomic.LoadUint64(&m.writeFailureCount),
		SkippedWrites:            atomic.LoadUint64(&m.skippedWriteCount),
		AIRequests:               atomic.LoadUint64(&m.aiRequestCount),
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
}
