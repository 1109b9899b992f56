package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsServiceCounters(t *testing.T) {
	m := NewMetricsService()

	m.RecordFallback("task", FallbackReasonError)
	m.RecordFallback("task", FallbackReasonError)
	m.RecordWriteSkipped("habit")
	m.RecordWriteFailure("task")
	m.RecordAIRequest("explain", AIOutcomeOK, time.Second)
	m.ObserveHTTPRequest("GET", "/api/v1/users", 200, 10*time.Millisecond)
	m.RecordResponseSource("fallback")
	m.RecordResponseSource("")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.fallbackTotal.WithLabelValues("task", FallbackReasonError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.writesSkipped.WithLabelValues("habit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bySource.WithLabelValues("fallback")))

	snap := m.Snapshot()
	assert.Equal(t, uint64(2), snap.FallbackReads)
	assert.Equal(t, uint64(1), snap.WriteFailures)
	assert.Equal(t, uint64(1), snap.SkippedWrites)
	assert.Equal(t, uint64(1), snap.AIRequests)
	assert.Equal(t, uint64(1), snap.RequestsTotal)
	assert.InDelta(t, 10.0, snap.AverageRequestDurationMs, 0.001)
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var m *MetricsService
	m.RecordFallback("task", FallbackReasonEmpty)
	m.RecordAIRequest("quiz", AIOutcomeError, 0)
	assert.Equal(t, uint64(0), m.Snapshot().FallbackReads)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
