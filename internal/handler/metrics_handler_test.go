package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/eduverse-api/internal/service"
)

type pingerStub struct{ err error }

func (p pingerStub) PingContext(ctx context.Context) error { return p.err }

type aiStub bool

func (a aiStub) Configured() bool { return bool(a) }

func TestMetricsHandlerReadyStaysReadyWhenStoreIsDown(t *testing.T) {
	h := NewMetricsHandler(service.NewMetricsService(), pingerStub{err: errors.New("refused")}, aiStub(false))
	r := gin.New()
	r.GET("/ready", h.Ready)

	w, env := perform(t, r, http.MethodGet, "/ready", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"store":"unreachable"`)
	assert.Contains(t, string(env.Data), `"ai":false`)
}

func TestMetricsHandlerPrometheus(t *testing.T) {
	metrics := service.NewMetricsService()
	metrics.RecordFallback("task", service.FallbackReasonError)
	h := NewMetricsHandler(metrics, nil, nil)
	r := gin.New()
	r.GET("/metrics", h.Prometheus)

	w, _ := perform(t, r, http.MethodGet, "/metrics", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `datastore_fallback_total{entity="task",reason="error"} 1`)
}
