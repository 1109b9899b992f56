package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/eduverse-api/internal/service"
	"github.com/noah-isme/eduverse-api/pkg/response"
)

type storePinger interface {
	PingContext(ctx context.Context) error
}

type aiStatus interface {
	Configured() bool
}

// MetricsHandler exposes observability endpoints.
type MetricsHandler struct {
	metrics *service.MetricsService
	store   storePinger
	ai      aiStatus
}

// NewMetricsHandler constructs a metrics handler. store and ai may be nil.
func NewMetricsHandler(metrics *service.MetricsService, store storePinger, ai aiStatus) *MetricsHandler {
	return &MetricsHandler{metrics: metrics, store: store, ai: ai}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Health responds with a generic OK payload for liveness probes.
func (h *MetricsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports which backends are reachable. The service stays ready while the store is
// down because reads are served from the fallback dataset.
func (h *MetricsHandler) Ready(c *gin.Context) {
	store := "unreachable"
	if h.store != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.store.PingContext(ctx); err == nil {
			store = "connected"
		}
	}
	ai := h.ai != nil && h.ai.Configured()

	response.OK(c, gin.H{
		"status":  "ready",
		"store":   store,
		"ai":      ai,
		"runtime": h.metrics.Snapshot(),
	})
}
