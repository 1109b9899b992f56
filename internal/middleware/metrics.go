package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/eduverse-api/internal/service"
)

// unmatchedRoute labels requests that hit no route, so arbitrary paths cannot grow the
// label set.
const unmatchedRoute = "unmatched"

// Metrics records request latency per route template and counts data responses by the
// backend that served them.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
		metricsSvc.RecordResponseSource(c.Writer.Header().Get(HeaderDataSource))
	}
}
