package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/eduverse-api/internal/models"
)

const (
	responseMetaKey = "response_meta"
	sourceKey       = "source"
)

// WithResponseMeta initialises response metadata storage on the request context.
func WithResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Set(responseMetaKey, map[string]interface{}{})
		c.Next()
		meta := ensureMeta(c)
		if _, exists := meta["processing_time_ms"]; !exists {
			meta["processing_time_ms"] = time.Since(start).Milliseconds()
		}
	}
}

// HeaderDataSource carries the backend that served a data response.
const HeaderDataSource = "X-Data-Source"

// SetSource records whether the response was served by the remote store or the
// fallback dataset.
func SetSource(c *gin.Context, source models.DataSource) {
	if source == "" {
		return
	}
	ensureMeta(c)[sourceKey] = source
	c.Header(HeaderDataSource, string(source))
}

// ExtractMeta returns the metadata map stored on the context.
func ExtractMeta(c *gin.Context) map[string]interface{} {
	if c == nil {
		return nil
	}
	if meta, exists := c.Get(responseMetaKey); exists {
		if typed, ok := meta.(map[string]interface{}); ok {
			return typed
		}
	}
	return nil
}

func ensureMeta(c *gin.Context) map[string]interface{} {
	if meta := ExtractMeta(c); meta != nil {
		return meta
	}
	meta := make(map[string]interface{})
	if c != nil {
		c.Set(responseMetaKey, meta)
	}
	return meta
}
