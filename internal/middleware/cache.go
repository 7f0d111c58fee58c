package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/memovasquez/hydrant/internal/service"
	"github.com/memovasquez/hydrant/pkg/cache"
)

// cacheKeyPrefix namespaces catalog response entries in redis.
const cacheKeyPrefix = "catalog:response:"

type bodyCapture struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyCapture) Write(data []byte) (int, error) {
	w.buf.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *bodyCapture) WriteString(data string) (int, error) {
	w.buf.WriteString(data)
	return w.ResponseWriter.WriteString(data)
}

// CatalogCache serves catalog GET responses from redis. The catalog is
// immutable for a term so entries expire by TTL alone; anything but a 200
// passes through uncached.
func CatalogCache(store *cache.ResponseStore, metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cacheKeyPrefix + c.Request.URL.RequestURI()

		start := time.Now()
		body, hit := store.Get(c.Request.Context(), key)
		metricsSvc.RecordCacheOperation(hit, time.Since(start))

		if hit {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		c.Header("X-Cache", "MISS")
		capture := &bodyCapture{ResponseWriter: c.Writer}
		c.Writer = capture
		c.Next()

		if c.Writer.Status() == http.StatusOK && capture.buf.Len() > 0 {
			store.Set(c.Request.Context(), key, capture.buf.Bytes())
		}
	}
}
