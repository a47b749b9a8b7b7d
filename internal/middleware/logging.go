package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/testdrivenio/flask-spa-auth/internal/logger"
)

// RequestLogger emits one structured access-log line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info("http request", map[string]any{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"request_id": c.GetString(requestIDKey),
		})
	}
}
