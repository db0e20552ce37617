package logger

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// GinRequestLogger logs one line per HTTP request with method, path, status
// and latency. Correlation ID is injected by the handler from the request
// context.
func GinRequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		slog.InfoContext(c.Request.Context(), "HTTP request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	}
}
