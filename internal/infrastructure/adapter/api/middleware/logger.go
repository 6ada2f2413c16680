package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
)

// Logger middleware logs incoming requests and their responses. Static
// asset hits are skipped to keep the log readable.
func Logger(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") {
			c.Next()
			return
		}

		start := time.Now()
		method := c.Request.Method
		ip := c.ClientIP()

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		logger.Info("Request processed", map[string]any{
			"method":     method,
			"path":       path,
			"status":     statusCode,
			"latency_ms": latency.Milliseconds(),
			"ip":         ip,
			"request_id": CurrentRequestID(c),
			"errors":     c.Errors.Errors(),
		})
	}
}
