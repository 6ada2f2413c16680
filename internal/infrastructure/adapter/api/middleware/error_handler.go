package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
)

// ErrorHandler middleware recovers from panics and renders the error page
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": CurrentRequestID(c),
					"user_agent": c.Request.UserAgent(),
					"stack":      string(debug.Stack()),
				})

				c.Abort()
				c.HTML(http.StatusInternalServerError, "error.html", gin.H{
					"Title":     "Something went wrong",
					"Message":   "An unexpected error occurred. Please try again.",
					"RequestID": CurrentRequestID(c),
				})
			}
		}()

		c.Next()
	}
}
