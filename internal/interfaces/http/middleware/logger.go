package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/logger"
)

// LoggerMiddleware logs each request through the structured logger after
// the handler chain finishes.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}

		logger.LogRequest(c.Request.Context(), c.Request.Method, path, c.Writer.Status(), latency, c.ClientIP())
	}
}
