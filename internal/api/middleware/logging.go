package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/webcraftstudio/webcraft/internal/logging"
	"github.com/webcraftstudio/webcraft/internal/utils"
)

// RequestLogger is a middleware that logs request information.
// Lines are only written when the logger has request logging enabled.
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	if !logger.LogsRequests() {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		logger.LogHTTPRequest(
			c.Request.Method,
			path,
			utils.GetRealIP(c),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
