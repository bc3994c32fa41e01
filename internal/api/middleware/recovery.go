package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/webcraftstudio/webcraft/internal/api/constants"
	"github.com/webcraftstudio/webcraft/internal/logging"
)

// Recovery turns a panic into a 500 and logs the stack
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logging.GetLogger().Error("[PANIC] %s %s | %s | %v\n%s",
					c.Request.Method,
					c.Request.URL.Path,
					c.GetString(constants.ContextKeyRequestID),
					err,
					debug.Stack(),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()

		c.Next()
	}
}
