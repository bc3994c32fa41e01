package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/webcraftstudio/webcraft/internal/api/dto/common"
	"github.com/webcraftstudio/webcraft/internal/logging"
	"github.com/webcraftstudio/webcraft/internal/utils"
)

// AdminMiddleware guards operator endpoints with a static bearer token
type AdminMiddleware struct {
	token string
}

// NewAdminMiddleware creates a new admin middleware. An empty token locks
// the admin endpoints entirely.
func NewAdminMiddleware(token string) *AdminMiddleware {
	return &AdminMiddleware{token: token}
}

// RequireAdmin ensures the request carries the admin bearer token
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := logging.GetLogger()

		if m.token == "" {
			utils.HandleAPIError(c, nil, common.ErrCodeForbidden, "Admin access is disabled")
			c.Abort()
			return
		}

		parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.HandleAPIError(c, nil, common.ErrCodeUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(m.token)) != 1 {
			logger.Warn("Rejected admin token from %s", utils.GetRealIP(c))
			utils.HandleAPIError(c, nil, common.ErrCodeForbidden, "Admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}
