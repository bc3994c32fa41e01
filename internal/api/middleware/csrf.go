package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webcraftstudio/webcraft/internal/api/constants"
	"github.com/webcraftstudio/webcraft/internal/logging"
	"github.com/webcraftstudio/webcraft/internal/service"
	"github.com/webcraftstudio/webcraft/internal/utils"
)

// IssueCSRFToken makes sure the visitor has a CSRF cookie and exposes the
// token to templates through the context
func IssueCSRFToken(csrfService service.CSRFService, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(constants.CookieCSRF)
		if err != nil || token == "" {
			token, err = csrfService.GenerateToken()
			if err != nil {
				logging.GetLogger().Error("Failed to generate CSRF token: %v", err)
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			utils.SetCSRFCookie(c, token, secure)
		}
		c.Set(constants.ContextKeyCSRFToken, token)
		c.Next()
	}
}

// CSRFMiddleware checks the CSRF token for unsafe methods. The token may be
// echoed in the X-CSRF-Token header or the _csrf form field.
func CSRFMiddleware(csrfService service.CSRFService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		submitted := c.GetHeader(constants.HeaderCSRF)
		if submitted == "" {
			submitted = c.PostForm(constants.FormFieldCSRF)
		}

		csrfCookie, err := c.Cookie(constants.CookieCSRF)
		if err != nil || !csrfService.ValidateToken(csrfCookie, submitted) {
			c.String(http.StatusForbidden, "Your session expired. Please reload the page and try again.")
			c.Abort()
			return
		}
		c.Next()
	}
}
