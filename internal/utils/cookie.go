package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webcraftstudio/webcraft/internal/api/constants"
)

// SetCSRFCookie stores the CSRF token the contact form must echo back.
// It is readable by the page only through the rendered hidden field.
func SetCSRFCookie(c *gin.Context, token string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		constants.CookieCSRF,
		token,
		constants.CookieDuration24h,
		constants.CookiePathRoot,
		"",
		secure,
		true,
	)
}
