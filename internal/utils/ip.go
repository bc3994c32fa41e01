package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// GetRealIP extracts the client IP from various headers, respecting reverse proxies
func GetRealIP(c *gin.Context) string {
	// Try X-Real-IP first (set by the proxy in front of us)
	if ip := c.GetHeader("X-Real-IP"); ip != "" {
		return ip
	}

	// X-Forwarded-For is "client, proxy1, proxy2"; the leftmost is the client
	if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
		ips := strings.Split(forwardedFor, ",")
		if clientIP := strings.TrimSpace(ips[0]); clientIP != "" {
			return clientIP
		}
	}

	return c.ClientIP()
}
