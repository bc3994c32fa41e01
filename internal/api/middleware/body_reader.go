package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webcraftstudio/webcraft/internal/api/constants"
	"github.com/webcraftstudio/webcraft/internal/api/dto/common"
)

// DefaultMaxBodySize caps request bodies; a contact form is a few KB
const DefaultMaxBodySize = 1 << 20

// PreserveRequestBody middleware reads the request body once and restores it
// This allows validators and controllers to both read the body
func PreserveRequestBody(maxBodySize int64) gin.HandlerFunc {
	if maxBodySize <= 0 {
		maxBodySize = DefaultMaxBodySize
	}

	return func(c *gin.Context) {
		// Only process methods that carry a body
		if c.Request.Body == nil || (c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut && c.Request.Method != http.MethodPatch) {
			c.Next()
			return
		}

		bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodySize+1))
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}

		if int64(len(bodyBytes)) > maxBodySize {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, common.NewErrorResponse(common.ErrCodePayloadTooLarge, "Request body too large", nil))
			return
		}

		// Restore the body for subsequent middleware
		c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		c.Set(constants.ContextKeyRawBody, bodyBytes)

		c.Next()
	}
}
