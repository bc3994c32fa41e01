package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webcraftstudio/webcraft/internal/api/dto/common"
	"github.com/webcraftstudio/webcraft/internal/logging"
	"github.com/webcraftstudio/webcraft/internal/repository"
)

// LogError logs an error with a message using the singleton logger
func LogError(err error, message string) {
	logging.GetLogger().Error("%s: %v", message, err)
}

// StatusForCode maps an API error code onto an HTTP status
func StatusForCode(code common.ErrorCode) int {
	switch code {
	case common.ErrCodeValidation, common.ErrCodeBadRequest, common.ErrCodeCaptcha:
		return http.StatusBadRequest
	case common.ErrCodePayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case common.ErrCodeNotFound:
		return http.StatusNotFound
	case common.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case common.ErrCodeForbidden:
		return http.StatusForbidden
	case common.ErrCodeTooManyRequests:
		return http.StatusTooManyRequests
	case common.ErrCodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// HandleAPIError is a utility function for consistent error handling across the API
// It ensures sensitive error details are only exposed in non-release mode
func HandleAPIError(c *gin.Context, err error, code common.ErrorCode, message string) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, common.NewErrorResponse(common.ErrCodeNotFound, "Resource not found", nil))
		return
	}

	status := StatusForCode(code)
	logging.GetLogger().LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	var errorDetails interface{}
	if err != nil && gin.Mode() != gin.ReleaseMode {
		errorDetails = err.Error()
	}

	c.JSON(status, common.NewErrorResponse(code, message, errorDetails))
}

// HandleValidationError answers 400 with every failing rule as details
func HandleValidationError(c *gin.Context, message string, details []string) {
	c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.ErrCodeValidation, message, details))
}
