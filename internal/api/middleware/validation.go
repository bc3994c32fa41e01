package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webcraftstudio/webcraft/internal/api/constants"
	"github.com/webcraftstudio/webcraft/internal/api/dto/common"
	contactdto "github.com/webcraftstudio/webcraft/internal/api/dto/v1/contact"
	"github.com/webcraftstudio/webcraft/internal/contact"
	"github.com/webcraftstudio/webcraft/internal/utils"
	"github.com/webcraftstudio/webcraft/internal/validation"
)

// ValidationMiddleware handles request validation
type ValidationMiddleware struct {
	variant contact.Variant
}

// NewValidationMiddleware creates a new validation middleware checking
// contact requests against the given form variant
func NewValidationMiddleware(variant contact.Variant) *ValidationMiddleware {
	return &ValidationMiddleware{variant: variant}
}

// ValidateContactRequest binds a JSON or form contact request and runs the
// form rules on it. A valid request is stored under ContextKeyContact.
func (m *ValidationMiddleware) ValidateContactRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contactdto.ContactRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(
				common.ErrCodeBadRequest,
				"Invalid request body",
				validation.FormatValidationError(err),
			))
			c.Abort()
			return
		}

		result := contact.Validate(FormFromRequest(req), m.variant)
		if !result.Valid {
			utils.HandleValidationError(c, result.Message(), result.Errors)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyContact, req)
		c.Next()
	}
}

// FormFromRequest converts the wire request into form state
func FormFromRequest(req contactdto.ContactRequest) contact.FormState {
	return contact.FormState{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Budget:  contact.Budget(req.Budget),
		Message: req.Message,
	}
}
