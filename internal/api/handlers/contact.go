package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/webcraftstudio/webcraft/internal/api/constants"
	"github.com/webcraftstudio/webcraft/internal/api/dto/common"
	contactdto "github.com/webcraftstudio/webcraft/internal/api/dto/v1/contact"
	"github.com/webcraftstudio/webcraft/internal/api/middleware"
	"github.com/webcraftstudio/webcraft/internal/contact"
	"github.com/webcraftstudio/webcraft/internal/service"
	"github.com/webcraftstudio/webcraft/internal/utils"
)

type ContactHandler struct {
	leads *service.LeadService
}

func NewContactHandler(leads *service.LeadService) *ContactHandler {
	return &ContactHandler{leads: leads}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	// Get contact data from context (set by validation middleware)
	contactData, exists := c.Get(constants.ContextKeyContact)
	if !exists {
		utils.HandleAPIError(c, nil, common.ErrCodeInternalServer, "Contact data not found in context")
		return
	}

	req, ok := contactData.(contactdto.ContactRequest)
	if !ok {
		utils.HandleAPIError(c, nil, common.ErrCodeInternalServer, "Invalid contact data format")
		return
	}

	// Gather additional information about the submission
	info := service.SubmissionInfo{
		IPAddress:      utils.GetRealIP(c),
		UserAgent:      c.Request.UserAgent(),
		Referrer:       c.Request.Referer(),
		RecaptchaToken: req.RecaptchaToken,
	}

	lead, err := h.leads.Submit(c.Request.Context(), middleware.FormFromRequest(req), info)
	if err != nil {
		var verr *contact.ValidationError
		switch {
		case errors.As(err, &verr):
			utils.HandleValidationError(c, verr.Error(), verr.Errors)
		case errors.Is(err, service.ErrCaptcha):
			utils.HandleAPIError(c, err, common.ErrCodeCaptcha, "reCAPTCHA verification failed")
		default:
			utils.HandleAPIError(c, err, common.ErrCodeInternalServer, "Failed to send message")
		}
		return
	}

	utils.HandleCreated(c, contactdto.ContactResponse{
		Message:   h.leads.Variant().SuccessText(),
		Success:   true,
		Reference: lead.ID,
	})
}
