package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/webcraftstudio/webcraft/internal/api/dto/common"
	contactdto "github.com/webcraftstudio/webcraft/internal/api/dto/v1/contact"
	"github.com/webcraftstudio/webcraft/internal/api/mapper"
	"github.com/webcraftstudio/webcraft/internal/service"
	"github.com/webcraftstudio/webcraft/internal/utils"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type AdminHandler struct {
	leads *service.LeadService
}

func NewAdminHandler(leads *service.LeadService) *AdminHandler {
	return &AdminHandler{leads: leads}
}

func (h *AdminHandler) ListLeads(c *gin.Context) {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		utils.HandleAPIError(c, err, common.ErrCodeBadRequest, "Invalid offset")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if err != nil || limit <= 0 {
		utils.HandleAPIError(c, err, common.ErrCodeBadRequest, "Invalid limit")
		return
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	leads, total, err := h.leads.List(c.Request.Context(), offset, limit)
	if err != nil {
		utils.HandleAPIError(c, err, common.ErrCodeInternalServer, "Failed to fetch leads")
		return
	}

	utils.HandleSuccess(c, contactdto.LeadListResponse{
		Leads:  mapper.LeadsToLeadResponses(leads),
		Total:  total,
		Offset: offset,
		Limit:  limit,
	})
}

func (h *AdminHandler) GetLead(c *gin.Context) {
	lead, err := h.leads.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		// HandleAPIError answers 404 for repository.ErrNotFound
		utils.HandleAPIError(c, err, common.ErrCodeInternalServer, "Failed to fetch lead")
		return
	}

	utils.HandleSuccess(c, mapper.LeadToLeadResponse(lead))
}
