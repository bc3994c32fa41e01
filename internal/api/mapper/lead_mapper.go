package mapper

import (
	"github.com/webcraftstudio/webcraft/internal/api/dto/v1/contact"
	"github.com/webcraftstudio/webcraft/internal/repository"
)

// LeadToLeadResponse maps a stored Lead to a LeadResponse DTO
func LeadToLeadResponse(l *repository.Lead) contact.LeadResponse {
	return contact.LeadResponse{
		ID:        l.ID,
		Name:      l.Name,
		Email:     l.Email,
		Company:   l.Company,
		Budget:    l.Budget,
		Message:   l.Message,
		Variant:   l.Variant,
		CreatedAt: l.CreatedAt,
	}
}

// LeadsToLeadResponses maps a slice of Leads to a slice of LeadResponse DTOs
func LeadsToLeadResponses(leads []*repository.Lead) []contact.LeadResponse {
	result := make([]contact.LeadResponse, len(leads))
	for i, l := range leads {
		result[i] = LeadToLeadResponse(l)
	}
	return result
}
