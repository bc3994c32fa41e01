package contact

import "time"

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name           string `json:"name" form:"name" binding:"max=100"`
	Email          string `json:"email" form:"email" binding:"max=255"`
	Company        string `json:"company,omitempty" form:"company" binding:"max=200"`
	Budget         string `json:"budget,omitempty" form:"budget" binding:"max=50"`
	Message        string `json:"message" form:"message" binding:"max=5000"`
	RecaptchaToken string `json:"recaptcha_token,omitempty" form:"recaptcha_token"`
}

// ContactResponse represents the response after submitting a contact form
type ContactResponse struct {
	Message   string `json:"message"`
	Success   bool   `json:"success"`
	Reference string `json:"reference,omitempty"`
}

// LeadResponse is a stored lead as exposed to operators
type LeadResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Budget    string    `json:"budget,omitempty"`
	Message   string    `json:"message"`
	Variant   string    `json:"variant"`
	CreatedAt time.Time `json:"created_at"`
}

// LeadListResponse is a page of stored leads
type LeadListResponse struct {
	Leads  []LeadResponse `json:"leads"`
	Total  int64          `json:"total"`
	Offset int            `json:"offset"`
	Limit  int            `json:"limit"`
}
