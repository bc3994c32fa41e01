package repository

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a lookup matches no row
var ErrNotFound = errors.New("not found")

// Lead is an accepted contact form submission
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Budget    string    `json:"budget,omitempty"`
	Message   string    `json:"message"`
	Variant   string    `json:"variant"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	Referrer  string    `json:"referrer,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LeadRepository defines the interface for lead-related database operations
type LeadRepository interface {
	// Create stores a new lead, assigning ID and CreatedAt when unset
	Create(ctx context.Context, lead *Lead) (*Lead, error)
	// GetByID returns a lead by ID
	GetByID(ctx context.Context, id string) (*Lead, error)
	// List returns the newest leads first
	List(ctx context.Context, offset, limit int) ([]*Lead, error)
	// Count returns the total number of leads
	Count(ctx context.Context) (int64, error)
	// DeleteOlderThan removes leads received before cutoff
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
