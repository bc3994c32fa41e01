package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/webcraftstudio/webcraft/internal/db"
)

const leadColumns = "id, name, email, company, budget, message, variant, ip_address, user_agent, referrer, created_at"

// leadRepository implements LeadRepository over database/sql
type leadRepository struct {
	db *db.Database
}

// NewLeadRepository creates a new LeadRepository instance
func NewLeadRepository(database *db.Database) LeadRepository {
	return &leadRepository{
		db: database,
	}
}

// Create stores a new lead
func (r *leadRepository) Create(ctx context.Context, lead *Lead) (*Lead, error) {
	stored := *lead
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	// stored in UTC so created_at compares correctly as text on SQLite
	stored.CreatedAt = stored.CreatedAt.UTC()

	query := r.db.Rebind("INSERT INTO lead (" + leadColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
	_, err := r.db.DB.ExecContext(ctx, query,
		stored.ID,
		stored.Name,
		stored.Email,
		stored.Company,
		stored.Budget,
		stored.Message,
		stored.Variant,
		stored.IPAddress,
		stored.UserAgent,
		stored.Referrer,
		stored.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert lead: %w", err)
	}
	return &stored, nil
}

// GetByID returns a lead by ID
func (r *leadRepository) GetByID(ctx context.Context, id string) (*Lead, error) {
	query := r.db.Rebind("SELECT " + leadColumns + " FROM lead WHERE id = ?")
	lead, err := scanLead(r.db.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load lead %s: %w", id, err)
	}
	return lead, nil
}

// List returns leads newest first
func (r *leadRepository) List(ctx context.Context, offset, limit int) ([]*Lead, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := r.db.Rebind("SELECT " + leadColumns + " FROM lead ORDER BY created_at DESC, id LIMIT ? OFFSET ?")
	rows, err := r.db.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	var leads []*Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

// Count returns the total number of leads
func (r *leadRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM lead").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return n, nil
}

// DeleteOlderThan removes leads received before cutoff
func (r *leadRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.DB.ExecContext(ctx, r.db.Rebind("DELETE FROM lead WHERE created_at < ?"), cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete old leads: %w", err)
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*Lead, error) {
	var l Lead
	err := row.Scan(
		&l.ID,
		&l.Name,
		&l.Email,
		&l.Company,
		&l.Budget,
		&l.Message,
		&l.Variant,
		&l.IPAddress,
		&l.UserAgent,
		&l.Referrer,
		&l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
