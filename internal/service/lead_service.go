package service

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/webcraftstudio/webcraft/internal/api/sanitization"
	"github.com/webcraftstudio/webcraft/internal/contact"
	"github.com/webcraftstudio/webcraft/internal/logging"
	"github.com/webcraftstudio/webcraft/internal/repository"
)

const tracerName = "github.com/webcraftstudio/webcraft/internal/service"

// SubmissionInfo describes where a submission came from
type SubmissionInfo struct {
	IPAddress      string
	UserAgent      string
	Referrer       string
	RecaptchaToken string
}

// LeadService is the server side of the contact endpoint
type LeadService struct {
	repo      repository.LeadRepository
	variant   contact.Variant
	telegram  *TelegramService
	recaptcha *RecaptchaService
	minScore  float64
	logger    *logging.Logger
}

// LeadServiceOption configures a LeadService
type LeadServiceOption func(*LeadService)

// WithTelegram forwards stored leads to Telegram
func WithTelegram(t *TelegramService) LeadServiceOption {
	return func(s *LeadService) { s.telegram = t }
}

// WithRecaptcha requires a passing reCAPTCHA token on every submission
func WithRecaptcha(r *RecaptchaService, minScore float64) LeadServiceOption {
	return func(s *LeadService) {
		s.recaptcha = r
		s.minScore = minScore
	}
}

// WithLogger overrides the global logger
func WithLogger(l *logging.Logger) LeadServiceOption {
	return func(s *LeadService) { s.logger = l }
}

// NewLeadService creates a lead service validating against variant
func NewLeadService(repo repository.LeadRepository, variant contact.Variant, opts ...LeadServiceOption) *LeadService {
	s := &LeadService{
		repo:    repo,
		variant: variant,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.GetLogger()
	}
	return s
}

// Variant returns the form variant submissions are validated against
func (s *LeadService) Variant() contact.Variant {
	return s.variant
}

// Submit validates, sanitizes and stores a form, then forwards it. A
// forwarding failure is logged; the lead is already stored.
func (s *LeadService) Submit(ctx context.Context, form contact.FormState, info SubmissionInfo) (*repository.Lead, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "LeadService.Submit")
	defer span.End()
	span.SetAttributes(attribute.String("contact.variant", string(s.variant)))

	lead, err := s.submit(ctx, form, info)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "lead rejected")
		return nil, err
	}
	span.SetAttributes(attribute.String("lead.id", lead.ID))
	return lead, nil
}

func (s *LeadService) submit(ctx context.Context, form contact.FormState, info SubmissionInfo) (*repository.Lead, error) {
	clean := contact.FormState{
		Name:    sanitization.SanitizeString(form.Name),
		Email:   sanitization.SanitizeEmail(form.Email),
		Company: sanitization.SanitizeString(form.Company),
		Budget:  contact.Budget(sanitization.SanitizeString(string(form.Budget))),
		Message: sanitization.SanitizeText(form.Message),
	}

	// validate after sanitizing so a message made only of markup is rejected
	if err := contact.Validate(clean, s.variant).Err(); err != nil {
		return nil, err
	}

	if s.recaptcha.Enabled() {
		ok, err := s.recaptcha.VerifyToken(ctx, info.RecaptchaToken, s.minScore)
		if err != nil || !ok {
			return nil, fmt.Errorf("%w: %v", ErrCaptcha, err)
		}
	}

	lead, err := s.repo.Create(ctx, &repository.Lead{
		Name:      clean.Name,
		Email:     clean.Email,
		Company:   clean.Company,
		Budget:    string(clean.Budget),
		Message:   clean.Message,
		Variant:   string(s.variant),
		IPAddress: info.IPAddress,
		UserAgent: info.UserAgent,
		Referrer:  info.Referrer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store lead: %w", err)
	}
	s.logger.Info("Stored lead %s from %s", lead.ID, lead.Email)

	if s.telegram.Enabled() {
		if err := s.telegram.SendContactMessage(ctx, lead); err != nil {
			s.logger.Warn("Failed to forward lead %s to Telegram: %v", lead.ID, err)
		}
	}

	return lead, nil
}

// Get returns one stored lead
func (s *LeadService) Get(ctx context.Context, id string) (*repository.Lead, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns stored leads newest first
func (s *LeadService) List(ctx context.Context, offset, limit int) ([]*repository.Lead, int64, error) {
	leads, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return leads, total, nil
}

// LeadSubmitter lets a contact.Controller deliver straight into a
// LeadService, as the server-rendered contact page does
type LeadSubmitter struct {
	Service *LeadService
	Info    SubmissionInfo
}

// Submit implements contact.Submitter
func (s LeadSubmitter) Submit(ctx context.Context, form contact.FormState) contact.Result {
	lead, err := s.Service.Submit(ctx, form, s.Info)
	if err == nil {
		return contact.Delivered(lead.ID)
	}

	var verr *contact.ValidationError
	switch {
	case errors.As(err, &verr):
		return contact.Rejected(verr.Errors...)
	case errors.Is(err, ErrCaptcha):
		return contact.Rejected("Captcha verification failed")
	default:
		return contact.Failed(err)
	}
}
