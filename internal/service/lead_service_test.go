package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webcraftstudio/webcraft/internal/contact"
	"github.com/webcraftstudio/webcraft/internal/logging"
	"github.com/webcraftstudio/webcraft/internal/repository"
)

// Mock LeadRepository
type mockLeadRepository struct {
	repository.LeadRepository
	mu        sync.Mutex
	created   []*repository.Lead
	createErr error
}

func (m *mockLeadRepository) Create(ctx context.Context, lead *repository.Lead) (*repository.Lead, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *lead
	stored.ID = "lead-" + string(rune('0'+len(m.created)+1))
	m.created = append(m.created, &stored)
	return &stored, nil
}

func (m *mockLeadRepository) List(ctx context.Context, offset, limit int) ([]*repository.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.created, nil
}

func (m *mockLeadRepository) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.created)), nil
}

func quietLogger() *logging.Logger {
	return logging.NewWriterLogger(io.Discard, logging.LevelError)
}

func validForm() contact.FormState {
	return contact.FormState{
		Name:    "Jo Smith",
		Email:   " Jo@Company.com ",
		Company: "<b>Acme</b>",
		Budget:  contact.Budget25kTo50k,
		Message: "We need a new website.",
	}
}

func TestLeadServiceSubmitStoresSanitizedLead(t *testing.T) {
	repo := &mockLeadRepository{}
	svc := NewLeadService(repo, contact.VariantPage, WithLogger(quietLogger()))

	lead, err := svc.Submit(context.Background(), validForm(), SubmissionInfo{IPAddress: "10.0.0.1", UserAgent: "test"})
	require.NoError(t, err)

	assert.Equal(t, "lead-1", lead.ID)
	assert.Equal(t, "jo@company.com", lead.Email)
	assert.Equal(t, "Acme", lead.Company)
	assert.Equal(t, "page", lead.Variant)
	assert.Equal(t, "10.0.0.1", lead.IPAddress)
	require.Len(t, repo.created, 1)
}

func TestLeadServiceSubmitRejectsInvalidForm(t *testing.T) {
	repo := &mockLeadRepository{}
	svc := NewLeadService(repo, contact.VariantStandalone, WithLogger(quietLogger()))

	_, err := svc.Submit(context.Background(), contact.FormState{Email: "a@b.com", Message: "<script>x</script>"}, SubmissionInfo{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var verr *contact.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{contact.MsgNameRequired, contact.MsgBusinessRequired, contact.MsgMessageRequired}, verr.Errors)
	assert.Empty(t, repo.created)
}

func TestLeadServiceForwardsToTelegram(t *testing.T) {
	var got telegramMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botsecret/sendMessage", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	repo := &mockLeadRepository{}
	svc := NewLeadService(repo, contact.VariantPage,
		WithLogger(quietLogger()),
		WithTelegram(NewTelegramService("secret", "42", srv.URL)),
	)

	_, err := svc.Submit(context.Background(), validForm(), SubmissionInfo{})
	require.NoError(t, err)

	assert.Equal(t, "42", got.ChatID)
	assert.Equal(t, "HTML", got.ParseMode)
	assert.Contains(t, got.Text, "<b>Name:</b> Jo Smith")
	assert.Contains(t, got.Text, "<b>Budget:</b> $25,000 - $50,000")
}

func TestLeadServiceTelegramFailureIsNotFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	repo := &mockLeadRepository{}
	svc := NewLeadService(repo, contact.VariantPage,
		WithLogger(logging.NewWriterLogger(&buf, logging.LevelInfo)),
		WithTelegram(NewTelegramService("secret", "42", srv.URL)),
	)

	_, err := svc.Submit(context.Background(), validForm(), SubmissionInfo{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Failed to forward lead")
}

func TestLeadServiceRecaptcha(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		ok := r.PostForm.Get("response") == "good"
		json.NewEncoder(w).Encode(map[string]interface{}{"success": ok, "score": 0.9})
	}))
	defer srv.Close()

	repo := &mockLeadRepository{}
	svc := NewLeadService(repo, contact.VariantPage,
		WithLogger(quietLogger()),
		WithRecaptcha(NewRecaptchaService("key", srv.URL), 0.5),
	)

	_, err := svc.Submit(context.Background(), validForm(), SubmissionInfo{RecaptchaToken: "bad"})
	assert.ErrorIs(t, err, ErrCaptcha)

	_, err = svc.Submit(context.Background(), validForm(), SubmissionInfo{RecaptchaToken: "good"})
	assert.NoError(t, err)
}

func TestLeadSubmitterOutcomes(t *testing.T) {
	repo := &mockLeadRepository{}
	svc := NewLeadService(repo, contact.VariantPage, WithLogger(quietLogger()))
	sub := LeadSubmitter{Service: svc}

	res := sub.Submit(context.Background(), validForm())
	assert.Equal(t, contact.OutcomeDelivered, res.Outcome)
	assert.Equal(t, "lead-1", res.Reference)

	res = sub.Submit(context.Background(), contact.FormState{Name: "Jo", Email: "nope", Message: "hi"})
	assert.Equal(t, contact.OutcomeRejected, res.Outcome)
	assert.Equal(t, []string{contact.MsgEmailInvalid}, res.Errors)

	repo.createErr = errors.New("disk full")
	res = sub.Submit(context.Background(), validForm())
	assert.Equal(t, contact.OutcomeFailed, res.Outcome)
	assert.ErrorContains(t, res.Err, "disk full")
}

func TestLeadServiceList(t *testing.T) {
	repo := &mockLeadRepository{}
	svc := NewLeadService(repo, contact.VariantPage, WithLogger(quietLogger()))
	_, err := svc.Submit(context.Background(), validForm(), SubmissionInfo{})
	require.NoError(t, err)

	leads, total, err := svc.List(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Len(t, leads, 1)
	assert.Equal(t, int64(1), total)
}

func TestFormatLeadEscapesHTML(t *testing.T) {
	text := FormatLead(&repository.Lead{Name: "A <B>", Email: "a@b.com", Message: "x & y", Referrer: "https://webcraft.com/contact"})
	assert.Contains(t, text, "A &lt;B&gt;")
	assert.Contains(t, text, "x &amp; y")
	assert.Contains(t, text, "From: https://webcraft.com/contact")
	assert.NotContains(t, text, "Company")
}

func TestFormatLeadFitsTelegramLimit(t *testing.T) {
	long := func(r string, n int) string { return strings.Repeat(r, n) }
	lead := &repository.Lead{
		Name:      long("n", 300),
		Email:     long("e", 300) + "@example.com",
		Company:   long("c", 300),
		Budget:    long("b", 300),
		Message:   long("m", 5000),
		IPAddress: "203.0.113.7",
		Referrer:  "https://webcraft.com/" + long("r", 500),
	}

	text := FormatLead(lead)
	assert.LessOrEqual(t, utf16Len(text), 4096)
	assert.Contains(t, text, "…")
	assert.Contains(t, text, long("m", 100))

	lead.Message = long("😀", 5000)
	assert.LessOrEqual(t, utf16Len(FormatLead(lead)), 4096)
}

func TestClip(t *testing.T) {
	assert.Equal(t, "short", clip("short", 10))
	assert.Equal(t, "abcd…", clip("abcdefgh", 5))
	assert.Equal(t, "😀😀…", clip("😀😀😀😀", 5))
	assert.Equal(t, "héllo", clip("héllo", 5))
}

func TestCSRFService(t *testing.T) {
	s := NewCSRFService()
	tok, err := s.GenerateToken()
	require.NoError(t, err)
	assert.True(t, s.ValidateToken(tok, tok))
	assert.False(t, s.ValidateToken(tok, tok+"x"))
	assert.False(t, s.ValidateToken("", ""))
}

func TestCSRFTokenSurvivesCookieEscaping(t *testing.T) {
	s := NewCSRFService()
	for i := 0; i < 20; i++ {
		tok, err := s.GenerateToken()
		require.NoError(t, err)
		assert.Len(t, tok, 43)
		assert.Equal(t, tok, url.QueryEscape(tok))
	}
}
