// Package client talks to a running site over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/webcraftstudio/webcraft/internal/api/dto/common"
	contactdto "github.com/webcraftstudio/webcraft/internal/api/dto/v1/contact"
	"github.com/webcraftstudio/webcraft/internal/contact"
)

// SubmitPath is the JSON contact endpoint relative to the site root.
const SubmitPath = "/api/v1/contact/submit"

// HTTPSubmitter posts the form's field map to a site's contact endpoint.
type HTTPSubmitter struct {
	BaseURL string
	Client  *http.Client
	// RecaptchaToken is sent along when the site requires one.
	RecaptchaToken string
}

// NewHTTPSubmitter returns a submitter for the site at baseURL.
func NewHTTPSubmitter(baseURL string) *HTTPSubmitter {
	return &HTTPSubmitter{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type envelope struct {
	Success bool                        `json:"success"`
	Data    *contactdto.ContactResponse `json:"data,omitempty"`
	Error   *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details,omitempty"`
	} `json:"error,omitempty"`
}

// Submit implements contact.Submitter.
func (s *HTTPSubmitter) Submit(ctx context.Context, form contact.FormState) contact.Result {
	body, err := json.Marshal(contactdto.ContactRequest{
		Name:           form.Name,
		Email:          form.Email,
		Company:        form.Company,
		Budget:         string(form.Budget),
		Message:        form.Message,
		RecaptchaToken: s.RecaptchaToken,
	})
	if err != nil {
		return contact.Failed(fmt.Errorf("failed to encode contact form: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+SubmitPath, bytes.NewReader(body))
	if err != nil {
		return contact.Failed(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return contact.Failed(fmt.Errorf("failed to reach contact endpoint: %w", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return contact.Failed(fmt.Errorf("failed to read response: %w", err))
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if decodeErr == nil && env.Data != nil {
			return contact.Delivered(env.Data.Reference)
		}
		return contact.Delivered("")
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if decodeErr == nil && env.Error != nil {
			var details []string
			if env.Error.Code == string(common.ErrCodeValidation) && len(env.Error.Details) > 0 {
				_ = json.Unmarshal(env.Error.Details, &details)
			}
			if len(details) == 0 {
				details = []string{env.Error.Message}
			}
			return contact.Rejected(details...)
		}
		return contact.Rejected(fmt.Sprintf("request rejected with status %d", resp.StatusCode))
	default:
		return contact.Failed(fmt.Errorf("contact endpoint returned status %d", resp.StatusCode))
	}
}
