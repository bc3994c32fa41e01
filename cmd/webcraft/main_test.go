package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webcraftstudio/webcraft/internal/client"
	"github.com/webcraftstudio/webcraft/internal/contact"
	"github.com/webcraftstudio/webcraft/internal/db"
	"github.com/webcraftstudio/webcraft/internal/repository"
)

func validFields() map[contact.Field]string {
	return map[contact.Field]string{
		contact.FieldName:    "Jane Doe",
		contact.FieldEmail:   "jane@example.com",
		contact.FieldMessage: "Hello",
	}
}

func TestSendContactSimulated(t *testing.T) {
	var out bytes.Buffer
	err := sendContact(context.Background(), &out, contact.VariantPage, contact.SimulatedSubmitter{Delay: time.Millisecond}, validFields())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "✓ Message sent!")
}

func TestSendContactValidationError(t *testing.T) {
	var out bytes.Buffer
	fields := validFields()
	delete(fields, contact.FieldMessage)

	err := sendContact(context.Background(), &out, contact.VariantStandalone, contact.SimulatedSubmitter{}, fields)
	require.ErrorIs(t, err, contact.ErrValidation)
	assert.Contains(t, out.String(), "✗ Business name is required. Message is required")
}

func TestSendContactOverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, client.SubmitPath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"success": true, "reference": "lead-123"},
		})
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := sendContact(context.Background(), &out, contact.VariantPage, client.NewHTTPSubmitter(srv.URL), validFields())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Reference: lead-123")
}

func TestSendContactServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := sendContact(context.Background(), &out, contact.VariantPage, client.NewHTTPSubmitter(srv.URL), validFields())
	require.Error(t, err)
	assert.Contains(t, out.String(), contact.FailureText)
}

func TestListLeads(t *testing.T) {
	ctx := context.Background()
	database, err := db.Open(ctx, filepath.Join(t.TempDir(), "leads.db"))
	require.NoError(t, err)
	defer database.Close()

	repo := repository.NewLeadRepository(database)
	_, err = repo.Create(ctx, &repository.Lead{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "We need a new online store with a custom checkout flow",
		Variant: "page",
	})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, listLeads(ctx, &out, repo, 0, 10))
	assert.Contains(t, out.String(), "Jane Doe")
	assert.Contains(t, out.String(), "We need a new online store with a custo…")
	assert.Contains(t, out.String(), "Showing 1 of 1 leads")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a b", truncate("a\n\nb", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
