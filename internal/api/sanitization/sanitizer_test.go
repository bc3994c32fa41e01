package sanitization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "Jo Smith", SanitizeString("  Jo   Smith \n"))
	assert.Equal(t, "Acme", SanitizeString("<b>Acme</b>"))
	assert.Equal(t, "", SanitizeString("<script>alert(1)</script>"))
	assert.Equal(t, "Smith & Sons", SanitizeString("Smith & Sons"))
}

func TestSanitizeText(t *testing.T) {
	in := "Hello <i>team</i>,\r\n\r\n\r\n\r\nWe   need a site.\n  Thanks  "
	assert.Equal(t, "Hello team,\n\nWe need a site.\nThanks", SanitizeText(in))
}

func TestSanitizeEmail(t *testing.T) {
	assert.Equal(t, "jo@company.com", SanitizeEmail("  Jo@Company.COM "))
}
