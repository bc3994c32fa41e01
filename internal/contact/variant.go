package contact

import (
	"fmt"
	"strings"
	"time"
)

// Variant selects which flavour of the contact form is in use. The two pages
// differ in whether a business name is required and in their success copy.
type Variant string

const (
	// VariantPage is the main contact page: company is optional.
	VariantPage Variant = "page"
	// VariantStandalone is the standalone quote form: business name is
	// required and the success message dismisses itself.
	VariantStandalone Variant = "standalone"
)

// ParseVariant maps a configuration string onto a Variant.
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case "", VariantPage:
		return VariantPage, nil
	case VariantStandalone:
		return VariantStandalone, nil
	default:
		return "", fmt.Errorf("unknown contact form variant %q", s)
	}
}

// RequiresBusiness reports whether the company/business field is mandatory.
func (v Variant) RequiresBusiness() bool {
	return v == VariantStandalone
}

// SuccessTitle is the heading of the notification shown after delivery.
func (v Variant) SuccessTitle() string {
	if v == VariantStandalone {
		return ""
	}
	return "Message sent!"
}

// SuccessText is the body of the notification shown after delivery.
func (v Variant) SuccessText() string {
	if v == VariantStandalone {
		return "Thank you for your message. We'll be in touch within one business day."
	}
	return "Thank you for your message. We'll get back to you within 24 hours."
}

// SuccessDismissAfter is how long the success notification stays up. Zero
// means it stays until replaced.
func (v Variant) SuccessDismissAfter() time.Duration {
	if v == VariantStandalone {
		return 5 * time.Second
	}
	return 0
}

// FailureText is shown when a valid form could not be delivered.
const FailureText = "Something went wrong. Please try again or contact us directly."
