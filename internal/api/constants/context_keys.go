package constants

// Context keys for validated requests
const (
	// Contact context keys
	ContextKeyContact = "contact"

	// Request context keys
	ContextKeyRequestID = "RequestID"
	ContextKeyCSRFToken = "csrfToken"
	ContextKeyRawBody   = "rawBody"
)

// Header names
const (
	HeaderRequestID = "X-Request-ID"
	HeaderCSRF      = "X-CSRF-Token"
)

// FormFieldCSRF is the hidden input carrying the CSRF token on HTML forms
const FormFieldCSRF = "_csrf"
