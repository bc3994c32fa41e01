package sanitization

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy

	spaceRun = regexp.MustCompile(`[^\S\n]+`)
	blankRun = regexp.MustCompile(`\n{3,}`)
)

func strictPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// stripTags removes markup and returns plain text. bluemonday escapes what it
// keeps, so the result is unescaped again; output escaping is the template's
// job.
func stripTags(input string) string {
	return html.UnescapeString(strictPolicy().Sanitize(input))
}

// SanitizeString strips markup and collapses whitespace onto one line
func SanitizeString(input string) string {
	safe := stripTags(input)
	safe = strings.Join(strings.Fields(safe), " ")
	return safe
}

// SanitizeText strips markup but keeps line breaks, for free-form messages
func SanitizeText(input string) string {
	safe := stripTags(strings.ReplaceAll(input, "\r\n", "\n"))
	lines := strings.Split(safe, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))
	}
	safe = strings.Join(lines, "\n")
	safe = blankRun.ReplaceAllString(safe, "\n\n")
	return strings.TrimSpace(safe)
}

// SanitizeEmail lowercases and trims an email address
func SanitizeEmail(input string) string {
	return strings.ToLower(strings.TrimSpace(stripTags(input)))
}
