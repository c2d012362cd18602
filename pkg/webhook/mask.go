package webhook

import (
	"strings"

	masker "github.com/goliatone/go-masker"
)

// MaskURL redacts the middle of a webhook URL for logging. Webhook URLs
// embed a bearer token, so they never appear in logs verbatim.
func MaskURL(url string) string {
	if url == "" {
		return ""
	}
	if masked, err := masker.Default.String("preserveEnds(8,4)", url); err == nil {
		return masked
	}
	// Fallback masking if the rule is unavailable.
	runes := []rune(url)
	if len(runes) <= 12 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[:8]) + strings.Repeat("*", len(runes)-12) + string(runes[len(runes)-4:])
}
