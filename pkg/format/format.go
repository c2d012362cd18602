package format

import (
	"html"
	"regexp"
	"strings"

	"github.com/jaytaylor/html2text"
)

// Ellipsis terminates truncated previews and message bodies.
const Ellipsis = "…"

var (
	// bbcode style [tag]...[/tag] markers, including the uid-suffixed
	// forms some boards store, like [b:1a2b3c].
	bracketTagPattern = regexp.MustCompile(`\[/?[^\[\]]*\]`)
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)
)

// LinkSafeURL percent-encodes the characters the webhook markdown parser
// treats as link delimiters in bare URLs: space, '(' and ')'.
func LinkSafeURL(url string) string {
	url = strings.ReplaceAll(url, " ", "%20")
	url = strings.ReplaceAll(url, "(", "%28")
	url = strings.ReplaceAll(url, ")", "%29")
	return url
}

// LinkSafeText makes display text safe to embed between the [] of a
// markdown link and decodes HTML entities back to literal characters
// (forum content is stored HTML-escaped).
func LinkSafeText(text string) string {
	text = strings.ReplaceAll(text, "[", "(")
	text = strings.ReplaceAll(text, "]", ")")
	return html.UnescapeString(text)
}

// StripFormatting removes HTML markup and bracket-delimited markup tags
// from user content, then decodes HTML entities. Used for previews and
// footers only; titles and names go through LinkSafeText instead.
func StripFormatting(text string) string {
	text = stripHTML(text)
	text = bracketTagPattern.ReplaceAllString(text, "")
	return html.UnescapeString(text)
}

func stripHTML(text string) string {
	if !strings.ContainsRune(text, '<') {
		return text
	}
	if plain, err := html2text.FromString(text, html2text.Options{}); err == nil {
		return plain
	}
	return htmlTagPattern.ReplaceAllString(text, "")
}

// MakeLink renders a markdown link with escaped text and URL.
func MakeLink(url, text string) string {
	return "[" + LinkSafeText(text) + "](" + LinkSafeURL(url) + ")"
}

// BuildPreview produces a length-bounded excerpt of raw content, prefixed
// with the supplied label. It returns "" when previews are disabled
// (previewLength == 0). The visible excerpt, not counting the prefix,
// never exceeds previewLength code points.
func BuildPreview(raw string, previewLength int, prefix string) string {
	if previewLength == 0 {
		return ""
	}
	preview := strings.TrimSpace(StripFormatting(raw))
	if preview == "" {
		return ""
	}
	preview = Truncate(preview, previewLength)
	return prefix + preview
}

// Truncate bounds text to max code points, replacing the tail with a
// single ellipsis when the input is longer.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-1]) + Ellipsis
}
