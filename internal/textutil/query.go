package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// FormatQuery normalizes free text before it is sent to a catalog: NFKC
// folding (full-width letters, ligatures), control characters dropped, and
// whitespace runs collapsed to single spaces.
func FormatQuery(text string) string {
	folded := norm.NFKC.String(text)
	var b strings.Builder
	b.Grow(len(folded))
	pendingSpace := false
	for _, r := range folded {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = b.Len() > 0
		case unicode.IsControl(r):
			continue
		default:
			if pendingSpace {
				b.WriteByte(' ')
				pendingSpace = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatResponse renders the display string for a lookup result.
func FormatResponse(provider, content string) string {
	provider = strings.TrimSpace(provider)
	if provider == "" {
		return content
	}
	return provider + ": " + content
}

// TitleCase capitalizes each word of value, used for human-facing labels.
func TitleCase(value string) string {
	value = strings.TrimSpace(strings.ReplaceAll(value, "_", " "))
	if value == "" {
		return ""
	}
	return cases.Title(language.Und).String(value)
}
