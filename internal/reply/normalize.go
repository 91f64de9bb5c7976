package reply

import (
	"strings"
	"unicode"
)

const fence = "```"

// Normalize strips code-fence wrapping from a model reply and trims the
// surrounding whitespace. It never touches the payload itself, so broken
// JSON stays broken. Stripping repeats until nothing changes, which makes
// Normalize idempotent.
func Normalize(raw string) string {
	text := strings.TrimSpace(raw)
	for {
		next := stripFences(text)
		if next == text {
			return text
		}
		text = next
	}
}

func stripFences(text string) string {
	if strings.HasPrefix(text, fence) {
		text = strings.TrimPrefix(text, fence)
		text = stripLanguageTag(text)
	}
	if strings.HasSuffix(text, fence) {
		text = strings.TrimSuffix(text, fence)
	}
	return strings.TrimSpace(text)
}

// stripLanguageTag drops a "json" tag right after an opening fence, but not
// the start of a longer word.
func stripLanguageTag(text string) string {
	if len(text) < 4 || !strings.EqualFold(text[:4], "json") {
		return text
	}
	rest := text[4:]
	if rest != "" {
		r := []rune(rest)[0]
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return text
		}
	}
	return rest
}
