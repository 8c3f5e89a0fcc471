package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TitleCase upper-cases the first letter of every whitespace-delimited word
// and lower-cases the rest of it. Whitespace and invalid UTF-8 bytes are
// copied through as written.
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	atWordStart := true
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		raw := s[i : i+size]
		i += size
		switch {
		case r == utf8.RuneError && size == 1:
			atWordStart = false
			b.WriteString(raw)
		case unicode.IsSpace(r):
			atWordStart = true
			b.WriteRune(r)
		case atWordStart:
			atWordStart = false
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// FirstWords returns up to n whitespace-delimited words joined by single spaces.
func FirstWords(s string, n int) string {
	if n <= 0 {
		return ""
	}
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

// RuneLen counts characters rather than bytes.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Truncate shortens s to at most maxLen runes, appending "..." when cut.
// Newlines are flattened so the result fits on one log line.
func Truncate(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen]) + "..."
	}
	return s
}
