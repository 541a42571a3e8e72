package ai

import "strings"

// Sanitize strips characters that tend to corrupt downstream parsing:
// anything outside the printable ASCII range except newline, carriage
// return and tab. Running it twice is a no-op.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 0x20 && r <= 0x7E) || r == '\n' || r == '\r' || r == '\t' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
