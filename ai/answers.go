package ai

import "strings"

// AnswersMatch compares a submitted answer against the expected one:
// exact equality after trimming surrounding whitespace and lowercasing.
// No numeric normalization is attempted, so "0.5" does not match "1/2".
func AnswersMatch(submitted, expected string) bool {
	return strings.ToLower(strings.TrimSpace(submitted)) ==
		strings.ToLower(strings.TrimSpace(expected))
}
