package ai

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "Solve 2x + 5 = 11.", "Solve 2x + 5 = 11."},
		{"keeps newline tab and cr", "a\n\tb\r\nc", "a\n\tb\r\nc"},
		{"drops control characters", "a\x00b\x07c\x1bd", "abcd"},
		{"drops non-ascii", "2 × 3 = 6", "2  3 = 6"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	input := "Explanation:\n\tUse substitution \x01 here ✓ done"
	once := Sanitize(input)
	if twice := Sanitize(once); twice != once {
		t.Errorf("second pass changed output: %q vs %q", once, twice)
	}
}
