package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autofiltro/catalog/pkg/sanitizer"
)

func TestTrimToLower(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "trims and lowercases",
			input:    "  HELLO World  ",
			expected: "hello world",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "handles tabs and newlines",
			input:    "\t\nDiesel\n\t",
			expected: "diesel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.TrimToLower(tt.input))
		})
	}
}

func TestMaxLength(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{
			name:     "truncates long string",
			input:    "abcdefghij",
			maxLen:   4,
			expected: "abcd",
		},
		{
			name:     "keeps short string",
			input:    "abc",
			maxLen:   10,
			expected: "abc",
		},
		{
			name:     "zero length yields empty",
			input:    "abc",
			maxLen:   0,
			expected: "",
		},
		{
			name:     "counts runes not bytes",
			input:    "ñññññ",
			maxLen:   3,
			expected: "ñññ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.MaxLength(tt.input, tt.maxLen))
		})
	}
}

func TestRemoveControlChars(t *testing.T) {
	assert.Equal(t, "abc", sanitizer.RemoveControlChars("a\x00b\x1fc\x7f"))
	assert.Equal(t, "tabsgone", sanitizer.RemoveControlChars("tabs\tgone\n"))
	assert.Equal(t, "clean", sanitizer.RemoveControlChars("clean"))
}

func TestApplyAndCompose(t *testing.T) {
	pipeline := sanitizer.Compose(
		sanitizer.Trim,
		sanitizer.ToLower,
	)

	assert.Equal(t, "aire", pipeline("  AIRE "))
	assert.Equal(t, "aire", sanitizer.Apply("  AIRE ", sanitizer.Trim, sanitizer.ToLower))
	assert.Equal(t, "unchanged", sanitizer.Apply("unchanged"))
}
