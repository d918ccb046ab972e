package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autofiltro/catalog/pkg/sanitizer"
)

func TestToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "passes clean token through",
			input:    "aire",
			expected: "aire",
		},
		{
			name:     "trims and lowercases",
			input:    "  SEMI-Sintetico \t",
			expected: "semi-sintetico",
		},
		{
			name:     "keeps underscores in dimension keys",
			input:    "tipo_vehiculo",
			expected: "tipo_vehiculo",
		},
		{
			name:     "strips control characters",
			input:    "die\x00sel\x1f",
			expected: "diesel",
		},
		{
			name:     "strips quotes and backslashes",
			input:    `'ga\solina'`,
			expected: "gasolina",
		},
		{
			name:     "rejects sql injection payload entirely",
			input:    "aire'; DROP TABLE--",
			expected: "",
		},
		{
			name:     "rejects internal whitespace",
			input:    "filtro de aire",
			expected: "",
		},
		{
			name:     "rejects unicode",
			input:    "camión",
			expected: "",
		},
		{
			name:     "rejects angle brackets payload",
			input:    "<script>alert(1)</script>",
			expected: "",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "handles whitespace-only string",
			input:    "   \t\n  ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizer.Token(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTokenIdempotent(t *testing.T) {
	inputs := []string{
		"aire",
		"  SEMI-Sintetico ",
		"aire'; DROP TABLE--",
		"camión",
		"",
		"tipo_filtro",
		"die\x00sel",
	}

	for _, input := range inputs {
		once := sanitizer.Token(input)
		assert.Equal(t, once, sanitizer.Token(once), "Token must be idempotent for %q", input)
	}
}

func TestStripInjectionChars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes quotes",
			input:    `it's "quoted"`,
			expected: "its quoted",
		},
		{
			name:     "removes semicolons and backslashes",
			input:    `a;b\c`,
			expected: "abc",
		},
		{
			name:     "removes angle brackets",
			input:    "<b>bold</b>",
			expected: "bbold/b",
		},
		{
			name:     "leaves safe characters alone",
			input:    "semi-sintetico_01",
			expected: "semi-sintetico_01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.StripInjectionChars(tt.input))
		})
	}
}
