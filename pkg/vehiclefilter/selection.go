package vehiclefilter

import "github.com/autofiltro/catalog/pkg/sanitizer"

// Selection is a partial assignment of sanitized, vocabulary-checked tokens
// to dimensions, as produced by ValidateCombination. Missing dimensions mean
// "not provided", never wildcard.
type Selection map[Dimension]string

// Get returns the token chosen for a dimension, if present.
func (s Selection) Get(dim Dimension) (string, bool) {
	token, ok := s[dim]
	return token, ok
}

// has reports whether the dimension carries the given token.
func (s Selection) has(dim Dimension, token string) bool {
	return s[dim] == token
}

// hasAny reports whether the dimension carries one of the given tokens.
func (s Selection) hasAny(dim Dimension, tokens ...string) bool {
	current, ok := s[dim]
	if !ok {
		return false
	}
	for _, token := range tokens {
		if current == token {
			return true
		}
	}
	return false
}

// Sanitize normalizes an untrusted filter key or value. It trims, lowercases
// and strips control and injection characters; anything that does not reduce
// to a clean token becomes the empty string. Pure, idempotent, never fails.
func Sanitize(raw string) string {
	return sanitizer.Token(raw)
}
