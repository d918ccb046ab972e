package sanitizer

import "regexp"

// injectionChars are the quote, escape and angle-bracket characters most
// commonly abused for SQL/HTML injection through query parameters.
const injectionChars = `'"\;<>`

var tokenPattern = regexp.MustCompile(`^[a-z0-9\-_]+$`)

// StripInjectionChars removes quote, escape and angle-bracket characters.
func StripInjectionChars(s string) string {
	return RemoveChars(s, injectionChars)
}

// Token normalizes an untrusted string into a safe catalog filter token.
//
// The input is trimmed, lowercased and stripped of control and injection
// characters. If the remainder is not entirely composed of lowercase ASCII
// letters, digits, hyphens and underscores, Token returns the empty string
// rather than a partial value. The function is pure and idempotent; it never
// fails on any input.
func Token(s string) string {
	s = Apply(s,
		TrimToLower,
		RemoveControlChars,
		StripInjectionChars,
	)

	if !tokenPattern.MatchString(s) {
		return ""
	}
	return s
}
