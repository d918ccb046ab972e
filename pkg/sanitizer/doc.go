// Package sanitizer provides small, focused helpers for cleaning untrusted
// string input before it reaches validation or the query layer.
//
// The functions are grouped into two areas:
//
//   - Strings – trimming, case conversion, truncation and control-character
//     removal.
//
//   - Tokens – defensive routines that strip quote/escape/angle-bracket
//     injection characters and normalize catalog filter tokens to a strict
//     lowercase alphanumeric alphabet.
//
// The package is completely stateless and depends only on the Go standard
// library. All helpers are pure functions that can be freely combined; the
// higher-order Apply and Compose helpers allow the creation of sanitization
// pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.ToLower,
//	)
//
//	safe := clean("  AIRE\n") // "aire"
package sanitizer
