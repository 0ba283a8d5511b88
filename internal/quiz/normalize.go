// Package quiz holds the answer-evaluation core: submission normalization,
// the word and grammar checkers, the round/retry session state machine and
// the progress statistics aggregation.
package quiz

import "strings"

// Normalize canonicalizes a submitted answer for comparison: leading and
// trailing whitespace is trimmed, runs of internal whitespace collapse to a
// single space, and the result is lowercased. Total over all inputs and
// idempotent.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// splitAlternatives splits a comma-separated answer field into normalized
// alternatives, dropping empty entries (e.g. from a trailing comma).
func splitAlternatives(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if n := Normalize(p); n != "" {
			out = append(out, n)
		}
	}
	return out
}
