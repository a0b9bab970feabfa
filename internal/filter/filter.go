// Package filter narrows word lists with a compiled feedback predicate.
package filter

import "github.com/robalobadob/wordle/apps/hinter/internal/feedback"

// Filter returns the words accepted by m, in input order.
// The input slice is never modified; the result is a fresh slice.
func Filter(words []string, m feedback.Matcher) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if m.Matches(w) {
			out = append(out, w)
		}
	}
	return out
}

// CountRemoved returns how many words m rejects without building a new list.
// It always equals len(words) - len(Filter(words, m)).
func CountRemoved(words []string, m feedback.Matcher) int {
	n := 0
	for _, w := range words {
		if !m.Matches(w) {
			n++
		}
	}
	return n
}
