package feedback

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed WORD:RESULT entry.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("feedback: bad entry %q: %s", e.Input, e.Reason)
}

// ParseEntry parses one entry of the form WORD:RESULT, e.g. "crane:XXGYX".
// WORD must be 5 letters a–z and RESULT 5 characters from G, Y, X, E.
// Both halves are case-insensitive; the guess is stored lowercase.
func ParseEntry(s string) (Entry, error) {
	raw := s
	s = strings.TrimSpace(s)
	word, result, ok := strings.Cut(s, ":")
	if !ok {
		return Entry{}, &ParseError{Input: raw, Reason: "expected WORD:RESULT"}
	}
	word = strings.ToLower(word)
	result = strings.ToUpper(result)

	if len(word) != WordLen || !isAlpha(word) {
		return Entry{}, &ParseError{Input: raw, Reason: "word must be 5 letters a-z"}
	}
	if len(result) != WordLen {
		return Entry{}, &ParseError{Input: raw, Reason: "result must be 5 characters"}
	}

	e := Entry{Guess: word}
	for i := 0; i < WordLen; i++ {
		c, ok := codeFor(result[i])
		if !ok {
			return Entry{}, &ParseError{
				Input:  raw,
				Reason: fmt.Sprintf("result code %q must be one of G, Y, X, E", result[i]),
			}
		}
		e.Result[i] = c
	}
	return e, nil
}

// ParseSet parses every argument with ParseEntry, stopping at the first error.
func ParseSet(args []string) (Set, error) {
	set := make(Set, 0, len(args))
	for _, a := range args {
		e, err := ParseEntry(a)
		if err != nil {
			return nil, err
		}
		set = append(set, e)
	}
	return set, nil
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
