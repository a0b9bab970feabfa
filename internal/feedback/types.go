// internal/feedback/types.go
//
// Core type definitions for the feedback constraint model.
// Defines:
//   - Code:  per-letter feedback for one position of a guess.
//   - Entry: one guess with its five result codes.
//   - Set:   all entries accumulated over a game.

package feedback

// WordLen is the only word length the hinter works with.
const WordLen = 5

// Code represents the feedback for a single letter of a guess.
// Possible values:
//   - Absent:        letter does not occur in the word (grey, "X").
//   - Present:       letter occurs elsewhere in the word (yellow, "Y").
//   - Correct:       letter is in the right position (green, "G").
//   - Unconstrained: no information; only produced by Set.Relax ("E").
//
// The numeric values of Absent, Present and Correct double as base-3 digits
// for outcome patterns, so their order must not change.
type Code uint8

const (
	Absent Code = iota
	Present
	Correct
	Unconstrained
)

// Letter returns the single-character wire form of c.
func (c Code) Letter() byte {
	switch c {
	case Absent:
		return 'X'
	case Present:
		return 'Y'
	case Correct:
		return 'G'
	default:
		return 'E'
	}
}

// String implements fmt.Stringer.
func (c Code) String() string {
	switch c {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	default:
		return "unconstrained"
	}
}

// codeFor maps an upper-case wire letter to its Code.
func codeFor(b byte) (Code, bool) {
	switch b {
	case 'X':
		return Absent, true
	case 'Y':
		return Present, true
	case 'G':
		return Correct, true
	case 'E':
		return Unconstrained, true
	}
	return 0, false
}

// Entry holds one guess and the feedback received for it.
type Entry struct {
	Guess  string        // Lowercase 5-letter guess.
	Result [WordLen]Code // Feedback per position, aligned with Guess.
}

// String renders e in the WORD:RESULT input syntax.
func (e Entry) String() string {
	var b [2*WordLen + 1]byte
	copy(b[:], e.Guess)
	b[WordLen] = ':'
	for i, c := range e.Result {
		b[WordLen+1+i] = c.Letter()
	}
	return string(b[:])
}

// Set is the ordered list of entries accumulated over a game.
// Order does not change the compiled predicate; contradictions between
// entries are applied mechanically rather than reconciled.
type Set []Entry

// Strings renders every entry in input syntax.
func (s Set) Strings() []string {
	out := make([]string, len(s))
	for i, e := range s {
		out[i] = e.String()
	}
	return out
}

// Relax returns the easy-mode variant of s: Correct and Present codes become
// Unconstrained, Absent codes are kept. Relaxing a relaxed set is a no-op.
func (s Set) Relax() Set {
	out := make(Set, len(s))
	for i, e := range s {
		r := e
		for p, c := range r.Result {
			if c == Correct || c == Present {
				r.Result[p] = Unconstrained
			}
		}
		out[i] = r
	}
	return out
}

// Pinned reports the word fixed by Correct codes when every position is
// pinned across the set without two entries disagreeing.
func (s Set) Pinned() (string, bool) {
	var word [WordLen]byte
	for _, e := range s {
		for p, c := range e.Result {
			if c != Correct {
				continue
			}
			l := e.Guess[p]
			if word[p] != 0 && word[p] != l {
				return "", false
			}
			word[p] = l
		}
	}
	for _, l := range word {
		if l == 0 {
			return "", false
		}
	}
	return string(word[:]), true
}

// Unfixed returns the positions no Correct code pins down.
func (s Set) Unfixed() []int {
	var fixed [WordLen]bool
	for _, e := range s {
		for p, c := range e.Result {
			if c == Correct {
				fixed[p] = true
			}
		}
	}
	var out []int
	for p, f := range fixed {
		if !f {
			out = append(out, p)
		}
	}
	return out
}
