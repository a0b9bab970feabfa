// internal/feedback/predicate.go
//
// Compiles a Set into a single word predicate.
//
// Two compilers share one evaluator:
//   - Compile:       per-position rules, where any Absent code for a letter
//                    means the word holds zero copies of it.
//   - CompileStrict: duplicate-aware rules, where letter counts are bounded by
//                    the Correct/Present marks of the same guess.
//
// The evaluator checks fixed letters, letters banned per position and
// per-letter min/max counts, in that order.

package feedback

import "math/bits"

// Matcher is anything that can accept or reject a word.
type Matcher interface {
	Matches(word string) bool
}

// MatchFunc adapts a plain function to Matcher.
type MatchFunc func(word string) bool

// Matches calls f(word).
func (f MatchFunc) Matches(word string) bool { return f(word) }

// Predicate is a compiled Set. The zero value is not usable; build one with
// Compile or CompileStrict.
type Predicate struct {
	fixed   [WordLen]byte   // required letter per position, 0 if free
	notAt   [WordLen]uint32 // letters banned per position (bit per a–z)
	min     [26]uint8       // minimum copies per letter
	max     [26]uint8       // maximum copies per letter
	counted uint32          // letters with a non-trivial min/max
	never   bool            // two Correct codes disagree on one position
}

func newPredicate() *Predicate {
	p := &Predicate{}
	for i := range p.max {
		p.max[i] = WordLen
	}
	return p
}

func bit(l byte) uint32 { return 1 << (l - 'a') }

// fix pins letter l at position pos.
func (p *Predicate) fix(pos int, l byte) {
	if p.fixed[pos] != 0 && p.fixed[pos] != l {
		p.never = true
	}
	p.fixed[pos] = l
}

func (p *Predicate) atLeast(l byte, n uint8) {
	i := l - 'a'
	if n > p.min[i] {
		p.min[i] = n
		p.counted |= bit(l)
	}
}

func (p *Predicate) atMost(l byte, n uint8) {
	i := l - 'a'
	if n < p.max[i] {
		p.max[i] = n
		p.counted |= bit(l)
	}
}

// Compile builds the predicate for set using the per-position rules:
//   - Correct: word[p] == c.
//   - Present: word contains c and word[p] != c.
//   - Absent:  word does not contain c at all.
//   - Unconstrained: no requirement.
func Compile(set Set) *Predicate {
	p := newPredicate()
	for _, e := range set {
		for pos, code := range e.Result {
			l := e.Guess[pos]
			switch code {
			case Correct:
				p.fix(pos, l)
			case Present:
				p.atLeast(l, 1)
				p.notAt[pos] |= bit(l)
			case Absent:
				p.atMost(l, 0)
			}
		}
	}
	return p
}

// CompileStrict builds a duplicate-aware predicate. Within one entry, a letter
// marked Correct or Present k times must appear at least k times; if the same
// letter is also marked Absent it must appear exactly k times and not at the
// Absent position. An Unconstrained mark for the letter in that entry leaves
// the upper bound open, since the relaxed code hides how many copies matched.
func CompileStrict(set Set) *Predicate {
	p := newPredicate()
	for _, e := range set {
		var marked [26]uint8
		var absent, loose uint32
		for pos, code := range e.Result {
			l := e.Guess[pos]
			switch code {
			case Correct:
				p.fix(pos, l)
				marked[l-'a']++
			case Present:
				p.notAt[pos] |= bit(l)
				marked[l-'a']++
			case Absent:
				p.notAt[pos] |= bit(l)
				absent |= bit(l)
			case Unconstrained:
				loose |= bit(l)
			}
		}
		for i, k := range marked {
			l := byte('a' + i)
			if k > 0 {
				p.atLeast(l, k)
			}
			if absent&bit(l) != 0 && loose&bit(l) == 0 {
				p.atMost(l, k)
			}
		}
	}
	return p
}

// Matches reports whether word satisfies every compiled requirement.
// Words that are not 5 lowercase letters never match.
func (p *Predicate) Matches(word string) bool {
	if p.never || len(word) != WordLen {
		return false
	}
	var cnt [26]uint8
	for i := 0; i < WordLen; i++ {
		l := word[i]
		if l < 'a' || l > 'z' {
			return false
		}
		if p.fixed[i] != 0 && p.fixed[i] != l {
			return false
		}
		if p.notAt[i]&bit(l) != 0 {
			return false
		}
		cnt[l-'a']++
	}
	for m := p.counted; m != 0; m &= m - 1 {
		i := bits.TrailingZeros32(m)
		if cnt[i] < p.min[i] || cnt[i] > p.max[i] {
			return false
		}
	}
	return true
}
