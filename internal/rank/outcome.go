// internal/rank/outcome.go
//
// Outcome patterns: the feedback a guess would receive against one
// hypothetical solution.
//
// Two scorers are provided:
//   - Outcome:       per-position containment. A guess letter is Correct when it
//                    matches the solution at that position, Present when it occurs
//                    anywhere else in the solution, Absent otherwise. Repeated
//                    guess letters are judged independently, mirroring feedback.Compile.
//   - StrictOutcome: the standard two-pass gameplay scoring, where each solution
//                    letter can justify at most one Correct/Present mark.
//
// Patterns are packed as base-3 integers (position 0 is the least significant
// digit) so a histogram over all of them fits a fixed [243]int.

package rank

import (
	"strings"

	"github.com/robalobadob/wordle/apps/hinter/internal/feedback"
)

// NumPatterns is the number of distinct outcome patterns (3^5).
const NumPatterns = 243

// Pattern is a packed sequence of five Absent/Present/Correct codes.
type Pattern uint8

// OutcomeFunc computes the pattern of guess against solution.
type OutcomeFunc func(guess, solution string) Pattern

// PatternOf packs codes into a Pattern. Unconstrained codes count as Absent.
func PatternOf(codes [feedback.WordLen]feedback.Code) Pattern {
	var p Pattern
	for i := feedback.WordLen - 1; i >= 0; i-- {
		c := codes[i]
		if c == feedback.Unconstrained {
			c = feedback.Absent
		}
		p = p*3 + Pattern(c)
	}
	return p
}

// Codes unpacks p.
func (p Pattern) Codes() [feedback.WordLen]feedback.Code {
	var out [feedback.WordLen]feedback.Code
	for i := range out {
		out[i] = feedback.Code(p % 3)
		p /= 3
	}
	return out
}

// String renders p with the G/Y/X letters used on the command line.
func (p Pattern) String() string {
	var b [feedback.WordLen]byte
	for i, c := range p.Codes() {
		b[i] = c.Letter()
	}
	return string(b[:])
}

// Solved reports whether every position is Correct.
func (p Pattern) Solved() bool { return p == NumPatterns-1 }

// Outcome scores guess against solution with per-position containment.
func Outcome(guess, solution string) Pattern {
	var p Pattern
	for i := feedback.WordLen - 1; i >= 0; i-- {
		var c feedback.Code
		switch {
		case guess[i] == solution[i]:
			c = feedback.Correct
		case strings.IndexByte(solution, guess[i]) >= 0:
			c = feedback.Present
		default:
			c = feedback.Absent
		}
		p = p*3 + Pattern(c)
	}
	return p
}

// StrictOutcome implements the standard Wordle two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count remaining (non-matched) solution letters.
//
// Pass 2:
//   - For each non-correct guess letter: if there is remaining count for that
//     letter, mark Present and decrement the count; otherwise Absent.
func StrictOutcome(guess, solution string) Pattern {
	var codes [feedback.WordLen]feedback.Code
	var counts [26]int

	for i := 0; i < feedback.WordLen; i++ {
		if guess[i] == solution[i] {
			codes[i] = feedback.Correct
		} else {
			counts[solution[i]-'a']++
		}
	}
	for i := 0; i < feedback.WordLen; i++ {
		if codes[i] == feedback.Correct {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			codes[i] = feedback.Present
			counts[j]--
		}
	}
	return PatternOf(codes)
}

// Entry turns a pattern into the feedback entry a player would type.
func Entry(guess string, p Pattern) feedback.Entry {
	return feedback.Entry{Guess: guess, Result: p.Codes()}
}
