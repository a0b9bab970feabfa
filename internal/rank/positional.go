package rank

import (
	"math"

	"github.com/robalobadob/wordle/apps/hinter/internal/feedback"
)

// PositionalScorer is the letter-frequency heuristic: at every position not
// already pinned, a guess letter is worth more the closer the number of
// remaining solutions carrying it there is to half of them. A perfect split
// at a position scores n/2; letters nobody (or everybody) has there score 0.
type PositionalScorer struct {
	freq    [feedback.WordLen][26]int
	unfixed []int
	half    float64
}

// NewPositionalScorer counts letters per position over solutions. unfixed
// lists the positions to score, normally Set.Unfixed().
func NewPositionalScorer(solutions []string, unfixed []int) *PositionalScorer {
	s := &PositionalScorer{unfixed: unfixed, half: float64(len(solutions)) / 2}
	for _, w := range solutions {
		for _, p := range unfixed {
			s.freq[p][w[p]-'a']++
		}
	}
	return s
}

// Score implements Scorer.
func (s *PositionalScorer) Score(guess string) float64 {
	var score float64
	for _, p := range s.unfixed {
		f := float64(s.freq[p][guess[p]-'a'])
		score += s.half - math.Abs(f-s.half)
	}
	return score
}
