package rank

import (
	"math"
	"slices"
)

// Scorer assigns a guess a score; higher is better.
type Scorer interface {
	Score(guess string) float64
}

// Histogram tallies the outcome pattern of guess against every solution.
// The counts always sum to len(solutions).
func Histogram(guess string, solutions []string, outcome OutcomeFunc) [NumPatterns]int {
	var h [NumPatterns]int
	for _, s := range solutions {
		h[outcome(guess, s)]++
	}
	return h
}

// HistogramEntropy returns the Shannon entropy, in bits, of the distribution
// described by h. Counts are summed in sorted order so that two histograms with
// the same multiset of counts give bit-identical results.
func HistogramEntropy(h [NumPatterns]int) float64 {
	counts := make([]int, 0, 32)
	n := 0
	for _, k := range h {
		if k > 0 {
			counts = append(counts, k)
			n += k
		}
	}
	if n == 0 {
		return 0
	}
	slices.Sort(counts)

	total := float64(n)
	var score float64
	for _, k := range counts {
		p := float64(k) / total
		score -= p * math.Log2(p)
	}
	if score < 0 {
		// -0 when a single pattern takes everything
		score = 0
	}
	return score
}

// Entropy is the expected information, in bits, that guess yields about
// which of solutions is the answer.
func Entropy(guess string, solutions []string, outcome OutcomeFunc) float64 {
	return HistogramEntropy(Histogram(guess, solutions, outcome))
}

// EntropyScorer scores guesses by Entropy against a fixed solution list.
// The list is shared read-only between goroutines.
type EntropyScorer struct {
	Solutions []string
	Outcome   OutcomeFunc
}

// NewEntropyScorer returns a scorer using outcome, or Outcome when nil.
func NewEntropyScorer(solutions []string, outcome OutcomeFunc) *EntropyScorer {
	if outcome == nil {
		outcome = Outcome
	}
	return &EntropyScorer{Solutions: solutions, Outcome: outcome}
}

// Score implements Scorer.
func (s *EntropyScorer) Score(guess string) float64 {
	return Entropy(guess, s.Solutions, s.Outcome)
}
