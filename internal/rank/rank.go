// internal/rank/rank.go
//
// Parallel guess ranking.
//
// The guess list is cut into contiguous, disjoint slices, one per worker.
// Every worker scores its slice against the same read-only scorer and writes
// into its own result slot, so no locking is needed; the slots are joined and
// sorted once all workers return.
//
// Ordering: score descending; on an exact tie, words that are themselves
// possible solutions come first; remaining ties sort alphabetically.

package rank

import (
	"cmp"
	"context"
	"runtime"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// checkEvery is how many guesses a worker scores between context checks.
const checkEvery = 256

// Scored is one guess with its score.
type Scored struct {
	Word     string  `json:"word"`
	Score    float64 `json:"score"`
	Solution bool    `json:"solution"` // guess is in the solution list
}

// Ranking is an ordered list of scored guesses.
type Ranking struct {
	Entries []Scored
	index   map[string]int
}

// NewRanking sorts entries and indexes them by word.
func NewRanking(entries []Scored) *Ranking {
	slices.SortFunc(entries, compareScored)
	idx := make(map[string]int, len(entries))
	for i, e := range entries {
		if _, dup := idx[e.Word]; !dup {
			idx[e.Word] = i
		}
	}
	return &Ranking{Entries: entries, index: idx}
}

func compareScored(a, b Scored) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	if a.Solution != b.Solution {
		if a.Solution {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Word, b.Word)
}

// Len returns the number of ranked guesses.
func (r *Ranking) Len() int { return len(r.Entries) }

// Best returns the highest-scoring guess.
func (r *Ranking) Best() (Scored, bool) {
	if len(r.Entries) == 0 {
		return Scored{}, false
	}
	return r.Entries[0], true
}

// BestSolution returns the highest-scoring guess that could itself be the answer.
func (r *Ranking) BestSolution() (Scored, bool) {
	for _, e := range r.Entries {
		if e.Solution {
			return e, true
		}
	}
	return Scored{}, false
}

// Top returns the first n entries, or all of them when n <= 0.
func (r *Ranking) Top(n int) []Scored {
	if n <= 0 || n > len(r.Entries) {
		return r.Entries
	}
	return r.Entries[:n]
}

// Lookup returns the 1-based rank and score of word.
func (r *Ranking) Lookup(word string) (int, Scored, bool) {
	i, ok := r.index[strings.ToLower(word)]
	if !ok {
		return 0, Scored{}, false
	}
	return i + 1, r.Entries[i], true
}

// Partition splits n items into at most parts contiguous [lo, hi) ranges of
// near-equal size.
func Partition(n, parts int) [][2]int {
	if n <= 0 {
		return nil
	}
	if parts <= 0 {
		parts = 1
	}
	if parts > n {
		parts = n
	}
	size := (n + parts - 1) / parts
	out := make([][2]int, 0, parts)
	for lo := 0; lo < n; lo += size {
		out = append(out, [2]int{lo, min(lo+size, n)})
	}
	return out
}

// Rank scores every guess with scorer across workers goroutines and returns
// the merged ranking. solutions only marks which guesses are possible answers.
// workers <= 0 means GOMAXPROCS. The only error is ctx's.
func Rank(ctx context.Context, guesses, solutions []string, scorer Scorer, workers int) (*Ranking, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	isSolution := make(map[string]struct{}, len(solutions))
	for _, s := range solutions {
		isSolution[s] = struct{}{}
	}

	parts := Partition(len(guesses), workers)
	results := make([][]Scored, len(parts))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	for i, part := range parts {
		g.Go(func() error {
			slice := guesses[part[0]:part[1]]
			out := make([]Scored, len(slice))
			for j, w := range slice {
				if j%checkEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				_, sol := isSolution[w]
				out[j] = Scored{Word: w, Score: scorer.Score(w), Solution: sol}
			}
			results[i] = out
			log.Debug().
				Int("worker", i).
				Int64("done", done.Add(int64(len(slice)))).
				Int("total", len(guesses)).
				Msg("scored guess slice")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]Scored, 0, len(guesses))
	for _, r := range results {
		merged = append(merged, r...)
	}
	return NewRanking(merged), nil
}
