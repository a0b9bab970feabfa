// internal/solver/solver.go
//
// Orchestrates one hint request:
//
//	constraints → predicate → filter solutions and guesses
//	→ degenerate outcomes (solved / none / single)
//	→ parallel ranking → report
//
// Everything is passed in and returned explicitly; the package holds no state.

package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/hinter/internal/feedback"
	"github.com/robalobadob/wordle/apps/hinter/internal/filter"
	"github.com/robalobadob/wordle/apps/hinter/internal/rank"
	"github.com/robalobadob/wordle/apps/hinter/internal/words"
)

// ErrInvalidWord is returned when the word to score is not 5 letters a–z.
var ErrInvalidWord = errors.New("solver: word must be 5 letters a-z")

// Strategy selects how guesses are scored.
type Strategy string

const (
	// Entropy scores guesses by expected information in bits.
	Entropy Strategy = "entropy"
	// Positional scores guesses by how evenly their letters split the
	// remaining solutions at each unpinned position.
	Positional Strategy = "positional"
)

// ParseStrategy maps a name to a Strategy; "" means Entropy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", Entropy:
		return Entropy, nil
	case Positional:
		return Positional, nil
	}
	return "", fmt.Errorf("solver: unknown strategy %q (want %q or %q)", s, Entropy, Positional)
}

// Kind classifies how a request ended.
type Kind string

const (
	KindSolved     Kind = "solved"      // every position pinned; nothing to rank
	KindNoSolution Kind = "no_solution" // every candidate eliminated
	KindSingle     Kind = "single"      // exactly one candidate left
	KindPair       Kind = "pair"        // two candidates left; ranking still run
	KindRanked     Kind = "ranked"
)

// Request is the input of Hint. Word lists must already be normalized.
type Request struct {
	Solutions   []string
	Guesses     []string // nil means "same as Solutions"
	Constraints feedback.Set
	Easy        bool     // filter guesses with the relaxed constraint set
	Strict      bool     // duplicate-aware feedback and outcomes
	Strategy    Strategy // "" means Entropy
	Top         int      // number of ranked guesses to report; <= 0 means all
	ScoreFor    string   // optional guess to report score and rank for
	Workers     int      // <= 0 means GOMAXPROCS
}

// Lookup is the score and rank of one requested guess.
type Lookup struct {
	Word   string  `json:"word"`
	Rank   int     `json:"rank"`   // 1-based position among ranked guesses
	Score  float64 `json:"score"`
	Ranked bool    `json:"ranked"` // false when the word was filtered out of the guess list
}

// Report is the result of Hint.
type Report struct {
	Kind      Kind
	Answer    string   // set for KindSolved and KindSingle
	Solutions []string // solutions consistent with the constraints
	Guesses   []string // guesses allowed after filtering

	Ranking      *rank.Ranking // nil unless KindPair or KindRanked
	Top          []rank.Scored
	Best         rank.Scored
	BestSolution rank.Scored
	HasSolution  bool // BestSolution is set
	Lookup       *Lookup
}

// Hint runs one request. The only errors are an invalid ScoreFor word or a
// cancelled context.
func Hint(ctx context.Context, req Request) (*Report, error) {
	scoreFor := ""
	if req.ScoreFor != "" {
		scoreFor = words.Normalize(req.ScoreFor)
		if !words.Valid(scoreFor) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, req.ScoreFor)
		}
	}
	strategy := req.Strategy
	if strategy == "" {
		strategy = Entropy
	}

	if word, ok := req.Constraints.Pinned(); ok {
		log.Info().Str("answer", word).Msg("every position is pinned")
		return &Report{Kind: KindSolved, Answer: word}, nil
	}

	compile := feedback.Compile
	outcome := rank.Outcome
	if req.Strict {
		compile = feedback.CompileStrict
		outcome = rank.StrictOutcome
	}

	pred := compile(req.Constraints)
	guessPred := pred
	if req.Easy {
		guessPred = compile(req.Constraints.Relax())
	}

	guessList := req.Guesses
	if guessList == nil {
		guessList = req.Solutions
	}
	if e := log.Debug(); e.Enabled() {
		e.Int("solutions_removed", filter.CountRemoved(req.Solutions, pred)).
			Int("guesses_removed", filter.CountRemoved(guessList, guessPred)).
			Msg("applying constraints")
	}

	rep := &Report{
		Solutions: filter.Filter(req.Solutions, pred),
		Guesses:   filter.Filter(guessList, guessPred),
	}
	log.Info().
		Int("solutions", len(rep.Solutions)).
		Int("guesses", len(rep.Guesses)).
		Bool("easy", req.Easy).
		Msg("filtered word lists")

	switch len(rep.Solutions) {
	case 0:
		rep.Kind = KindNoSolution
		return rep, nil
	case 1:
		rep.Kind = KindSingle
		rep.Answer = rep.Solutions[0]
		return rep, nil
	case 2:
		rep.Kind = KindPair
	default:
		rep.Kind = KindRanked
	}

	var scorer rank.Scorer
	switch strategy {
	case Positional:
		unfixed := req.Constraints.Unfixed()
		if len(unfixed) == 0 {
			rep.Kind = KindSolved
			rep.Answer = rep.Solutions[0]
			return rep, nil
		}
		scorer = rank.NewPositionalScorer(rep.Solutions, unfixed)
	default:
		scorer = rank.NewEntropyScorer(rep.Solutions, outcome)
	}

	ranking, err := rank.Rank(ctx, rep.Guesses, rep.Solutions, scorer, req.Workers)
	if err != nil {
		return nil, fmt.Errorf("rank guesses: %w", err)
	}
	rep.Ranking = ranking
	rep.Top = ranking.Top(req.Top)
	rep.Best, _ = ranking.Best()
	rep.BestSolution, rep.HasSolution = ranking.BestSolution()

	if scoreFor != "" {
		rep.Lookup = lookup(ranking, scorer, scoreFor)
	}
	return rep, nil
}

// lookup finds word in ranking, or scores it directly and reports the rank it
// would take if it had not been filtered out.
func lookup(ranking *rank.Ranking, scorer rank.Scorer, word string) *Lookup {
	if n, s, ok := ranking.Lookup(word); ok {
		return &Lookup{Word: word, Rank: n, Score: s.Score, Ranked: true}
	}
	score := scorer.Score(word)
	n := 1
	for _, e := range ranking.Entries {
		if e.Score <= score {
			break
		}
		n++
	}
	return &Lookup{Word: word, Rank: n, Score: score}
}
