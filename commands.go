package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/hinter/internal/feedback"
	"github.com/robalobadob/wordle/apps/hinter/internal/rank"
	"github.com/robalobadob/wordle/apps/hinter/internal/solver"
	"github.com/robalobadob/wordle/apps/hinter/internal/store"
	"github.com/robalobadob/wordle/apps/hinter/internal/words"
)

// usageError marks bad command-line input that should print usage.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// usageArgs turns argument validation failures into usage errors.
func usageArgs(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := v(cmd, args); err != nil {
			return &usageError{msg: err.Error()}
		}
		return nil
	}
}

// options holds the flags of the root command. Defaults come from the
// environment (and .env); flags override them.
type options struct {
	solutionsPath string
	guessesPath   string
	reuse         bool
	easy          bool
	strict        bool
	printAll      bool
	top           int
	scoreFor      string
	strategy      string
	workers       int
	journal       string
	limit         int
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "hinter [flags] WORD:RESULT [WORD:RESULT...]",
		Short: "Suggest the next Wordle guess from the feedback so far",
		Long: `hinter narrows a word list with the feedback from previous guesses and
ranks every allowed guess by the information it is expected to reveal.

Each argument is a guess and its feedback, e.g. crane:XXGYX, where
  G = correct letter, correct position
  Y = letter is in the word, wrong position
  X = letter is not in the word
  E = unconstrained (ignore this position)`,
		Example: `  hinter crane:XXGXG
  hinter -e -n 5 slate:XYXXX crony:XXGXX
  hinter -g allowed.txt --score-for plumb crane:XXXXG`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHint(cmd, opts, args)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})

	f := root.Flags()
	f.StringVarP(&opts.solutionsPath, "solutions", "s", getEnv("HINTER_SOLUTIONS", ""), "solution word list (default: bundled list)")
	f.StringVarP(&opts.guessesPath, "guesses", "g", getEnv("HINTER_GUESSES", ""), "guess word list (default: the solution list)")
	f.BoolVarP(&opts.reuse, "reuse", "r", false, "use the solution list as the guess list")
	f.BoolVarP(&opts.easy, "easy", "e", false, "easy mode: guesses need not reuse green/yellow letters")
	f.BoolVar(&opts.strict, "strict", false, "duplicate-aware feedback and outcome scoring")
	f.BoolVarP(&opts.printAll, "print-all", "p", false, "print every candidate even when there are many")
	f.IntVarP(&opts.top, "top", "n", 1, "number of guesses to show (0 shows all)")
	f.StringVar(&opts.scoreFor, "score-for", "", "report the score and rank of this guess")
	f.StringVar(&opts.strategy, "strategy", getEnv("HINTER_STRATEGY", string(solver.Entropy)), "scoring strategy: entropy or positional")
	f.IntVarP(&opts.workers, "workers", "w", envInt("HINTER_WORKERS", 0), "scoring workers (0 = one per CPU)")
	root.PersistentFlags().StringVar(&opts.journal, "journal", getEnv("HINTER_JOURNAL", ""), "SQLite file to journal runs to (empty disables)")

	root.AddCommand(newPatternCmd(), newHistoryCmd(opts))
	return root
}

func runHint(cmd *cobra.Command, opts *options, args []string) error {
	set, err := feedback.ParseSet(args)
	if err != nil {
		return err
	}
	strategy, err := solver.ParseStrategy(opts.strategy)
	if err != nil {
		return &usageError{msg: err.Error()}
	}

	solutions, err := words.Load(opts.solutionsPath)
	if err != nil {
		return err
	}
	var guesses []string
	if !opts.reuse && opts.guessesPath != "" {
		extra, err := words.Load(opts.guessesPath)
		if err != nil {
			return err
		}
		guesses = words.Union(solutions, extra)
	}

	start := time.Now()
	rep, err := solver.Hint(cmd.Context(), solver.Request{
		Solutions:   solutions,
		Guesses:     guesses,
		Constraints: set,
		Easy:        opts.easy,
		Strict:      opts.strict,
		Strategy:    strategy,
		Top:         opts.top,
		ScoreFor:    opts.scoreFor,
		Workers:     opts.workers,
	})
	if err != nil {
		return err
	}
	log.Info().Str("outcome", string(rep.Kind)).Dur("took", time.Since(start)).Msg("hint complete")

	renderReport(cmd.OutOrStdout(), rep, opts.printAll, strategy)

	return journal(cmd.Context(), opts.journal, newRun(set, opts, strategy, solutions, rep))
}

// newRun captures a finished request for the journal.
func newRun(set feedback.Set, opts *options, strategy solver.Strategy, solutions []string, rep *solver.Report) *store.Run {
	r := &store.Run{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
		Constraints: set.Strings(),
		Easy:        opts.easy,
		Strict:      opts.strict,
		Strategy:    string(strategy),
		Fingerprint: store.Fingerprint(solutions),
		Solutions:   len(rep.Solutions),
		Guesses:     len(rep.Guesses),
		Outcome:     string(rep.Kind),
		Best:        rep.Answer,
	}
	if rep.Ranking != nil {
		r.Best = rep.Best.Word
		r.BestScore = rep.Best.Score
		if rep.HasSolution {
			r.BestSolution = rep.BestSolution.Word
		}
	}
	return r
}

// journal records r in the journal at path. An empty path keeps the run in
// memory for the life of the process.
func journal(ctx context.Context, path string, r *store.Run) error {
	st, err := store.Open(path)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer st.Close()
	if err := st.Save(ctx, r); err != nil {
		return fmt.Errorf("journal: %w", err)
	}
	log.Debug().Str("run", r.ID).Str("journal", path).Msg("run journaled")
	return nil
}

func newPatternCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "pattern GUESS SOLUTION",
		Short: "Show the feedback GUESS would get if SOLUTION were the answer",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			guess, solution := words.Normalize(args[0]), words.Normalize(args[1])
			for _, w := range []string{guess, solution} {
				if !words.Valid(w) {
					return usagef("%q is not a 5-letter word", w)
				}
			}
			outcome := rank.Outcome
			if strict {
				outcome = rank.StrictOutcome
			}
			renderPattern(cmd.OutOrStdout(), guess, outcome(guess, solution))
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "use duplicate-aware scoring")
	return cmd
}

func newHistoryCmd(opts *options) *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent runs from the journal",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.journal == "" {
				log.Warn().Msg("no journal configured; set --journal or HINTER_JOURNAL")
			}
			st, err := store.Open(opts.journal)
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer st.Close()

			if id != "" {
				r, err := st.Get(cmd.Context(), id)
				if errors.Is(err, store.ErrNotFound) {
					return usagef("no run with id %q", id)
				}
				if err != nil {
					return fmt.Errorf("get run: %w", err)
				}
				renderRun(cmd.OutOrStdout(), r)
				return nil
			}

			runs, err := st.Recent(cmd.Context(), opts.limit)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}
			renderHistory(cmd.OutOrStdout(), runs)
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.limit, "limit", 20, "number of runs to list")
	cmd.Flags().StringVar(&id, "id", "", "show every field of one run")
	return cmd
}

// envInt returns the integer value of k, or def if unset or malformed.
func envInt(k string, def int) int {
	v := strings.TrimSpace(getEnv(k, ""))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Msg("ignoring malformed integer")
		return def
	}
	return n
}
