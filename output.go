package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/hinter/internal/feedback"
	"github.com/robalobadob/wordle/apps/hinter/internal/rank"
	"github.com/robalobadob/wordle/apps/hinter/internal/solver"
	"github.com/robalobadob/wordle/apps/hinter/internal/store"
	"github.com/robalobadob/wordle/apps/hinter/internal/words"
)

// maxListed is how many candidates are printed before falling back to a count.
const maxListed = 20

// styles are bound to one writer so colors are dropped when it is not a terminal.
type styles struct {
	headline lipgloss.Style
	word     lipgloss.Style
	dim      lipgloss.Style
	warn     lipgloss.Style
	tiles    [3]lipgloss.Style // indexed by feedback.Code
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	tile := r.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("231"))
	return styles{
		headline: r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		word:     r.NewStyle().Bold(true),
		dim:      r.NewStyle().Foreground(lipgloss.Color("241")),
		warn:     r.NewStyle().Foreground(lipgloss.Color("214")),
		tiles: [3]lipgloss.Style{
			feedback.Absent:  tile.Background(lipgloss.Color("240")),
			feedback.Present: tile.Background(lipgloss.Color("178")),
			feedback.Correct: tile.Background(lipgloss.Color("34")),
		},
	}
}

func renderReport(w io.Writer, rep *solver.Report, printAll bool, strategy solver.Strategy) {
	st := newStyles(w)

	switch rep.Kind {
	case solver.KindSolved:
		fmt.Fprintf(w, "Already solved: %s\n", st.word.Render(strings.ToUpper(rep.Answer)))
		return
	case solver.KindNoSolution:
		fmt.Fprintln(w, st.warn.Render("No possible solutions match the feedback given."))
		return
	case solver.KindSingle:
		fmt.Fprintf(w, "The answer is %s\n", st.headline.Render(strings.ToUpper(rep.Answer)))
		return
	}

	renderCandidates(w, st, rep.Solutions, printAll)

	if len(rep.Top) == 0 {
		fmt.Fprintln(w, st.warn.Render("No allowed guesses remain."))
		return
	}
	unit := "bits"
	if strategy == solver.Positional {
		unit = "points"
	}
	fmt.Fprintf(w, "For the next guess, try %s %s\n",
		st.headline.Render(strings.ToUpper(rep.Best.Word)),
		st.dim.Render(fmt.Sprintf("(%.3f %s)", rep.Best.Score, unit)))
	if !rep.Best.Solution && rep.HasSolution {
		fmt.Fprintf(w, "Best guess that could be the answer: %s %s\n",
			st.word.Render(strings.ToUpper(rep.BestSolution.Word)),
			st.dim.Render(fmt.Sprintf("(%.3f %s)", rep.BestSolution.Score, unit)))
	}

	if len(rep.Top) > 1 {
		fmt.Fprintln(w, "Top guesses:")
		for i, s := range rep.Top {
			mark := " "
			if s.Solution {
				mark = "*"
			}
			fmt.Fprintf(w, "%4d. %s%s %8.3f\n", i+1, strings.ToUpper(s.Word), mark, s.Score)
		}
	}

	if l := rep.Lookup; l != nil {
		note := ""
		if !l.Ranked {
			note = st.dim.Render(" (not an allowed guess)")
		}
		fmt.Fprintf(w, "%s scores %.3f %s, rank %d of %d%s\n",
			strings.ToUpper(l.Word), l.Score, unit, l.Rank, rep.Ranking.Len(), note)
	}
}

func renderCandidates(w io.Writer, st styles, candidates []string, printAll bool) {
	if printAll || len(candidates) <= maxListed {
		fmt.Fprintf(w, "%d possible solutions:\n", len(candidates))
		for _, c := range candidates {
			fmt.Fprintf(w, "  %s\n", strings.ToUpper(c))
		}
		return
	}
	fmt.Fprintf(w, "%d possible solutions, for example %s\n",
		len(candidates), st.word.Render(strings.ToUpper(words.Random(candidates))))
}

func renderPattern(w io.Writer, guess string, p rank.Pattern) {
	st := newStyles(w)
	codes := p.Codes()
	var b strings.Builder
	for i, c := range codes {
		b.WriteString(st.tiles[c].Render(strings.ToUpper(guess[i : i+1])))
	}
	fmt.Fprintf(w, "%s  %s\n", b.String(), rank.Entry(guess, p))
}

func renderHistory(w io.Writer, runs []store.Run) {
	st := newStyles(w)
	if len(runs) == 0 {
		fmt.Fprintln(w, st.dim.Render("No runs journaled yet."))
		return
	}
	for _, r := range runs {
		best := r.Best
		if best == "" {
			best = "-"
		}
		fmt.Fprintf(w, "%s  %s  %-11s %-10s %4d left  %-5s  %s\n",
			st.dim.Render(r.ID[:min(8, len(r.ID))]),
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Outcome, r.Strategy, r.Solutions,
			strings.ToUpper(best),
			strings.Join(r.Constraints, " "))
	}
}

func renderRun(w io.Writer, r *store.Run) {
	st := newStyles(w)
	field := func(name string, v any) {
		fmt.Fprintf(w, "%s %v\n", st.dim.Render(fmt.Sprintf("%-14s", name+":")), v)
	}
	field("id", r.ID)
	field("created", r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	field("constraints", strings.Join(r.Constraints, " "))
	field("easy", r.Easy)
	field("strict", r.Strict)
	field("strategy", r.Strategy)
	field("fingerprint", r.Fingerprint)
	field("solutions", r.Solutions)
	field("guesses", r.Guesses)
	field("outcome", r.Outcome)
	if r.Best != "" {
		field("best", fmt.Sprintf("%s (%.3f)", strings.ToUpper(r.Best), r.BestScore))
	}
	if r.BestSolution != "" {
		field("best solution", strings.ToUpper(r.BestSolution))
	}
}
