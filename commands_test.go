package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/hinter/internal/feedback"
	"github.com/robalobadob/wordle/apps/hinter/internal/solver"
	"github.com/robalobadob/wordle/apps/hinter/internal/store"
	"github.com/robalobadob/wordle/apps/hinter/internal/words"
)

func writeList(t *testing.T, list ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(list, "\n")+"\n"), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, exitOK},
		{&words.FileError{Path: "x", Err: os.ErrNotExist}, exitWordList},
		{fmt.Errorf("load: %w", &words.FileError{Path: "x", Err: os.ErrNotExist}), exitWordList},
		{&feedback.ParseError{Input: "crane", Reason: "missing ':'"}, exitUsage},
		{usagef("bad"), exitUsage},
		{fmt.Errorf("%w: %q", solver.ErrInvalidWord, "cran"), exitUsage},
		{errors.New("disk full"), exitInternal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, exitCode(tc.err), "%v", tc.err)
	}
}

func TestHint_SingleAnswer(t *testing.T) {
	list := writeList(t, "crane", "slate", "plane")
	out, err := run(t, "-s", list, "slate:XXGXG")
	require.NoError(t, err)
	assert.Contains(t, out, "The answer is CRANE")
}

func TestHint_RanksRemainingCandidates(t *testing.T) {
	list := writeList(t, "crane", "crate", "grape", "plane", "slate")
	out, err := run(t, "-s", list, "-n", "0", "slate:XXGXG")
	require.NoError(t, err)
	assert.Contains(t, out, "2 possible solutions:")
	assert.Contains(t, out, "CRANE")
	assert.Contains(t, out, "GRAPE")
	assert.Contains(t, out, "For the next guess, try")
	assert.Contains(t, out, "Top guesses:")
}

func TestHint_NoSolutionIsNotAnError(t *testing.T) {
	list := writeList(t, "crane", "slate")
	out, err := run(t, "-s", list, "crane:XXXXX", "slate:XXXXX")
	require.NoError(t, err)
	assert.Contains(t, out, "No possible solutions")
}

func TestHint_AlreadySolved(t *testing.T) {
	out, err := run(t, "crane:GGGGG")
	require.NoError(t, err)
	assert.Contains(t, out, "Already solved: CRANE")
}

func TestHint_ScoreFor(t *testing.T) {
	list := writeList(t, "crane", "crate", "grape", "plane", "slate", "trace")
	out, err := run(t, "-s", list, "--score-for", "plane")
	require.NoError(t, err)
	assert.Contains(t, out, "PLANE scores")
	assert.Contains(t, out, "of 6")
}

func TestHint_Errors(t *testing.T) {
	list := writeList(t, "crane", "slate", "plane")

	_, err := run(t, "-s", list, "crane:XXQXX")
	var pe *feedback.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, exitUsage, exitCode(err))

	_, err = run(t, "-s", filepath.Join(t.TempDir(), "missing.txt"), "crane:XXXXX")
	var fe *words.FileError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, exitWordList, exitCode(err))

	_, err = run(t, "--no-such-flag")
	assert.Equal(t, exitUsage, exitCode(err))

	_, err = run(t, "-s", list, "--strategy", "greedy")
	assert.Equal(t, exitUsage, exitCode(err))

	_, err = run(t, "-s", list, "--score-for", "cran")
	assert.Equal(t, exitUsage, exitCode(err))
}

func TestPatternCmd(t *testing.T) {
	out, err := run(t, "pattern", "speed", "chest")
	require.NoError(t, err)
	assert.Contains(t, out, "speed:YXGYX")

	out, err = run(t, "pattern", "--strict", "SPEED", "chest")
	require.NoError(t, err)
	assert.Contains(t, out, "speed:YXGXX")

	_, err = run(t, "pattern", "speed")
	assert.Equal(t, exitUsage, exitCode(err))

	_, err = run(t, "pattern", "speed", "ches")
	assert.Equal(t, exitUsage, exitCode(err))
}

func TestHistory_ListsJournaledRuns(t *testing.T) {
	list := writeList(t, "crane", "slate", "plane")
	db := filepath.Join(t.TempDir(), "journal", "runs.db")

	_, err := run(t, "-s", list, "--journal", db, "slate:XXGXG")
	require.NoError(t, err)

	out, err := run(t, "history", "--journal", db)
	require.NoError(t, err)
	assert.Contains(t, out, "single")
	assert.Contains(t, out, "CRANE")
	assert.Contains(t, out, "slate:XXGXG")
}

func TestHistory_WithoutJournalIsEmpty(t *testing.T) {
	t.Setenv("HINTER_JOURNAL", "")
	out, err := run(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No runs journaled yet.")
}

func TestHistory_ShowsOneRun(t *testing.T) {
	list := writeList(t, "crane", "slate", "plane")
	db := filepath.Join(t.TempDir(), "runs.db")
	_, err := run(t, "-s", list, "--journal", db, "slate:XXGXG")
	require.NoError(t, err)

	st, err := store.OpenSQLite(db)
	require.NoError(t, err)
	runs, err := st.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.NoError(t, st.Close())
	require.Len(t, runs, 1)

	out, err := run(t, "history", "--journal", db, "--id", runs[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, runs[0].ID)
	assert.Contains(t, out, "single")
	assert.Contains(t, out, store.Fingerprint([]string{"crane", "slate", "plane"}))

	_, err = run(t, "history", "--journal", db, "--id", "nope")
	assert.Equal(t, exitUsage, exitCode(err))
}

func TestExecute_PrintsUsageOfFailingCommand(t *testing.T) {
	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"pattern", "speed"})
	var stderr bytes.Buffer

	code := execute(context.Background(), root, &stderr)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr.String(), "Error:")
	assert.Contains(t, stderr.String(), "hinter pattern GUESS SOLUTION")
	assert.NotContains(t, stderr.String(), "WORD:RESULT")
}
