package feedback

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSet(t *testing.T, args ...string) Set {
	t.Helper()
	set, err := ParseSet(args)
	require.NoError(t, err)
	return set
}

func TestParseEntry_Valid(t *testing.T) {
	e, err := ParseEntry(" CRANE:xyGeX ")
	require.NoError(t, err)
	assert.Equal(t, "crane", e.Guess)
	assert.Equal(t, [WordLen]Code{Absent, Present, Correct, Unconstrained, Absent}, e.Result)
	assert.Equal(t, "crane:XYGEX", e.String())
}

func TestParseEntry_Malformed(t *testing.T) {
	cases := []string{
		"crane",
		"cran:XXXXX",
		"cranes:XXXXX",
		"cr4ne:XXXXX",
		"crane:XXXX",
		"crane:XXXXXX",
		"crane:XXQXX",
		":",
		"",
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			_, err := ParseEntry(in)
			require.Error(t, err)
			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, in, pe.Input)
		})
	}
}

func TestParseSet_StopsAtFirstError(t *testing.T) {
	_, err := ParseSet([]string{"crane:XXXXX", "bogus"})
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "bogus", pe.Input)
}

func TestCompile_CorrectPresentAbsent(t *testing.T) {
	p := Compile(mustSet(t, "crane:GYXXX"))

	assert.False(t, p.Matches("cloud"), "r must be present")
	assert.True(t, p.Matches("curio"))
	assert.False(t, p.Matches("crisp"), "r is present but not at position 2")
	assert.False(t, p.Matches("curia"), "a is absent")
	assert.False(t, p.Matches("burst"), "c is correct at position 1")
}

func TestCompile_AbsentZAndCorrectA(t *testing.T) {
	set := Set{
		{Guess: "fizzy", Result: [WordLen]Code{Unconstrained, Unconstrained, Absent, Unconstrained, Unconstrained}},
		{Guess: "about", Result: [WordLen]Code{Correct, Unconstrained, Unconstrained, Unconstrained, Unconstrained}},
	}
	p := Compile(set)

	assert.True(t, p.Matches("apple"))
	assert.True(t, p.Matches("amber"))
	assert.False(t, p.Matches("azure"), "contains z")
	assert.False(t, p.Matches("adzes"), "contains z")
	assert.False(t, p.Matches("blaze"), "contains z and starts with b")
	assert.False(t, p.Matches("crane"), "does not start with a")
}

func TestCompile_DuplicateLetterSimplification(t *testing.T) {
	// One E correct, the other absent: the simple rules ban E entirely,
	// so nothing can match.
	p := Compile(mustSet(t, "speed:XXGXX"))
	assert.False(t, p.Matches("wheat"))
	assert.False(t, p.Matches("chest"))
}

func TestCompileStrict_DuplicateLetters(t *testing.T) {
	// Solution "chest" against guess "speed": s present, e correct at 3, second e absent.
	p := CompileStrict(mustSet(t, "speed:YXGXX"))

	assert.True(t, p.Matches("chest"))
	assert.False(t, p.Matches("these"), "exactly one e allowed")
	assert.False(t, p.Matches("cheap"), "s is required and p is absent")
}

func TestCompileStrict_RelaxedLeavesCountOpen(t *testing.T) {
	set := mustSet(t, "speed:YXGXX").Relax()
	p := CompileStrict(set)

	// d, p absent; the e counts are unknowable after relaxing.
	assert.False(t, p.Matches("sheet"), "e still banned at position 4")
	assert.True(t, p.Matches("teens"))
	assert.False(t, p.Matches("pines"))
}

func TestCompile_UnconstrainedIsNoop(t *testing.T) {
	p := Compile(mustSet(t, "crane:EEEEE"))
	for _, w := range []string{"crane", "zzzzz", "abide"} {
		assert.True(t, p.Matches(w), w)
	}
}

func TestCompile_RejectsMalformedWords(t *testing.T) {
	p := Compile(nil)
	assert.True(t, p.Matches("hello"))
	assert.False(t, p.Matches("hell"))
	assert.False(t, p.Matches("HELLO"))
	assert.False(t, p.Matches("hellos"))
}

func TestCompile_ConflictingCorrectMatchesNothing(t *testing.T) {
	p := Compile(mustSet(t, "crane:GXXXX", "brine:GXXXX"))
	assert.False(t, p.Matches("cloud"))
	assert.False(t, p.Matches("bloud"))
}

func TestCompile_OrderIndependent(t *testing.T) {
	a := Compile(mustSet(t, "crane:XYXXG", "trope:XGXXG"))
	b := Compile(mustSet(t, "trope:XGXXG", "crane:XYXXG"))
	for _, w := range []string{"purge", "merge", "dirge", "serve", "verge", "surge", "crane"} {
		assert.Equal(t, a.Matches(w), b.Matches(w), w)
	}
}

func TestRelax_KeepsAbsentDropsTheRest(t *testing.T) {
	set := mustSet(t, "crane:GYXEX")
	r := set.Relax()
	assert.Equal(t, [WordLen]Code{Unconstrained, Unconstrained, Absent, Unconstrained, Absent}, r[0].Result)
	assert.Equal(t, "crane:GYXEX", set[0].String(), "input must not be mutated")
}

func TestRelax_Idempotent(t *testing.T) {
	set := mustSet(t, "crane:GYXEX", "slate:XXGYG", "pious:YYXXG")
	once := set.Relax()
	twice := once.Relax()
	assert.Equal(t, once, twice)

	p1, p2 := Compile(once), Compile(twice)
	for _, w := range []string{"crane", "pious", "tulip", "hymns", "zesty"} {
		assert.Equal(t, p1.Matches(w), p2.Matches(w), w)
	}
}

func TestPinned(t *testing.T) {
	word, ok := mustSet(t, "crane:GGGGG").Pinned()
	require.True(t, ok)
	assert.Equal(t, "crane", word)

	word, ok = mustSet(t, "crane:GGXXX", "blink:XXXGG", "stomp:XXXXX").Pinned()
	assert.False(t, ok)
	assert.Empty(t, word)

	word, ok = mustSet(t, "crane:GGXXX", "ouija:XXGXX", "plume:XXXGX", "stove:XXXXG").Pinned()
	require.True(t, ok)
	assert.Equal(t, "crime", word)

	_, ok = mustSet(t, "crane:GGGGG", "brane:GGGGG").Pinned()
	assert.False(t, ok, "conflicting pins")
}

func TestUnfixed(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 4}, Set(nil).Unfixed())
	assert.Equal(t, []int{1, 3}, mustSet(t, "crane:GXGXX", "blimp:XXXXX", "stove:XXXXG").Unfixed())
	assert.Empty(t, mustSet(t, "crane:GGGGG").Unfixed())
}

func TestMatchFunc(t *testing.T) {
	var m Matcher = MatchFunc(func(w string) bool { return w[0] == 'a' })
	assert.True(t, m.Matches("apple"))
	assert.False(t, m.Matches("berry"))
}
