package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(ls []Letter) []Kind {
	out := make([]Kind, len(ls))
	for i, l := range ls {
		out[i] = l.Kind
	}
	return out
}

func newGame(t *testing.T, target string, maxTries int, opts ...Option) *Game {
	t.Helper()
	g, err := New(target, len([]rune(target)), maxTries, opts...)
	require.NoError(t, err)
	return g
}

func TestNew_InvalidTargetLength(t *testing.T) {
	_, err := New("CRAN", 5, 6)
	require.ErrorIs(t, err, ErrInvalidTargetLength)
	assert.Contains(t, err.Error(), "must be 5")
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New("CRANE", 5, 0)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New("", 0, 6)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNew_StoresTargetVerbatim(t *testing.T) {
	g := newGame(t, "cRaNe", 6)
	assert.Equal(t, "cRaNe", g.Target())
	assert.Equal(t, 5, g.WordLength())
	assert.Equal(t, 6, g.MaxTries())
	assert.Equal(t, 0, g.Attempts())
	assert.Equal(t, StatusPlaying, g.Status())
}

func TestSubmitGuess_ExactMatchWins(t *testing.T) {
	g := newGame(t, "CRANE", 6)

	res, err := g.SubmitGuess("CRANE")
	require.NoError(t, err)

	want := []Letter{Correct('C'), Correct('R'), Correct('A'), Correct('N'), Correct('E')}
	assert.Equal(t, want, res.Letters())
	assert.Equal(t, 1, res.Attempts())
	assert.Equal(t, 6, res.MaxTries())
	assert.Equal(t, StatusWon, DeriveStatus(res))
	assert.Equal(t, StatusWon, g.Status())
}

func TestSubmitGuess_PositionByPosition(t *testing.T) {
	g := newGame(t, "CRANE", 6)

	res, err := g.SubmitGuess("SNAKE")
	require.NoError(t, err)

	want := []Letter{Absent('S'), Misplaced('N'), Correct('A'), Absent('K'), Correct('E')}
	assert.Equal(t, want, res.Letters())
	assert.Equal(t, StatusPlaying, res.Status())
}

func TestSubmitGuess_NothingShared(t *testing.T) {
	g := newGame(t, "ABCDE", 1)

	res, err := g.SubmitGuess("XXXXX")
	require.NoError(t, err)

	for _, l := range res.Letters() {
		assert.Equal(t, KindAbsent, l.Kind)
		assert.Equal(t, 'X', l.Char)
	}
	assert.Equal(t, 1, res.Attempts())
	assert.Equal(t, res.MaxTries(), res.Attempts())
	assert.Equal(t, StatusLost, DeriveStatus(res))
}

func TestSubmitGuess_WinOnFinalAttempt(t *testing.T) {
	g := newGame(t, "CRANE", 2)

	_, err := g.SubmitGuess("SNAKE")
	require.NoError(t, err)
	res, err := g.SubmitGuess("CRANE")
	require.NoError(t, err)

	assert.Equal(t, 2, res.Attempts())
	assert.Equal(t, StatusWon, DeriveStatus(res), "win is checked before loss")
}

func TestSubmitGuess_TooManyAttempts(t *testing.T) {
	g := newGame(t, "CRANE", 3)
	for i := 0; i < 3; i++ {
		_, err := g.SubmitGuess("SLATE")
		require.NoError(t, err)
	}

	_, err := g.SubmitGuess("SLATE")
	require.ErrorIs(t, err, ErrTooManyAttempts)
	assert.Equal(t, 3, g.Attempts())
	assert.Len(t, g.History(), 3)
	assert.Equal(t, 0, g.Remaining())
}

func TestSubmitGuess_RejectedGuessLeavesHistory(t *testing.T) {
	g := newGame(t, "CRANE", 6)
	_, err := g.SubmitGuess("SLATE")
	require.NoError(t, err)
	before := g.History()

	_, err = g.SubmitGuess("TOOLONG")
	require.ErrorIs(t, err, ErrInvalidGuessLength)
	_, err = g.SubmitGuess("")
	require.ErrorIs(t, err, ErrInvalidGuessLength)

	assert.Equal(t, before, g.History())
	assert.Equal(t, 1, g.Attempts())
}

func TestSubmitGuess_LengthCheckedBeforeBudget(t *testing.T) {
	g := newGame(t, "CRANE", 1)
	_, err := g.SubmitGuess("CRATE")
	require.NoError(t, err)

	_, err = g.SubmitGuess("CRA")
	assert.ErrorIs(t, err, ErrInvalidGuessLength)
}

// TestScoreContains_DuplicateLetters pins the per-letter containment rule:
// there is no frequency budget, so every unmatched occurrence of a letter
// found anywhere in the target is Misplaced.
func TestScoreContains_DuplicateLetters(t *testing.T) {
	g := newGame(t, "SPEED", 6)

	res, err := g.SubmitGuess("ERASE")
	require.NoError(t, err)
	assert.Equal(t,
		[]Letter{Misplaced('E'), Absent('R'), Absent('A'), Misplaced('S'), Misplaced('E')},
		res.Letters())

	res, err = g.SubmitGuess("EEEEE")
	require.NoError(t, err)
	assert.Equal(t,
		[]Kind{KindMisplaced, KindMisplaced, KindCorrect, KindCorrect, KindMisplaced},
		kinds(res.Letters()))
}

// TestScoreFrequency_DivergesFromContains documents where the standard
// two-pass rule differs from the default one.
func TestScoreFrequency_DivergesFromContains(t *testing.T) {
	tests := []struct {
		target, guess string
		contains      []Kind
		standard      []Kind
	}{
		{
			target:   "SPEED",
			guess:    "EEEEE",
			contains: []Kind{KindMisplaced, KindMisplaced, KindCorrect, KindCorrect, KindMisplaced},
			standard: []Kind{KindAbsent, KindAbsent, KindCorrect, KindCorrect, KindAbsent},
		},
		{
			target:   "CRANE",
			guess:    "AAAAA",
			contains: []Kind{KindMisplaced, KindMisplaced, KindCorrect, KindMisplaced, KindMisplaced},
			standard: []Kind{KindAbsent, KindAbsent, KindCorrect, KindAbsent, KindAbsent},
		},
		{
			target:   "SPEED",
			guess:    "ERASE",
			contains: []Kind{KindMisplaced, KindAbsent, KindAbsent, KindMisplaced, KindMisplaced},
			standard: []Kind{KindMisplaced, KindAbsent, KindAbsent, KindMisplaced, KindMisplaced},
		},
	}
	for _, tc := range tests {
		t.Run(tc.target+"/"+tc.guess, func(t *testing.T) {
			assert.Equal(t, tc.contains, kinds(ScoreContains([]rune(tc.target), []rune(tc.guess))))
			assert.Equal(t, tc.standard, kinds(ScoreFrequency([]rune(tc.target), []rune(tc.guess))))
		})
	}
}

func TestWithScorer(t *testing.T) {
	g := newGame(t, "SPEED", 6, WithScorer(ScoreFrequency))
	res, err := g.SubmitGuess("EEEEE")
	require.NoError(t, err)
	assert.Equal(t, []Kind{KindAbsent, KindAbsent, KindCorrect, KindCorrect, KindAbsent}, kinds(res.Letters()))

	// nil keeps the default rule
	g = newGame(t, "SPEED", 6, WithScorer(nil))
	res, err = g.SubmitGuess("EEEEE")
	require.NoError(t, err)
	assert.Equal(t, KindMisplaced, res.Letters()[0].Kind)
}

func TestParseScorer(t *testing.T) {
	for _, mode := range []string{"", "contains", " Standard "} {
		s, err := ParseScorer(mode)
		require.NoError(t, err, mode)
		assert.NotNil(t, s)
	}
	_, err := ParseScorer("fuzzy")
	assert.Error(t, err)
}

func TestResult_IsImmutable(t *testing.T) {
	g := newGame(t, "CRANE", 6)
	res, err := g.SubmitGuess("CRANE")
	require.NoError(t, err)

	ls := res.Letters()
	ls[0] = Absent('Z')
	assert.Equal(t, Correct('C'), res.Letters()[0])

	h := g.History()
	h[0].Letters[0] = Absent('Z')
	h[0].Word = "ZZZZZ"
	assert.Equal(t, Correct('C'), g.History()[0].Letters[0])
	assert.Equal(t, []string{"CRANE"}, g.Guesses())
}

func TestSubmitGuess_AllCorrectIffEqual(t *testing.T) {
	targets := []string{"CRANE", "SPEED", "ABCDE", "MAMMA"}
	guesses := []string{"CRANE", "SPEED", "ABCDE", "MAMMA", "SLATE", "EDCBA"}
	for _, target := range targets {
		for _, guess := range guesses {
			g := newGame(t, target, 6)
			res, err := g.SubmitGuess(guess)
			require.NoError(t, err)
			won := DeriveStatus(res) == StatusWon
			assert.Equal(t, target == guess, won, "%s vs %s", target, guess)
		}
	}
}

func TestSubmitGuess_DisjointLettersAllAbsent(t *testing.T) {
	g := newGame(t, "CRANE", 6)
	res, err := g.SubmitGuess("BUMPY")
	require.NoError(t, err)
	for _, l := range res.Letters() {
		assert.Equal(t, KindAbsent, l.Kind)
	}
}

func TestStatus_Terminal(t *testing.T) {
	assert.True(t, StatusWon.Terminal())
	assert.True(t, StatusLost.Terminal())
	assert.False(t, StatusPlaying.Terminal())
}
