// apps/go-cli/internal/game/engine.go
//
// Core game engine for a single word-guessing session.
// Responsibilities:
//   - Create games with a verbatim target and explicit dimensions.
//   - Validate and apply guesses (length, attempt budget).
//   - Score guesses with a pluggable Scorer (ScoreContains by default).
//   - Derive the game status from a submission result.
//
// Notes:
//   - Dictionary validation and case normalisation are the caller's job
//     (see the words and shell packages).
//   - Lengths are measured in runes for both target and guesses.
package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTargetLength = errors.New("invalid target length")
	ErrInvalidGuessLength  = errors.New("invalid guess length")
	ErrTooManyAttempts     = errors.New("too many attempts")
	ErrInvalidConfig       = errors.New("invalid game config")
)

// Game holds the state of a single session.
type Game struct {
	target     []rune
	wordLength int
	maxTries   int
	history    []Attempt
	score      Scorer
}

// Option customises a Game at construction.
type Option func(*Game)

// WithScorer replaces the default ScoreContains rule.
func WithScorer(s Scorer) Option {
	return func(g *Game) {
		if s != nil {
			g.score = s
		}
	}
}

// New constructs a game for target. It fails with ErrInvalidTargetLength
// when the target does not have wordLength characters.
func New(target string, wordLength, maxTries int, opts ...Option) (*Game, error) {
	if wordLength <= 0 || maxTries <= 0 {
		return nil, fmt.Errorf("%w: word length %d, max tries %d", ErrInvalidConfig, wordLength, maxTries)
	}
	t := []rune(target)
	if len(t) != wordLength {
		return nil, fmt.Errorf("%w: word length must be %d, got %d", ErrInvalidTargetLength, wordLength, len(t))
	}
	g := &Game{
		target:     t,
		wordLength: wordLength,
		maxTries:   maxTries,
		history:    make([]Attempt, 0, maxTries),
		score:      ScoreContains,
	}
	for _, o := range opts {
		o(g)
	}
	return g, nil
}

// SubmitGuess scores word against the target and records it.
//
// Preconditions are checked in order: length first, then budget. A
// rejected guess leaves the history untouched.
func (g *Game) SubmitGuess(word string) (Result, error) {
	w := []rune(word)
	if len(w) != g.wordLength {
		return Result{}, fmt.Errorf("%w: word length must be %d, got %d", ErrInvalidGuessLength, g.wordLength, len(w))
	}
	if len(g.history) >= g.maxTries {
		return Result{}, fmt.Errorf("%w: already tried %d times", ErrTooManyAttempts, g.maxTries)
	}

	letters := g.score(g.target, w)
	g.history = append(g.history, Attempt{Word: word, Letters: letters})

	res := Result{
		letters:  make([]Letter, len(letters)),
		attempts: len(g.history),
		maxTries: g.maxTries,
	}
	copy(res.letters, letters)
	return res, nil
}

// DeriveStatus decides whether the game ended with r.
// An all-correct guess wins even on the final attempt.
func DeriveStatus(r Result) Status {
	if len(r.letters) > 0 && allCorrect(r.letters) {
		return StatusWon
	}
	if r.attempts == r.maxTries {
		return StatusLost
	}
	return StatusPlaying
}

// Target returns the hidden word as it was given to New.
func (g *Game) Target() string { return string(g.target) }

func (g *Game) WordLength() int { return g.wordLength }
func (g *Game) MaxTries() int   { return g.maxTries }
func (g *Game) Attempts() int   { return len(g.history) }

// Remaining is the number of guesses still allowed.
func (g *Game) Remaining() int { return g.maxTries - len(g.history) }

// History returns a deep copy of the recorded attempts, oldest first.
func (g *Game) History() []Attempt {
	out := make([]Attempt, len(g.history))
	for i, a := range g.history {
		ls := make([]Letter, len(a.Letters))
		copy(ls, a.Letters)
		out[i] = Attempt{Word: a.Word, Letters: ls}
	}
	return out
}

// Guesses lists the submitted words, oldest first.
func (g *Game) Guesses() []string {
	out := make([]string, len(g.history))
	for i, a := range g.history {
		out[i] = a.Word
	}
	return out
}

// Status reports the status after the latest guess (Playing if none).
func (g *Game) Status() Status {
	if len(g.history) == 0 {
		return StatusPlaying
	}
	last := g.history[len(g.history)-1]
	return DeriveStatus(Result{letters: last.Letters, attempts: len(g.history), maxTries: g.maxTries})
}

// allCorrect returns true if all letters are KindCorrect.
func allCorrect(ls []Letter) bool {
	for _, l := range ls {
		if l.Kind != KindCorrect {
			return false
		}
	}
	return true
}
