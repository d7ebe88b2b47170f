// apps/go-cli/internal/game/types.go
//
// Core type definitions for the word-guessing engine.
// Defines:
//   - Kind/Letter: per-letter classification of a guess.
//   - Attempt: one recorded guess and its scored letters.
//   - Result: immutable outcome of a single submission.
//   - Status: derived game status (won/lost/playing).

package game

// Kind represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct":   letter matches the target at the same position.
//   - "misplaced": letter exists in the target but at a different position.
//   - "absent":    letter does not occur in the target at all.
type Kind string

const (
	KindCorrect   Kind = "correct"
	KindMisplaced Kind = "misplaced"
	KindAbsent    Kind = "absent"
)

func (k Kind) String() string { return string(k) }

// Letter is a guessed character tagged with its classification.
type Letter struct {
	Char rune `json:"char"`
	Kind Kind `json:"kind"`
}

// Correct, Misplaced and Absent build tagged letters.
func Correct(c rune) Letter   { return Letter{Char: c, Kind: KindCorrect} }
func Misplaced(c rune) Letter { return Letter{Char: c, Kind: KindMisplaced} }
func Absent(c rune) Letter    { return Letter{Char: c, Kind: KindAbsent} }

// Attempt is one entry of the guess history.
type Attempt struct {
	Word    string   `json:"word"`
	Letters []Letter `json:"letters"`
}

// Status is derived from a Result, never stored.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

func (s Status) String() string { return string(s) }

// Terminal reports whether the game has ended.
func (s Status) Terminal() bool { return s == StatusWon || s == StatusLost }

// Result wraps the scored letters of one guess together with the attempt
// count at submission time and the configured budget.
type Result struct {
	letters  []Letter
	attempts int
	maxTries int
}

// Letters returns a copy of the scored letters.
func (r Result) Letters() []Letter {
	out := make([]Letter, len(r.letters))
	copy(out, r.letters)
	return out
}

// Attempts is the number of guesses recorded when this result was produced.
func (r Result) Attempts() int { return r.attempts }

// MaxTries is the configured attempt budget.
func (r Result) MaxTries() int { return r.maxTries }

// Status is shorthand for DeriveStatus(r).
func (r Result) Status() Status { return DeriveStatus(r) }
