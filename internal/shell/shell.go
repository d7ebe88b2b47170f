// apps/go-cli/internal/shell/shell.go
//
// Interactive terminal loop for one game.
// Responsibilities:
//   - Prompt for guesses, sanitize them, reject words outside the dictionary
//     without consuming an attempt.
//   - Submit accepted guesses to the engine and render the board.
//   - Stop on a terminal status, end of input or context cancellation.

package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/render"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

// ErrAborted is returned when input ends before the game does.
var ErrAborted = errors.New("game aborted")

const (
	promptGuess    = "Enter your guess >> "
	promptContinue = "Press <Enter> to continue..."
)

// Dictionary answers membership queries for sanitized guesses.
type Dictionary interface {
	IsValid(word string) bool
}

// Shell drives one game against an input stream.
type Shell struct {
	game  *game.Game
	dict  Dictionary
	out   *render.Printer
	lines <-chan string
	errc  <-chan error
	eof   error
}

// New wires a shell and starts reading from in.
func New(g *game.Game, dict Dictionary, in io.Reader, out *render.Printer) *Shell {
	lines, errc := readLines(in)
	return &Shell{game: g, dict: dict, out: out, lines: lines, errc: errc}
}

// Run plays until the game is won or lost. It returns the terminal status,
// ErrAborted on end of input, or ctx.Err() on cancellation.
func (s *Shell) Run(ctx context.Context) (game.Status, error) {
	for {
		s.out.Clear()
		res, err := s.turn(ctx)
		if err != nil {
			return s.game.Status(), err
		}

		status := res.Status()
		log.Debug().Int("attempt", res.Attempts()).Int("max", res.MaxTries()).Str("status", status.String()).Msg("guess scored")

		switch status {
		case game.StatusWon:
			s.out.Clear()
			if err := s.out.Board(s.game); err != nil {
				return status, err
			}
			s.out.Printf("%s\n", s.out.Styled(render.StyleSuccess, "You won the game!"))
			return status, nil
		case game.StatusLost:
			s.out.Clear()
			if err := s.out.Board(s.game); err != nil {
				return status, err
			}
			s.out.Printf("%s The word was %s\n",
				s.out.Styled(render.StyleNeutral, "You lost!"),
				s.out.Styled(render.StyleSuccess, strings.ToLower(s.game.Target())))
			return status, nil
		default:
			s.out.Printf("\n")
		}
	}
}

// turn prompts until an accepted guess is scored.
func (s *Shell) turn(ctx context.Context) (game.Result, error) {
	for {
		if err := s.out.Board(s.game); err != nil {
			return game.Result{}, err
		}
		s.out.Printf("%s", promptGuess)

		line, err := s.next(ctx)
		if err != nil {
			return game.Result{}, err
		}
		word := words.Sanitize(line)
		if len(word) != s.game.WordLength() || !s.dict.IsValid(word) {
			log.Debug().Str("word", word).Msg("rejected guess")
			s.out.Clear()
			s.out.Printf("%s\n", s.out.Styled(render.StyleNeutral, word+" not a valid word"))
			continue
		}
		res, err := s.game.SubmitGuess(word)
		if err != nil {
			return game.Result{}, fmt.Errorf("submit guess: %w", err)
		}
		return res, nil
	}
}

// Pause prints the continue prompt and waits for one line.
// End of input is not an error.
func (s *Shell) Pause(ctx context.Context) error {
	s.out.Printf("%s", s.out.Styled(render.StyleSuccess, promptContinue))
	_, err := s.next(ctx)
	if errors.Is(err, ErrAborted) {
		return nil
	}
	return err
}

func (s *Shell) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if ok {
			return line, nil
		}
		if s.eof == nil {
			s.eof = ErrAborted
			if err := <-s.errc; err != nil {
				s.eof = fmt.Errorf("read input: %w", err)
			}
		}
		return "", s.eof
	}
}

// readLines scans r on its own goroutine so that a blocked read does not
// hold up cancellation. errc yields the scan error (or nil) once lines closes.
func readLines(r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			lines <- sc.Text()
		}
		errc <- sc.Err()
	}()
	return lines, errc
}
