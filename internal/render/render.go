// apps/go-cli/internal/render/render.go
//
// Terminal rendering for the guess board.
// Responsibilities:
//   - Turn a guess history into exactly maxTries display rows.
//   - Map letter classifications to display styles.
//   - Write rows as bracketed cells, coloured with ANSI SGR codes when the
//     output supports it.
//
// Rendering only reads game state; it never mutates it.

package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// Style is the display class of one cell.
type Style string

const (
	StyleSuccess Style = "success" // correct letter
	StyleCaution Style = "caution" // misplaced letter
	StyleNeutral Style = "neutral" // absent letter
	StyleEmpty   Style = "empty"   // placeholder for an unused row
)

// StyleFor maps a classification to its display style.
func StyleFor(k game.Kind) Style {
	switch k {
	case game.KindCorrect:
		return StyleSuccess
	case game.KindMisplaced:
		return StyleCaution
	case game.KindAbsent:
		return StyleNeutral
	default:
		return StyleEmpty
	}
}

// Cell is one rendered position. Char is zero for placeholders.
type Cell struct {
	Char  rune
	Style Style
}

// Row is one line of the board.
type Row []Cell

// Rows builds exactly maxTries rows: one per recorded attempt, then
// wordLength placeholder cells for every unused try.
func Rows(history []game.Attempt, wordLength, maxTries int) []Row {
	rows := make([]Row, 0, maxTries)
	for i := 0; i < maxTries; i++ {
		if i >= len(history) {
			rows = append(rows, emptyRow(wordLength))
			continue
		}
		row := make(Row, len(history[i].Letters))
		for j, l := range history[i].Letters {
			row[j] = Cell{Char: l.Char, Style: StyleFor(l.Kind)}
		}
		rows = append(rows, row)
	}
	return rows
}

// RowOf renders a single scored guess.
func RowOf(letters []game.Letter) Row {
	return Rows([]game.Attempt{{Letters: letters}}, len(letters), 1)[0]
}

func emptyRow(n int) Row {
	row := make(Row, n)
	for i := range row {
		row[i] = Cell{Style: StyleEmpty}
	}
	return row
}

// GameReader is the read-only view of a game the board needs.
type GameReader interface {
	History() []game.Attempt
	WordLength() int
	MaxTries() int
}

// Printer writes boards and messages to an output stream.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter returns a Printer writing to w; color toggles ANSI codes.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

// Stdout returns a Printer for os.Stdout. Colour is used only when stdout
// is a terminal, NO_COLOR is unset and noColor is false.
func Stdout(noColor bool) *Printer {
	color := !noColor && ColorEnabled(os.Stdout.Fd())
	if color {
		return NewPrinter(colorable.NewColorableStdout(), true)
	}
	return NewPrinter(colorable.NewNonColorable(os.Stdout), false)
}

// ColorEnabled reports whether fd is a terminal and NO_COLOR is unset.
func ColorEnabled(fd uintptr) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Color reports whether the printer emits ANSI codes.
func (p *Printer) Color() bool { return p.color }

// Board writes all rows of g.
func (p *Printer) Board(g GameReader) error {
	for _, row := range Rows(g.History(), g.WordLength(), g.MaxTries()) {
		if err := p.Row(row); err != nil {
			return err
		}
	}
	return nil
}

// Row writes one row followed by a newline.
func (p *Printer) Row(row Row) error {
	var b strings.Builder
	for _, c := range row {
		b.WriteString(p.cell(c))
	}
	b.WriteByte('\n')
	_, err := io.WriteString(p.w, b.String())
	return err
}

// Printf writes a plain message.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// Styled wraps s in the colour for st (no-op without colour).
func (p *Printer) Styled(st Style, s string) string {
	code := sgr[st]
	if !p.color || code == "" {
		return s
	}
	return code + s + reset
}

// Clear wipes the screen and homes the cursor. Only a terminal is cleared.
func (p *Printer) Clear() {
	if p.color {
		_, _ = io.WriteString(p.w, clearScreen)
	}
}

func (p *Printer) cell(c Cell) string {
	if c.Style == StyleEmpty || c.Char == 0 {
		return "[ ]"
	}
	return "[" + p.Styled(c.Style, string(c.Char)) + "]"
}

const (
	reset       = "\x1b[0m"
	clearScreen = "\x1b[H\x1b[2J"
)

// sgr holds the ANSI colours: green, yellow, red.
var sgr = map[Style]string{
	StyleSuccess: "\x1b[32m",
	StyleCaution: "\x1b[33m",
	StyleNeutral: "\x1b[31m",
}
