// apps/go-cli/internal/words/words.go
//
// Provides dictionary management for the game.
//
// Responsibilities:
//   - Load the dictionary from a configured file or fall back to the
//     embedded default (assets/words.txt).
//   - Normalize entries (trim, upper-case, ASCII letters only) and keep only
//     words of the configured length.
//   - Answer membership queries for guess validation.
//
// Constraints:
//   • One word per line; blank lines and '#' comments are ignored.
//   • Duplicates are dropped, first occurrence wins.
//   • A List is read-only once built.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/assets"
)

var ErrEmptyList = errors.New("words: list is empty")

// List is an ordered dictionary of same-length words with a lookup set.
type List struct {
	length int
	words  []string
	set    map[string]struct{}
}

// Sanitize trims s, upper-cases it and drops every non-ASCII-letter rune.
func Sanitize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(s)) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Parse reads one word per line from r, keeping only sanitized words of
// exactly length letters.
func Parse(r io.Reader, length int) (*List, error) {
	if length <= 0 {
		return nil, fmt.Errorf("words: invalid word length %d", length)
	}
	l := &List{length: length, set: make(map[string]struct{})}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w := Sanitize(line)
		if len(w) != length {
			continue
		}
		if _, dup := l.set[w]; dup {
			continue
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: scan: %w", err)
	}
	if len(l.words) == 0 {
		return nil, ErrEmptyList
	}
	return l, nil
}

// Load reads the dictionary at path, or the embedded default when path is empty.
func Load(path string, length int) (*List, error) {
	if path == "" {
		return Default(length)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	l, err := Parse(f, length)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("words", l.Len()).Int("length", length).Msg("dictionary loaded")
	return l, nil
}

// Default parses the embedded dictionary.
func Default(length int) (*List, error) {
	f, err := assets.OpenWords()
	if err != nil {
		return nil, fmt.Errorf("open embedded words: %w", err)
	}
	defer f.Close()

	l, err := Parse(f, length)
	if err != nil {
		return nil, fmt.Errorf("load embedded words: %w", err)
	}
	log.Debug().Str("path", assets.DefaultWordsName).Int("words", l.Len()).Int("length", length).Msg("dictionary loaded")
	return l, nil
}

// IsValid reports whether word is in the dictionary. Matching is exact;
// callers sanitize first.
func (l *List) IsValid(word string) bool {
	_, ok := l.set[word]
	return ok
}

// Len returns the number of words.
func (l *List) Len() int { return len(l.words) }

// WordLength is the length every word in the list has.
func (l *List) WordLength() int { return l.length }

// At returns the i-th word in file order.
func (l *List) At(i int) string { return l.words[i] }

// Words returns a copy of the list in file order.
func (l *List) Words() []string {
	return append([]string(nil), l.words...)
}
