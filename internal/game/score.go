package game

import (
	"fmt"
	"strings"
)

// Scorer classifies every position of guess against target.
// Both slices have the same length.
type Scorer func(target, guess []rune) []Letter

// ScoreContains classifies each position independently:
// same position → Correct, anywhere in target → Misplaced, else Absent.
//
// There is no duplicate-letter budget: a letter that occurs once in the
// target is reported Misplaced at every non-matching position it is guessed.
func ScoreContains(target, guess []rune) []Letter {
	seen := make(map[rune]struct{}, len(target))
	for _, r := range target {
		seen[r] = struct{}{}
	}
	res := make([]Letter, len(guess))
	for i, c := range guess {
		switch _, in := seen[c]; {
		case c == target[i]:
			res[i] = Correct(c)
		case in:
			res[i] = Misplaced(c)
		default:
			res[i] = Absent(c)
		}
	}
	return res
}

// ScoreFrequency implements the standard two‑pass scoring.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count remaining (non‑matched) target letters.
//
// Pass 2:
//   - For each unmatched guess letter: if there is remaining count for that
//     letter, mark Misplaced and decrement the count; otherwise Absent.
func ScoreFrequency(target, guess []rune) []Letter {
	n := len(guess)
	res := make([]Letter, n)
	counts := make(map[rune]int, n)

	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			res[i] = Correct(guess[i])
		} else {
			counts[target[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i].Kind == KindCorrect {
			continue
		}
		c := guess[i]
		if counts[c] > 0 {
			res[i] = Misplaced(c)
			counts[c]--
		} else {
			res[i] = Absent(c)
		}
	}
	return res
}

// Scoring mode names accepted by ParseScorer.
const (
	ScoringContains = "contains"
	ScoringStandard = "standard"
)

// ParseScorer maps a mode name to its Scorer.
func ParseScorer(mode string) (Scorer, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ScoringContains:
		return ScoreContains, nil
	case ScoringStandard:
		return ScoreFrequency, nil
	default:
		return nil, fmt.Errorf("unknown scoring mode %q", mode)
	}
}
