// Package daily picks the word of the day.
//
// Selection is a pure function of (word list, seed, salt). The wall clock
// is only consulted by Seed, which callers invoke at the edge.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"strconv"
	"time"
)

var ErrEmptyList = errors.New("daily: empty word list")

const secondsPerDay = 86400

// Source is the subset of a dictionary Pick needs.
type Source interface {
	Len() int
	At(i int) string
}

// Seed returns the number of whole days between the Unix epoch and t (UTC).
func Seed(t time.Time) uint64 {
	s := t.UTC().Unix()
	if s < 0 {
		return 0
	}
	return uint64(s / secondsPerDay)
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Index returns a deterministic index in [0,n) using HMAC(salt, seed) % n.
func Index(seed uint64, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(strconv.FormatUint(seed, 10)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Pick returns the word for seed. Every call with the same list, seed and
// salt yields the same word.
func Pick(src Source, seed uint64, salt string) (string, error) {
	if src == nil || src.Len() == 0 {
		return "", ErrEmptyList
	}
	return src.At(Index(seed, salt, src.Len())), nil
}
