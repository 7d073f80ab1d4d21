// internal/words/words.go
//
// Word value type and dictionary loading.
//
// Responsibilities:
//   - Define Word: an immutable, validated, 5-letter lowercase value.
//   - Normalize raw input (lowercase + diacritic folding, e.g. "SAUTÉ" → "saute").
//   - Load candidate dictionaries from files (one word per line), keeping only
//     lines that normalize to valid words and deduplicating in order.
//   - Fall back to a small embedded list when no dictionary file is available.
//
// Constraints:
//   • A Word is always exactly Size (5) ASCII letters a–z.
//   • Everything downstream (pattern, constraint, solver) indexes Words by
//     byte position and never re-validates them.

package words

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Size is the fixed word length, in characters.
const Size = 5

// Word is a validated, normalized, lowercase word of exactly Size letters.
// The zero value is not a valid Word; construct via Parse or MustParse.
type Word string

// foldMarks decomposes to NFD, strips combining marks, and recomposes,
// which turns "é" into "e", "ñ" into "n", and so on.
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Parse normalizes s (trim, lowercase, fold diacritics) and validates it.
// Returns an error if the normalized word is not exactly Size characters or
// contains anything outside a–z.
func Parse(s string) (Word, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	folded, _, err := transform.String(foldMarks, s)
	if err != nil {
		return "", fmt.Errorf("words: normalize %q: %w", s, err)
	}
	if len([]rune(folded)) != Size {
		return "", fmt.Errorf("words: %q is not %d characters long", s, Size)
	}
	for _, r := range folded {
		if r < 'a' || r > 'z' {
			return "", fmt.Errorf("words: %q contains non-alphabetic characters", s)
		}
	}
	return Word(folded), nil
}

// MustParse is Parse for known-good literals; it panics on invalid input.
func MustParse(s string) Word {
	w, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return w
}

// At returns the letter at position i. Words are ASCII by construction,
// so byte indexing is safe.
func (w Word) At(i int) byte { return w[i] }

// String returns the normalized word.
func (w Word) String() string { return string(w) }

// ParseAll parses each string in ss, failing on the first invalid one.
func ParseAll(ss []string) ([]Word, error) {
	out := make([]Word, 0, len(ss))
	for _, s := range ss {
		w, err := Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

// Load reads a dictionary file with one word per line. Lines that do not
// normalize to a valid Word are skipped; duplicates are dropped while
// preserving first-seen order.
func Load(path string) ([]Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []Word
	seen := make(map[Word]struct{})
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w, err := Parse(sc.Text())
		if err != nil {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out, sc.Err()
}
