// internal/pattern/pattern.go
//
// Feedback derivation: turning a guess into per-letter hints.
//
// Responsibilities:
//   - Hint: per-position feedback tag (correct/present/absent).
//   - Pattern: a guess plus its ordered hint sequence.
//   - FromSolution: score a guess against a known solution using the classic
//     two-pass Wordle algorithm (correct behavior with repeated letters).
//   - FromHints: accept externally reported hints for a guess.
//   - ParseHints/FormatHints: the compact g/y/b string encoding used at the
//     CLI and HTTP boundaries.
//
// Notes:
//   - The second pass runs strictly left to right. When the solution has
//     fewer copies of a letter than the guess, the earlier pending position
//     takes "present" and later ones fall to "absent". That ordering is what
//     makes duplicate handling match the official game.

package pattern

import (
	"fmt"
	"strings"

	"github.com/woolsdev/wools/internal/words"
)

// Hint is the evaluation result for a single letter of a guess.
type Hint string

const (
	// Correct: right letter in the right position.
	Correct Hint = "correct"
	// Present: the letter occurs in the solution at some not-yet-accounted
	// position.
	Present Hint = "present"
	// Absent: no unaccounted occurrence of the letter remains.
	Absent Hint = "absent"
)

// Pattern pairs a guess with the hint it produced, one Hint per position.
// A Pattern never retains the solution it was derived from.
type Pattern struct {
	Guess words.Word
	Hints []Hint // always exactly words.Size entries
}

// FromSolution scores guess against solution.
//
// Pass 1: mark exact matches as Correct and count the remaining (unmatched)
// solution letters.
// Pass 2: for each pending position, left to right, consume a remaining
// count for Present, otherwise Absent.
func FromSolution(solution, guess words.Word) Pattern {
	hints := make([]Hint, words.Size)

	// Letter frequency of the solution positions not consumed by pass 1.
	var counts [26]int

	for i := 0; i < words.Size; i++ {
		if guess.At(i) == solution.At(i) {
			hints[i] = Correct
		} else {
			counts[idx(solution.At(i))]++
		}
	}

	for i := 0; i < words.Size; i++ {
		if hints[i] == Correct {
			continue
		}
		if j := idx(guess.At(i)); counts[j] > 0 {
			hints[i] = Present
			counts[j]--
		} else {
			hints[i] = Absent
		}
	}
	return Pattern{Guess: guess, Hints: hints}
}

// FromHints builds a Pattern from externally reported hints. The only
// validation is structural: exactly words.Size recognized tags.
func FromHints(guess words.Word, hints []Hint) (Pattern, error) {
	if len(hints) != words.Size {
		return Pattern{}, fmt.Errorf("pattern: expected %d hints, got %d", words.Size, len(hints))
	}
	for _, h := range hints {
		switch h {
		case Correct, Present, Absent:
		default:
			return Pattern{}, fmt.Errorf("pattern: unknown hint %q", string(h))
		}
	}
	out := make([]Hint, words.Size)
	copy(out, hints)
	return Pattern{Guess: guess, Hints: out}, nil
}

// HintString renders the pattern's hints in the compact encoding.
func (p Pattern) HintString() string { return FormatHints(p.Hints) }

// EqualHints reports whether the pattern produced exactly the given hint
// sequence.
func (p Pattern) EqualHints(hints []Hint) bool {
	if len(hints) != len(p.Hints) {
		return false
	}
	for i, h := range p.Hints {
		if hints[i] != h {
			return false
		}
	}
	return true
}

// ParseHints decodes the compact hint encoding: one symbol per position,
// 'g' for correct, 'y' for present, 'b' for absent, case-insensitive.
func ParseHints(s string) ([]Hint, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len([]rune(s)) != words.Size {
		return nil, fmt.Errorf("pattern: hints %q must be exactly %d symbols", s, words.Size)
	}
	out := make([]Hint, 0, words.Size)
	for _, r := range s {
		switch r {
		case 'g':
			out = append(out, Correct)
		case 'y':
			out = append(out, Present)
		case 'b':
			out = append(out, Absent)
		default:
			return nil, fmt.Errorf("pattern: unknown hint symbol %q (want g, y, or b)", string(r))
		}
	}
	return out, nil
}

// FormatHints is the inverse of ParseHints.
func FormatHints(hints []Hint) string {
	var b strings.Builder
	for _, h := range hints {
		switch h {
		case Correct:
			b.WriteByte('g')
		case Present:
			b.WriteByte('y')
		default:
			b.WriteByte('b')
		}
	}
	return b.String()
}

// idx maps a lowercase ASCII letter to 0..25.
// Inputs are validated to a–z by the words package.
func idx(c byte) int { return int(c - 'a') }
