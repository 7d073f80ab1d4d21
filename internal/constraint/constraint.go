// internal/constraint/constraint.go
//
// Constraint derivation and matching.
//
// Responsibilities:
//   - Constraint: a bound on how many times one letter may appear within a
//     set of positions of a candidate word.
//   - Set: the conjunction of constraints derived from a single pattern.
//   - FromPattern: translate per-position hints and per-letter counts into
//     constraints that are sound under repeated letters.
//
// Derivation rules, per letter of the guess:
//   - correct at i     → at least 1 of the letter at {i} (a position lock).
//   - present/absent i → at most 0 of the letter at {i} (a position forbid).
//   - Y = present hints, B = absent hints for the letter; free positions are
//     every position not locked by a correct hint for that letter.
//       Y > 0 → at least Y of the letter across the free positions.
//       B > 0 → at most Y of the letter across the free positions. An absent
//               hint alongside present/correct hints pins the total count, and
//               with Y = 0 it bans the letter from the free positions outright.

package constraint

import (
	"github.com/woolsdev/wools/internal/pattern"
	"github.com/woolsdev/wools/internal/words"
)

type op uint8

const (
	atLeast op = iota
	atMost
)

// Constraint bounds the count of one letter across a set of positions.
type Constraint struct {
	char      byte
	positions []int
	count     int
	op        op
}

// Matches reports whether w satisfies the bound.
func (c Constraint) Matches(w words.Word) bool {
	n := 0
	for _, i := range c.positions {
		if w.At(i) == c.char {
			n++
		}
	}
	if c.op == atLeast {
		return n >= c.count
	}
	return n <= c.count
}

// Set is the conjunction of constraints derived from one pattern.
// Immutable after construction.
type Set struct {
	constraints []Constraint
}

// FromPattern derives the constraint set for a pattern.
func FromPattern(p pattern.Pattern) Set {
	type posHint struct {
		pos  int
		hint pattern.Hint
	}

	// Group hints per letter, keeping first-occurrence order so derivation
	// is deterministic.
	byChar := make(map[byte][]posHint, words.Size)
	order := make([]byte, 0, words.Size)
	for i := 0; i < words.Size; i++ {
		c := p.Guess.At(i)
		if _, ok := byChar[c]; !ok {
			order = append(order, c)
		}
		byChar[c] = append(byChar[c], posHint{pos: i, hint: p.Hints[i]})
	}

	var cs []Constraint
	for _, c := range order {
		presents, absents := 0, 0
		var locked []int
		for _, ph := range byChar[c] {
			switch ph.hint {
			case pattern.Correct:
				cs = append(cs, lock(ph.pos, c))
				locked = append(locked, ph.pos)
			case pattern.Present:
				cs = append(cs, forbid(ph.pos, c))
				presents++
			default:
				cs = append(cs, forbid(ph.pos, c))
				absents++
			}
		}

		if presents == 0 && absents == 0 {
			continue
		}
		free := notAt(locked)
		if presents > 0 {
			cs = append(cs, Constraint{char: c, positions: free, count: presents, op: atLeast})
		}
		if absents > 0 {
			// Upper bound equals the confirmed-elsewhere count, not the
			// absent count; see the tonal/swoop case in the tests.
			cs = append(cs, Constraint{char: c, positions: free, count: presents, op: atMost})
		}
	}
	return Set{constraints: cs}
}

// Matches reports whether w satisfies every constraint in the set.
func (s Set) Matches(w words.Word) bool {
	for _, c := range s.constraints {
		if !c.Matches(w) {
			return false
		}
	}
	return true
}

// Len returns the number of constraints in the set.
func (s Set) Len() int { return len(s.constraints) }

// lock requires the letter at exactly position i.
func lock(i int, c byte) Constraint {
	return Constraint{char: c, positions: []int{i}, count: 1, op: atLeast}
}

// forbid bans the letter from position i.
func forbid(i int, c byte) Constraint {
	return Constraint{char: c, positions: []int{i}, count: 0, op: atMost}
}

// notAt returns every position except the given ones.
func notAt(exclude []int) []int {
	out := make([]int, 0, words.Size)
	for i := 0; i < words.Size; i++ {
		skip := false
		for _, e := range exclude {
			if i == e {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, i)
		}
	}
	return out
}
