// internal/solver/solver.go
//
// Composed operations over the pattern and constraint packages.
//
// Responsibilities:
//   - Filter: keep candidates consistent with the feedback a known solution
//     gives for a sequence of guesses.
//   - Solve: same, but from externally reported (guess, hints) clues with no
//     known solution.
//   - Match: find candidates that would produce one exact hint sequence
//     against a known solution.
//   - Clue parsing for the GUESS=HINTS token shape used by the CLI.
//
// All operations read the candidate list without mutating it and preserve
// its order. Large lists are filtered in parallel, chunked across CPUs;
// results are identical to the serial path.

package solver

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/woolsdev/wools/internal/constraint"
	"github.com/woolsdev/wools/internal/pattern"
	"github.com/woolsdev/wools/internal/words"
)

// Candidate lists below this size are filtered serially; chunking overhead
// dominates for small lists.
const parallelThreshold = 4096

// Clue is a guess together with the hints it reportedly produced.
type Clue struct {
	Guess words.Word
	Hints []pattern.Hint
}

// ParseClue parses a GUESS=HINTS token, e.g. "poser=bgbgg".
func ParseClue(tok string) (Clue, error) {
	if strings.Count(tok, "=") != 1 {
		return Clue{}, fmt.Errorf("solver: clue %q must be GUESS=HINTS with a single separator", tok)
	}
	parts := strings.SplitN(tok, "=", 2)
	guess, err := words.Parse(parts[0])
	if err != nil {
		return Clue{}, err
	}
	hints, err := pattern.ParseHints(parts[1])
	if err != nil {
		return Clue{}, err
	}
	return Clue{Guess: guess, Hints: hints}, nil
}

// Filter returns the candidates consistent with every guess's feedback
// against the known solution.
func Filter(candidates []words.Word, solution words.Word, guesses []words.Word) []words.Word {
	sets := make([]constraint.Set, 0, len(guesses))
	for _, g := range guesses {
		sets = append(sets, constraint.FromPattern(pattern.FromSolution(solution, g)))
	}
	return filterSets(candidates, sets)
}

// Solve returns the candidates consistent with every clue. No solution is
// needed: the constraint sets come straight from the reported hints.
func Solve(candidates []words.Word, clues []Clue) ([]words.Word, error) {
	sets := make([]constraint.Set, 0, len(clues))
	for _, c := range clues {
		p, err := pattern.FromHints(c.Guess, c.Hints)
		if err != nil {
			return nil, err
		}
		sets = append(sets, constraint.FromPattern(p))
	}
	return filterSets(candidates, sets), nil
}

// Match returns the candidates that, guessed against the solution, would
// produce exactly the given hint sequence. This recomputes feedback per
// candidate rather than filtering by constraints: it tests hint equality,
// not consistency.
func Match(candidates []words.Word, solution words.Word, hints []pattern.Hint) []words.Word {
	var out []words.Word
	for _, w := range candidates {
		if pattern.FromSolution(solution, w).EqualHints(hints) {
			out = append(out, w)
		}
	}
	return out
}

// filterSets applies the conjunction of all sets to the candidate list.
func filterSets(candidates []words.Word, sets []constraint.Set) []words.Word {
	if len(candidates) >= parallelThreshold {
		return filterParallel(candidates, sets)
	}
	return filterSerial(candidates, sets)
}

func filterSerial(candidates []words.Word, sets []constraint.Set) []words.Word {
	var out []words.Word
	for _, w := range candidates {
		if matchesAll(w, sets) {
			out = append(out, w)
		}
	}
	return out
}

// filterParallel splits the candidates into one chunk per CPU, filters the
// chunks concurrently, and concatenates the results in chunk order, so the
// output order matches the serial path.
func filterParallel(candidates []words.Word, sets []constraint.Set) []words.Word {
	workers := runtime.GOMAXPROCS(0)
	chunk := (len(candidates) + workers - 1) / workers

	results := make([][]words.Word, workers)
	var g errgroup.Group
	for i := 0; i < workers; i++ {
		lo := i * chunk
		if lo >= len(candidates) {
			break
		}
		hi := lo + chunk
		if hi > len(candidates) {
			hi = len(candidates)
		}
		i, part := i, candidates[lo:hi]
		g.Go(func() error {
			results[i] = filterSerial(part, sets)
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	var out []words.Word
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}

func matchesAll(w words.Word, sets []constraint.Set) bool {
	for _, s := range sets {
		if !s.Matches(w) {
			return false
		}
	}
	return true
}
