package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woolsdev/wools/internal/constraint"
	"github.com/woolsdev/wools/internal/pattern"
	"github.com/woolsdev/wools/internal/words"
)

func wordList(ss ...string) []words.Word {
	out := make([]words.Word, 0, len(ss))
	for _, s := range ss {
		out = append(out, words.MustParse(s))
	}
	return out
}

func TestFilterWithSolutionAsGuess(t *testing.T) {
	candidates := wordList("apple", "prime", "plume", "torch", "watch", "soles")
	got := Filter(candidates, words.MustParse("apple"), wordList("apple"))
	assert.Equal(t, wordList("apple"), got)
}

func TestFilterKeepsConsistentWords(t *testing.T) {
	candidates := wordList("apple", "prime", "plume", "torch", "watch", "soles")
	got := Filter(candidates, words.MustParse("apple"), wordList("coupe"))
	assert.Equal(t, wordList("apple", "prime"), got)
}

func TestFilterWithMultipleGuesses(t *testing.T) {
	candidates := wordList("apple", "flock", "adept", "wiped", "nepal")
	guesses := wordList("pouch", "empty", "viper", "lapse")
	got := Filter(candidates, words.MustParse("apple"), guesses)
	assert.Equal(t, wordList("apple"), got)
}

func TestFilterIsIdempotent(t *testing.T) {
	candidates := wordList("apple", "prime", "plume", "torch", "watch", "soles")
	solution := words.MustParse("apple")
	guesses := wordList("coupe")

	once := Filter(candidates, solution, guesses)
	twice := Filter(once, solution, guesses)
	assert.Equal(t, once, twice)
}

func TestFilterPreservesCandidateOrder(t *testing.T) {
	candidates := wordList("prime", "soles", "apple", "watch")
	got := Filter(candidates, words.MustParse("apple"), wordList("coupe"))
	assert.Equal(t, wordList("prime", "apple"), got)
}

func TestMatchAllCorrectHintsFindOnlyTheSolution(t *testing.T) {
	candidates := wordList("apple", "prime", "plume", "torch", "watch", "soles")
	hints, err := pattern.ParseHints("ggggg")
	require.NoError(t, err)
	got := Match(candidates, words.MustParse("apple"), hints)
	assert.Equal(t, wordList("apple"), got)
}

func TestMatchFindsIndistinguishableWords(t *testing.T) {
	candidates := wordList("apple", "prime", "plume", "phone", "torch", "watch")
	hints, err := pattern.ParseHints("ybbbg")
	require.NoError(t, err)
	got := Match(candidates, words.MustParse("apple"), hints)
	assert.Equal(t, wordList("prime", "phone"), got)
}

func TestSolveFromClues(t *testing.T) {
	candidates := wordList("apple", "prime", "plume", "torch", "watch", "soles")
	clue, err := ParseClue("coupe=bbbyg")
	require.NoError(t, err)
	got, err := Solve(candidates, []Clue{clue})
	require.NoError(t, err)
	assert.Equal(t, wordList("apple", "prime"), got)
}

func TestSolveWithNoCluesKeepsEverything(t *testing.T) {
	candidates := wordList("apple", "prime")
	got, err := Solve(candidates, nil)
	require.NoError(t, err)
	assert.Equal(t, candidates, got)
}

func TestParseClue(t *testing.T) {
	clue, err := ParseClue("poser=bgbgg")
	require.NoError(t, err)
	assert.Equal(t, words.MustParse("poser"), clue.Guess)
	assert.Equal(t, "bgbgg", pattern.FormatHints(clue.Hints))
}

func TestParseClueRejectsMalformedTokens(t *testing.T) {
	for _, tok := range []string{
		"poser",            // no separator
		"poser=bgb=gg",     // extra separator
		"poser=bgb",        // short hints
		"pose=bgbgg",       // short guess
		"poser=bgxgg",      // bad symbol
		"=bgbgg", "poser=", // empty halves
	} {
		_, err := ParseClue(tok)
		assert.Error(t, err, "token %q", tok)
	}
}

// The chunked parallel path must agree with the serial path, including
// output order.
func TestParallelFilterMatchesSerial(t *testing.T) {
	// 26*26*8 = 5408 candidates, above the parallel threshold.
	var candidates []words.Word
	for a := byte('a'); a <= 'z'; a++ {
		for b := byte('a'); b <= 'z'; b++ {
			for c := byte('a'); c <= 'h'; c++ {
				candidates = append(candidates, words.Word([]byte{a, b, c, 'e', 'r'}))
			}
		}
	}
	require.GreaterOrEqual(t, len(candidates), parallelThreshold)

	solution := words.MustParse("toner")
	guesses := wordList("poser")
	sets := []constraint.Set{
		constraint.FromPattern(pattern.FromSolution(solution, guesses[0])),
	}

	serial := filterSerial(candidates, sets)
	parallel := Filter(candidates, solution, guesses)
	assert.NotEmpty(t, serial)
	assert.Equal(t, serial, parallel)
}
