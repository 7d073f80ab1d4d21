package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidWord(t *testing.T) {
	w, err := Parse("apple")
	require.NoError(t, err)
	assert.Equal(t, "apple", w.String())
}

func TestParseLowercasesInput(t *testing.T) {
	w, err := Parse("APPLE")
	require.NoError(t, err)
	assert.Equal(t, "apple", w.String())
}

func TestParseFoldsDiacritics(t *testing.T) {
	for in, want := range map[string]string{
		"sauté": "saute",
		"SAUTÉ": "saute",
		"niño1": "", // digit survives folding, still invalid
		"crêpe": "crepe",
	} {
		w, err := Parse(in)
		if want == "" {
			assert.Error(t, err, "input %q", in)
			continue
		}
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, w.String())
	}
}

func TestParseRejectsWrongLength(t *testing.T) {
	_, err := Parse("cut")
	assert.Error(t, err)
	_, err = Parse("potato")
	assert.Error(t, err)
	_, err = Parse("")
	assert.Error(t, err)
}

func TestParseRejectsNonAlphabetic(t *testing.T) {
	_, err := Parse("bob's")
	assert.Error(t, err)
	_, err = Parse("ab cd")
	assert.Error(t, err)
	_, err = Parse("12345")
	assert.Error(t, err)
}

func TestAtIndexesLetters(t *testing.T) {
	w := MustParse("apple")
	assert.Equal(t, byte('a'), w.At(0))
	assert.Equal(t, byte('p'), w.At(1))
	assert.Equal(t, byte('e'), w.At(4))
}

func TestParseAllFailsFast(t *testing.T) {
	ws, err := ParseAll([]string{"apple", "prime"})
	require.NoError(t, err)
	assert.Equal(t, []Word{"apple", "prime"}, ws)

	_, err = ParseAll([]string{"apple", "nope"})
	assert.Error(t, err)
}

func TestLoadSkipsInvalidAndDeduplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.txt")
	content := "Apple\napple\ncut\nbob's\nprime\nPotato\nsauté\nprime\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ws, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []Word{"apple", "prime", "saute"}, ws)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	assert.True(t, os.IsNotExist(err))
}
