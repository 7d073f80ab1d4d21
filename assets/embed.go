// assets/embed.go
//
// Embedded fallback word list, used when no dictionary file is configured
// and the default system dictionary is missing. Small on purpose; real use
// should point --dictionary at a full word list.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed words.txt
var fs embed.FS

// DefaultWords returns the embedded fallback word list, one raw line per
// entry. Lines are trimmed and lowercased here; validation happens in the
// words package.
func DefaultWords() ([]string, error) {
	f, err := fs.Open("words.txt")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}
