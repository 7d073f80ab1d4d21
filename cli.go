// cli.go
//
// Subcommand surface for the wools binary.
// Responsibilities:
//   - Root command + persistent --dictionary flag (WOOLS_DICTIONARY env).
//   - filter: keep words consistent with a known solution and guesses.
//   - solve:  keep words consistent with GUESS=HINTS clues (no solution).
//   - match:  find words that produce one exact hint sequence.
//   - dict:   print the valid, normalized dictionary words.
//   - open:   open the Wordle page in the default browser.
//   - serve:  expose the same operations over HTTP.
//
// Hint strings use one symbol per letter: g=correct, y=present, b=absent,
// case-insensitive (e.g. "poser=bgbgg").

package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/woolsdev/wools/assets"
	"github.com/woolsdev/wools/internal/httpserver"
	"github.com/woolsdev/wools/internal/pattern"
	"github.com/woolsdev/wools/internal/solver"
	"github.com/woolsdev/wools/internal/words"
)

const (
	defaultDictionary = "/usr/share/dict/american-english"
	defaultWordleURL  = "https://www.nytimes.com/games/wordle/index.html"
)

func newRootCmd() *cobra.Command {
	var dictPath string

	root := &cobra.Command{
		Use:           "wools",
		Short:         "Evaluate Wordle guesses and filter candidate words",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&dictPath, "dictionary", "d",
		getEnv("WOOLS_DICTIONARY", defaultDictionary), "path to the dictionary file")

	root.AddCommand(
		newFilterCmd(&dictPath),
		newSolveCmd(&dictPath),
		newMatchCmd(&dictPath),
		newDictCmd(&dictPath),
		newOpenCmd(),
		newServeCmd(&dictPath),
	)
	return root
}

func newFilterCmd(dictPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "filter SOLUTION GUESS...",
		Short: "List words consistent with the guesses' feedback against the solution",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := loadDictionary(*dictPath)
			if err != nil {
				return err
			}
			solution, err := words.Parse(args[0])
			if err != nil {
				return err
			}
			guesses, err := words.ParseAll(args[1:])
			if err != nil {
				return err
			}
			printWords(solver.Filter(dict, solution, guesses))
			return nil
		},
	}
}

func newSolveCmd(dictPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "solve GUESS=HINTS...",
		Short: "List words consistent with reported clues, without knowing the solution",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := loadDictionary(*dictPath)
			if err != nil {
				return err
			}
			clues := make([]solver.Clue, 0, len(args))
			for _, tok := range args {
				clue, err := solver.ParseClue(tok)
				if err != nil {
					return err
				}
				clues = append(clues, clue)
			}
			out, err := solver.Solve(dict, clues)
			if err != nil {
				return err
			}
			printWords(out)
			return nil
		},
	}
}

func newMatchCmd(dictPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "match SOLUTION HINTS",
		Short: "List words that would produce exactly these hints against the solution",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := loadDictionary(*dictPath)
			if err != nil {
				return err
			}
			solution, err := words.Parse(args[0])
			if err != nil {
				return err
			}
			hints, err := pattern.ParseHints(args[1])
			if err != nil {
				return err
			}
			printWords(solver.Match(dict, solution, hints))
			return nil
		},
	}
}

func newDictCmd(dictPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "dict",
		Short: "Print the valid, normalized words of the dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := loadDictionary(*dictPath)
			if err != nil {
				return err
			}
			printWords(dict)
			return nil
		},
	}
}

func newOpenCmd() *cobra.Command {
	var url string
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open Wordle in the default browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return openURL(url)
		},
	}
	cmd.Flags().StringVarP(&url, "url", "u", defaultWordleURL, "URL to open")
	return cmd
}

func newServeCmd(dictPath *string) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the filter/solve/match operations over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := loadDictionary(*dictPath)
			if err != nil {
				return err
			}
			return httpserver.New(dict).Start(":" + port)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", getEnv("PORT", "5175"), "port to listen on")
	return cmd
}

// loadDictionary reads the configured dictionary file, falling back to the
// embedded list when the file does not exist.
func loadDictionary(path string) ([]words.Word, error) {
	dict, err := words.Load(path)
	if err == nil {
		return dict, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}
	log.Warn().Str("path", path).Msg("dictionary not found, using embedded fallback list")
	raw, err := assets.DefaultWords()
	if err != nil {
		return nil, err
	}
	return words.ParseAll(raw)
}

func printWords(ws []words.Word) {
	for _, w := range ws {
		fmt.Println(w)
	}
}

// openURL launches the platform browser opener for the URL.
func openURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	out, err := cmd.CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("open %s: %s", url, msg)
		}
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}
