package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MeGrimlock/nigma/freq"
)

// newAnalyzeCmd builds the analyze command: frequency tables plus the
// chi-squared distance to a reference language distribution.
func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Frequency-analyze a text and score it against a language reference",
		Example: `  nigma analyze "WKH TXLFN EURZQ IRA"
  nigma analyze --ngram 2 "digraph statistics"
  nigma analyze --reference spanish.yaml "texto cifrado"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			n, _ := cmd.Flags().GetInt("ngram")
			refPath, _ := cmd.Flags().GetString("reference")

			observed, err := observe(text, n)
			if err != nil {
				return err
			}

			for _, k := range sortedKeys(observed) {
				cmd.Printf("%s\t%6.2f%%\n", k, observed[k])
			}

			// n-gram references are caller-supplied; the embedded table
			// only covers single letters.
			if n <= 1 || refPath != "" {
				expected, err := reference(refPath)
				if err != nil {
					return err
				}
				cmd.Printf("chi-squared\t%.4f\n", freq.ChiSquared(observed, expected))
			}

			return nil
		},
	}
	cmd.Flags().IntP("ngram", "n", 1, "n-gram width (1 = single letters)")
	cmd.Flags().StringP("reference", "r", "", "YAML reference table (default: embedded English letters)")

	return cmd
}

// observe builds the requested distribution.
func observe(text string, n int) (map[string]float64, error) {
	if n <= 1 {
		return freq.LetterFrequencies(text), nil
	}

	return freq.NgramFrequencies(text, n)
}

// reference loads the expected distribution, defaulting to English.
func reference(path string) (map[string]float64, error) {
	if path == "" {
		return freq.English, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reference: %w", err)
	}
	defer f.Close()

	return freq.LoadReference(f)
}

// sortedKeys keeps the table output stable.
func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
