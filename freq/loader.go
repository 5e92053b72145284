package freq

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyReference indicates a reference table with no entries.
var ErrEmptyReference = errors.New("freq: reference table is empty")

// LoadReference reads a reference frequency table from YAML: a flat
// mapping of symbol or n-gram to percentage, e.g.
//
//	E: 12.702
//	T: 9.056
//	TH: 3.56
//
// Keys are upper-cased so loaded tables pair with the analyzer's
// output. The table is opaque input data: no further validation
// beyond non-emptiness is applied.
func LoadReference(r io.Reader) (map[string]float64, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("freq: read reference: %w", err)
	}

	var table map[string]float64
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("freq: parse reference: %w", err)
	}
	if len(table) == 0 {
		return nil, ErrEmptyReference
	}

	out := make(map[string]float64, len(table))
	for k, v := range table {
		out[strings.ToUpper(k)] = v
	}

	return out, nil
}
