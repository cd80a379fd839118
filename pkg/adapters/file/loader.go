// Package file provides filesystem adapters: a StateLoader for puzzle input files
// and a JSON-per-entry SolutionStore.
package file

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/puzzler/pkg/domain"
)

// Loader implements ports.StateLoader over a text file.
type Loader struct {
	Path string
}

// NewLoader creates a loader for path.
func NewLoader(path string) *Loader {
	return &Loader{Path: path}
}

// Load reads the file and parses its symbols with ParseValues.
func (l *Loader) Load(ctx context.Context) ([]int, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}
	values, err := ParseValues(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.Path, err)
	}
	return values, nil
}

// ParseValues accepts integers separated by whitespace, commas or brackets
// ("3 1 0 2", "[3, 1, 0, 2]"), or a single run of digits where each digit is one
// symbol ("000000000111111111...", the cube file layout).
func ParseValues(input string) ([]int, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', ',', '[', ']':
			return true
		}
		return false
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no values", domain.ErrMalformedState)
	}

	if len(fields) == 1 && len(fields[0]) > 1 {
		return parseDigits(fields[0])
	}

	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", domain.ErrMalformedState, f)
		}
		values[i] = v
	}
	return values, nil
}

func parseDigits(run string) ([]int, error) {
	values := make([]int, len(run))
	for i, r := range run {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: %q is not a digit", domain.ErrMalformedState, r)
		}
		values[i] = int(r - '0')
	}
	return values, nil
}
