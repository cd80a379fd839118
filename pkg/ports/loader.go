package ports

import "context"

// StateLoader supplies the initial symbols of a puzzle.
// It does not validate them; pancake.New and cube.New do.
type StateLoader interface {
	Load(ctx context.Context) ([]int, error)
}

// StaticLoader returns a fixed list of symbols.
type StaticLoader []int

// Load returns a copy of the list.
func (l StaticLoader) Load(context.Context) ([]int, error) {
	return append([]int(nil), l...), nil
}
