package puzzler

import (
	"context"
	"fmt"

	"github.com/aretw0/puzzler/pkg/cube"
	"github.com/aretw0/puzzler/pkg/domain"
	"github.com/aretw0/puzzler/pkg/pancake"
)

// binding is the string-level view of one puzzle used by the untyped entry points.
type binding interface {
	validate(values []int) error
	solve(ctx context.Context, s *Solver, values []int) (*domain.Solution, error)
	// step applies one move token and returns the symbols and the move in canonical notation.
	step(values []int, tok string) ([]int, string, error)
	cost(values []int, depth int) (float64, error)
}

var bindings = map[string]binding{
	pancake.Name: pancakeBinding{},
	cube.Name:    cubeBinding{},
}

func lookup(puzzle string) (binding, error) {
	b, ok := bindings[puzzle]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPuzzle, puzzle)
	}
	return b, nil
}

// applyMoves validates values, then applies moves in order. Errors name the failing move.
func applyMoves(b binding, values []int, moves []string) ([]int, []string, error) {
	if err := b.validate(values); err != nil {
		return nil, nil, err
	}
	current := append([]int(nil), values...)
	canonical := make([]string, len(moves))
	for i, tok := range moves {
		next, mv, err := b.step(current, tok)
		if err != nil {
			return nil, nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		current, canonical[i] = next, mv
	}
	return current, canonical, nil
}

func toSolution[A fmt.Stringer](r domain.Result[A]) *domain.Solution {
	moves := make([]string, len(r.Path))
	for i, a := range r.Path {
		moves[i] = a.String()
	}
	if r.Status != domain.StatusFound {
		moves = nil
	}
	return &domain.Solution{
		RunID:         r.RunID,
		Status:        r.Status,
		Moves:         moves,
		NodesExpanded: r.NodesExpanded,
		Duration:      r.Duration,
	}
}

type pancakeBinding struct{}

func (pancakeBinding) validate(values []int) error {
	_, err := pancake.New(values)
	return err
}

func (pancakeBinding) solve(ctx context.Context, s *Solver, values []int) (*domain.Solution, error) {
	r, err := s.SolvePancakes(ctx, values)
	if err != nil {
		return nil, err
	}
	return toSolution(r), nil
}

func (pancakeBinding) step(values []int, tok string) ([]int, string, error) {
	stack, err := pancake.New(values)
	if err != nil {
		return nil, "", err
	}
	f, err := pancake.ParseFlip(tok, stack.Len())
	if err != nil {
		return nil, "", err
	}
	if stack, err = stack.Flip(f); err != nil {
		return nil, "", err
	}
	return stack.Values(), f.String(), nil
}

func (pancakeBinding) cost(values []int, _ int) (float64, error) {
	stack, err := pancake.New(values)
	if err != nil {
		return 0, err
	}
	return float64(pancake.Cost(stack)), nil
}

type cubeBinding struct{}

func (cubeBinding) validate(values []int) error {
	_, err := cube.New(values)
	return err
}

func (cubeBinding) solve(ctx context.Context, s *Solver, values []int) (*domain.Solution, error) {
	r, err := s.SolveCube(ctx, values)
	if err != nil {
		return nil, err
	}
	return toSolution(r), nil
}

func (cubeBinding) step(values []int, tok string) ([]int, string, error) {
	state, err := cube.New(values)
	if err != nil {
		return nil, "", err
	}
	m, err := cube.ParseMove(tok)
	if err != nil {
		return nil, "", err
	}
	if state, err = state.Rotate(m); err != nil {
		return nil, "", err
	}
	return state.Values(), m.String(), nil
}

func (cubeBinding) cost(values []int, depth int) (float64, error) {
	state, err := cube.New(values)
	if err != nil {
		return 0, err
	}
	return cube.Cost(state, depth), nil
}
