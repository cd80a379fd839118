package puzzler

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/puzzler/pkg/domain"
	"github.com/aretw0/puzzler/pkg/ports"
)

// Board is an interactive puzzle session: the state the user manipulates, with
// undo history and a reset point. It is not safe for concurrent use.
type Board struct {
	solver  *Solver
	puzzle  string
	initial []int
	current []int
	history [][]int
	moves   []string
}

// NewBoard validates values and starts a session on them.
func (s *Solver) NewBoard(puzzle string, values []int) (*Board, error) {
	b, err := lookup(puzzle)
	if err != nil {
		return nil, err
	}
	if err := b.validate(values); err != nil {
		return nil, err
	}
	return &Board{
		solver:  s,
		puzzle:  puzzle,
		initial: append([]int(nil), values...),
		current: append([]int(nil), values...),
	}, nil
}

// Puzzle returns the puzzle name.
func (b *Board) Puzzle() string {
	return b.puzzle
}

// State returns a copy of the current symbols.
func (b *Board) State() []int {
	return append([]int(nil), b.current...)
}

// Moves returns the applied moves since the last reset, in canonical notation.
func (b *Board) Moves() []string {
	return append([]string(nil), b.moves...)
}

// Apply applies moves in order. Either all of them are applied or none is.
// Each move is one undo step.
func (b *Board) Apply(moves ...string) error {
	binding, _ := lookup(b.puzzle)

	states := make([][]int, 0, len(moves))
	canonical := make([]string, 0, len(moves))
	current := b.current
	for i, mv := range moves {
		next, c, err := binding.step(current, mv)
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		states = append(states, next)
		canonical = append(canonical, c)
		current = next
	}

	for i := range states {
		b.history = append(b.history, b.current)
		b.current = states[i]
		b.moves = append(b.moves, canonical[i])
	}
	return nil
}

// Undo reverts the last applied move. It reports false when there is nothing to undo.
func (b *Board) Undo() bool {
	if len(b.history) == 0 {
		return false
	}
	last := len(b.history) - 1
	b.current = b.history[last]
	b.history = b.history[:last]
	b.moves = b.moves[:len(b.moves)-1]
	return true
}

// Reset returns to the initial state and clears history.
func (b *Board) Reset() {
	b.current = append([]int(nil), b.initial...)
	b.history = nil
	b.moves = nil
}

// Cost evaluates the current state at the depth of the applied moves.
func (b *Board) Cost() (float64, error) {
	return b.solver.Cost(b.puzzle, b.current, len(b.moves))
}

// IsSolved reports whether the current state is the goal.
func (b *Board) IsSolved() bool {
	h, err := b.solver.Cost(b.puzzle, b.current, 0)
	return err == nil && h == 0
}

// Solve searches from the current state without changing it.
func (b *Board) Solve(ctx context.Context) (*domain.Solution, error) {
	return b.solver.Solve(ctx, b.puzzle, b.current)
}

// Play solves from the current state and, when a path is found, renders it step by
// step and applies it to the board. Partial playback (cancellation, render failure)
// leaves the board at the last rendered step.
func (b *Board) Play(ctx context.Context, r ports.Renderer, interval time.Duration) (*domain.Solution, error) {
	solution, err := b.Solve(ctx)
	if err != nil || solution.Status != domain.StatusFound {
		return solution, err
	}

	applied := 0
	counting := ports.RendererFunc(func(ctx context.Context, f domain.Frame) error {
		if err := r.Render(ctx, f); err != nil {
			return err
		}
		applied = f.Step
		return nil
	})

	_, playErr := b.solver.Play(ctx, b.puzzle, b.current, solution.Moves, counting, interval)
	if err := b.Apply(solution.Moves[:applied]...); err != nil {
		return solution, err
	}
	return solution, playErr
}
