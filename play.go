package puzzler

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/puzzler/pkg/domain"
	"github.com/aretw0/puzzler/pkg/ports"
)

// Play renders values, then applies moves one at a time and renders each result,
// pausing interval between frames. It stops early when ctx is done or the renderer fails.
// It returns the final symbols.
func (s *Solver) Play(ctx context.Context, puzzle string, values []int, moves []string, r ports.Renderer, interval time.Duration) ([]int, error) {
	b, err := lookup(puzzle)
	if err != nil {
		return nil, err
	}
	if err := b.validate(values); err != nil {
		return nil, err
	}

	current := append([]int(nil), values...)
	frame := domain.Frame{Puzzle: puzzle, Total: len(moves), State: current}
	if err := r.Render(ctx, frame); err != nil {
		return nil, fmt.Errorf("render initial frame: %w", err)
	}

	for i, mv := range moves {
		if err := wait(ctx, interval); err != nil {
			return current, err
		}

		next, canonical, err := b.step(current, mv)
		if err != nil {
			return current, fmt.Errorf("move %d: %w", i+1, err)
		}
		current = next

		frame = domain.Frame{
			Puzzle: puzzle,
			Step:   i + 1,
			Total:  len(moves),
			Move:   canonical,
			State:  append([]int(nil), current...),
		}
		if err := r.Render(ctx, frame); err != nil {
			return current, fmt.Errorf("render step %d: %w", i+1, err)
		}
	}
	return current, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
