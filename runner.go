package puzzler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aretw0/puzzler/pkg/domain"
	"github.com/aretw0/puzzler/pkg/ports"
)

// Runner drives a Board from line-oriented input, one command per line.
// This allows for easy testing and integration with different frontends.
//
// Commands: any move token (applied in order, several per line), "undo", "reset",
// "solve" (search and play the path), "cost", "state", "help", "quit".
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Renderer ports.Renderer
	Interval time.Duration
	Headless bool
}

// Run executes the loop until quit or EOF.
func (r *Runner) Run(ctx context.Context, board *Board) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}
	if r.Renderer == nil {
		return fmt.Errorf("renderer must be set")
	}

	lines := bufio.NewReader(r.Input)
	if err := r.show(ctx, board, ""); err != nil {
		return err
	}

	for {
		if !r.Headless {
			fmt.Fprint(r.Output, "> ")
		}
		text, err := lines.ReadString('\n')
		eof := errors.Is(err, io.EOF)
		if err != nil && !eof {
			return fmt.Errorf("input error: %w", err)
		}
		if eof && text == "" {
			return nil
		}

		input := strings.TrimSpace(text)
		done, cmdErr := r.dispatch(ctx, board, input)
		if cmdErr != nil {
			if !isUserError(cmdErr) {
				return cmdErr
			}
			fmt.Fprintf(r.Output, "error: %v\n", cmdErr)
		}
		if done || eof {
			return nil
		}
	}
}

func (r *Runner) dispatch(ctx context.Context, board *Board, input string) (bool, error) {
	switch strings.ToLower(input) {
	case "":
		return false, nil
	case "quit", "exit", "q":
		fmt.Fprintln(r.Output, "Bye!")
		return true, nil
	case "help", "?":
		fmt.Fprintln(r.Output, "moves | undo | reset | solve | cost | state | quit")
		return false, nil
	case "undo":
		if !board.Undo() {
			fmt.Fprintln(r.Output, "nothing to undo")
			return false, nil
		}
		return false, r.show(ctx, board, "undo")
	case "reset":
		board.Reset()
		return false, r.show(ctx, board, "reset")
	case "cost":
		c, err := board.Cost()
		if err != nil {
			return false, err
		}
		fmt.Fprintf(r.Output, "cost: %g\n", c)
		return false, nil
	case "state":
		fmt.Fprintln(r.Output, formatValues(board.State()))
		return false, nil
	case "solve":
		solution, err := board.Play(ctx, r.Renderer, r.Interval)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(r.Output, "%s after %d expansions: %s\n",
			solution.Status, solution.NodesExpanded, strings.Join(solution.Moves, " "))
		return false, nil
	}

	tokens := splitMoves(input)
	if err := board.Apply(tokens...); err != nil {
		return false, err
	}
	return false, r.show(ctx, board, strings.Join(tokens, " "))
}

func (r *Runner) show(ctx context.Context, board *Board, move string) error {
	moves := board.Moves()
	return r.Renderer.Render(ctx, domain.Frame{
		Puzzle: board.Puzzle(),
		Step:   len(moves),
		Total:  len(moves),
		Move:   move,
		State:  board.State(),
	})
}

// splitMoves splits a line into move tokens, keeping a trailing direction word
// with its face ("U CCW R" is two moves).
func splitMoves(input string) []string {
	var tokens []string
	for _, f := range strings.Fields(input) {
		switch strings.ToUpper(f) {
		case "CW", "CCW":
			if n := len(tokens); n > 0 {
				tokens[n-1] += " " + f
				continue
			}
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// User errors are reported and the loop continues; anything else aborts it.
func isUserError(err error) bool {
	return errors.Is(err, domain.ErrInvalidAction) ||
		errors.Is(err, domain.ErrMalformedState) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrExhausted)
}

func formatValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
