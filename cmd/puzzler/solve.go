package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/puzzler"
	"github.com/aretw0/puzzler/internal/presentation/graph"
	"github.com/aretw0/puzzler/internal/presentation/tui"
	"github.com/aretw0/puzzler/pkg/adapters/term"
	"github.com/aretw0/puzzler/pkg/domain"
	"github.com/aretw0/puzzler/pkg/ports"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve <pancake|cube> [values...]",
	Short: "Search for a path to the solved configuration",
	Long: `Searches from the given state and prints the moves that solve it.
Values may be separated by spaces or commas, or given as one digit run ("3102").`,
	Example: `  puzzler solve pancake 3 1 0 2
  puzzler solve cube --file scrambled.txt --play`,
	Args:      cobra.MinimumNArgs(1),
	ValidArgs: puzzler.Puzzles(),
	RunE:      runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringP("file", "f", "", "Read the start state from a file")
	solveCmd.Flags().Bool("play", false, "Replay the solution in the terminal")
	solveCmd.Flags().Bool("report", false, "Print a Markdown report of the search")
	solveCmd.Flags().Bool("mermaid", false, "Print the solution path as a Mermaid diagram")
	solveCmd.Flags().Bool("json", false, "Print the solution as JSON")
}

func runSolve(cmd *cobra.Command, args []string) error {
	puzzle := args[0]
	values, err := readValues(cmd, args[1:])
	if err != nil {
		return err
	}

	solver, closeStore, err := newSolver(nil)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx := cmd.Context()
	solution, err := solver.Solve(ctx, puzzle, values)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	asJSON, _ := cmd.Flags().GetBool("json")
	report, _ := cmd.Flags().GetBool("report")
	mermaid, _ := cmd.Flags().GetBool("mermaid")
	play, _ := cmd.Flags().GetBool("play")

	var frames []domain.Frame
	if (report || mermaid) && solution.Status == domain.StatusFound {
		frames, err = collectFrames(ctx, solver, solution)
		if err != nil {
			return err
		}
	}

	switch {
	case asJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(solution); err != nil {
			return err
		}
	case report:
		render := tui.NewRenderer(isTerminal(os.Stdout))
		text, err := render(tui.Report(solution, frames))
		if err != nil {
			app.logger.Warn("report rendering failed, printing markdown", "error", err)
		}
		fmt.Fprint(out, text)
	default:
		printSolution(cmd, solution)
	}

	if mermaid && !report && len(frames) > 0 {
		fmt.Fprint(out, graph.GenerateMermaid(frames, nil))
	}

	if play && solution.Status == domain.StatusFound {
		tty := isTerminal(os.Stdout)
		r := term.New(out, term.WithClear(tty))
		if _, err := solver.Play(ctx, puzzle, values, solution.Moves, r, app.cfg.Play.Interval); err != nil {
			return err
		}
	}

	return solution.Status.Err()
}

// collectFrames replays a found solution without pauses and keeps every frame.
func collectFrames(ctx context.Context, solver *puzzler.Solver, solution *domain.Solution) ([]domain.Frame, error) {
	var frames []domain.Frame
	collect := ports.RendererFunc(func(ctx context.Context, f domain.Frame) error {
		frames = append(frames, f)
		return nil
	})
	if _, err := solver.Play(ctx, solution.Puzzle, solution.Start, solution.Moves, collect, 0); err != nil {
		return nil, err
	}
	return frames, nil
}

func printSolution(cmd *cobra.Command, s *domain.Solution) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "status:   %s\n", s.Status)
	if s.Status == domain.StatusFound {
		fmt.Fprintf(out, "moves:    %s\n", strings.Join(s.Moves, " "))
		fmt.Fprintf(out, "length:   %d\n", len(s.Moves))
	}
	fmt.Fprintf(out, "expanded: %d\n", s.NodesExpanded)
	fmt.Fprintf(out, "duration: %s\n", s.Duration)
	if s.Cached {
		fmt.Fprintln(out, "cached:   yes")
	}
}
