package main

import (
	"os"
	"time"

	"github.com/aretw0/puzzler"
	"github.com/aretw0/puzzler/internal/presentation/tui"
	"github.com/aretw0/puzzler/pkg/adapters/term"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <pancake|cube> [values...]",
	Short: "Play a puzzle interactively",
	Long: `Opens an interactive board. Type moves to apply them, or one of:
undo, reset, cost, state, solve, help, quit.
Without a state, a random one is generated.`,
	Args:      cobra.MinimumNArgs(1),
	ValidArgs: puzzler.Puzzles(),
	RunE: func(cmd *cobra.Command, args []string) error {
		puzzle := args[0]
		headless, _ := cmd.Flags().GetBool("headless")
		tty := !headless && isTerminal(os.Stdin) && isTerminal(os.Stdout)

		values, err := playValues(cmd, puzzle, args[1:])
		if err != nil {
			return err
		}

		solver, closeStore, err := newSolver(nil)
		if err != nil {
			return err
		}
		defer closeStore()

		board, err := solver.NewBoard(puzzle, values)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if tty {
			tui.PrintBanner(out)
		}
		runner := &puzzler.Runner{
			Input:    cmd.InOrStdin(),
			Output:   out,
			Renderer: term.New(out, term.WithClear(tty)),
			Interval: app.cfg.Play.Interval,
			Headless: !tty,
		}
		return runner.Run(cmd.Context(), board)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().StringP("file", "f", "", "Read the start state from a file")
	playCmd.Flags().Bool("headless", false, "No prompts or screen clearing (for piped input)")
	playCmd.Flags().Int("size", 6, "Pancake stack size for a random start")
	playCmd.Flags().Int("length", 8, "Cube quarter turns for a random start")
}

func playValues(cmd *cobra.Command, puzzle string, args []string) ([]int, error) {
	if path, _ := cmd.Flags().GetString("file"); path != "" || len(args) > 0 {
		return readValues(cmd, args)
	}
	size, _ := cmd.Flags().GetInt("size")
	length, _ := cmd.Flags().GetInt("length")
	values, _, err := scramble(puzzle, size, length, time.Now().UnixNano())
	return values, err
}
