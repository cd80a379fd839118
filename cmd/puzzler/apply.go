package main

import (
	"fmt"

	"github.com/aretw0/puzzler"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply <pancake|cube> [values...] --moves m1,m2,...",
	Short: "Apply moves to a state and print the result",
	Example: `  puzzler apply pancake 3 1 0 2 --moves 4,3,2
  puzzler apply cube -f solved.txt -m "U,Shift+F"`,
	Args:      cobra.MinimumNArgs(1),
	ValidArgs: puzzler.Puzzles(),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := readValues(cmd, args[1:])
		if err != nil {
			return err
		}
		moves, _ := cmd.Flags().GetStringSlice("moves")

		final, err := puzzler.New(puzzler.WithLogger(app.logger)).Apply(args[0], values, moves)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatValues(final))
		return nil
	},
}

var costCmd = &cobra.Command{
	Use:       "cost <pancake|cube> [values...]",
	Short:     "Print the heuristic cost of a state",
	Args:      cobra.MinimumNArgs(1),
	ValidArgs: puzzler.Puzzles(),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := readValues(cmd, args[1:])
		if err != nil {
			return err
		}
		depth, _ := cmd.Flags().GetInt("depth")

		c, err := puzzler.New(puzzler.WithLogger(app.logger)).Cost(args[0], values, depth)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%g\n", c)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(costCmd)

	applyCmd.Flags().StringP("file", "f", "", "Read the state from a file")
	applyCmd.Flags().StringSliceP("moves", "m", nil, "Moves to apply, in order")
	costCmd.Flags().StringP("file", "f", "", "Read the state from a file")
	costCmd.Flags().Int("depth", 0, "Moves already taken (g)")
}
