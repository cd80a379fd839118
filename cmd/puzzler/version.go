package main

import (
	"fmt"

	"github.com/aretw0/puzzler"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of puzzler",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "puzzler version %s\n", puzzler.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
