package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/puzzler/internal/config"
	"github.com/aretw0/puzzler/pkg/domain"
	"github.com/spf13/cobra"
)

// Exit codes beyond the generic failure.
const (
	exitError      = 1
	exitNoSolution = 2
	exitTimeout    = 3
)

var rootCmd = &cobra.Command{
	Use:   "puzzler",
	Short: "Puzzler solves pancake stacks and 3x3 cubes by heuristic search",
	Long: `Puzzler searches for a sequence of moves that takes a pancake stack or a 3x3 cube
to its solved configuration, and can replay the path in the terminal.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().String("log-level", "", "Override log_level (debug, info, warn, error)")
}

// exitCode maps search outcomes to distinct process exit codes.
func exitCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrExhausted):
		return exitNoSolution
	case errors.Is(err, domain.ErrTimeout):
		return exitTimeout
	default:
		return exitError
	}
}
