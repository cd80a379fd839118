package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aretw0/puzzler/internal/config"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage cached solutions",
	Long: `List, inspect, and remove solutions kept by the configured store.
The memory driver lives only as long as one process, so use file or redis here.`,
}

var cacheLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List cached solution keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := cacheStore()
		if err != nil {
			return err
		}
		defer b.close()

		keys, err := b.store.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing solutions: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(keys) == 0 {
			fmt.Fprintln(out, "No cached solutions found.")
			return nil
		}
		for _, k := range keys {
			fmt.Fprintln(out, k)
		}
		return nil
	},
}

var cacheShowCmd = &cobra.Command{
	Use:   "show <key>",
	Short: "Print a cached solution as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := cacheStore()
		if err != nil {
			return err
		}
		defer b.close()

		solution, err := b.store.Load(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("loading %q: %w", args[0], err)
		}
		data, err := json.MarshalIndent(solution, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var cacheRmCmd = &cobra.Command{
	Use:   "rm <key>...",
	Short: "Remove one or more cached solutions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := cacheStore()
		if err != nil {
			return err
		}
		defer b.close()

		var errs []error
		for _, key := range args {
			if err := b.store.Delete(cmd.Context(), key); err != nil {
				errs = append(errs, fmt.Errorf("removing %q: %w", key, err))
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", key)
		}
		return errors.Join(errs...)
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheLsCmd)
	cacheCmd.AddCommand(cacheShowCmd)
	cacheCmd.AddCommand(cacheRmCmd)
}

func cacheStore() (backend, error) {
	b, err := openStore(app.cfg.Store)
	if err != nil {
		return b, err
	}
	if b.store == nil {
		return b, fmt.Errorf("no solution store configured (store.driver is %q)", config.DriverNone)
	}
	return b, nil
}
