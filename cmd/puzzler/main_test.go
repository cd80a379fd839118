package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/puzzler/internal/config"
	"github.com/aretw0/puzzler/pkg/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default; cobra keeps parsed values
// between executions of the same command tree.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the CLI with a config file written to a temp dir.
func run(t *testing.T, configYAML, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	path := filepath.Join(t.TempDir(), "puzzler.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configYAML), 0o644))

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--config", path}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSolveCommand(t *testing.T) {
	out, err := run(t, "store:\n  driver: none\n", "", "solve", "pancake", "3", "1", "0", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "status:   found")
	assert.Contains(t, out, "moves:    4 3 2")
}

func TestSolveCommand_JSON(t *testing.T) {
	out, err := run(t, "", "", "solve", "pancake", "3102", "--json")
	require.NoError(t, err)

	var solution domain.Solution
	require.NoError(t, json.Unmarshal([]byte(out), &solution))
	assert.Equal(t, []string{"4", "3", "2"}, solution.Moves)
	assert.Equal(t, []int{3, 1, 0, 2}, solution.Start)
}

func TestSolveCommand_File(t *testing.T) {
	state := filepath.Join(t.TempDir(), "stack.txt")
	require.NoError(t, os.WriteFile(state, []byte("[1, 0]\n"), 0o644))

	out, err := run(t, "", "", "solve", "pancake", "--file", state, "--mermaid")
	require.NoError(t, err)
	assert.Contains(t, out, "moves:    2")
	assert.Contains(t, out, "graph LR")
}

func TestSolveCommand_Exhausted(t *testing.T) {
	_, err := run(t, "search:\n  max_expansions: 1\n", "", "solve", "pancake", "3", "1", "0", "2")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExhausted)
	assert.Equal(t, exitNoSolution, exitCode(err))
}

func TestSolveCommand_FileStoreCaches(t *testing.T) {
	dir := t.TempDir()
	cfg := "store:\n  driver: file\n  dir: " + dir + "\n"

	_, err := run(t, cfg, "", "solve", "pancake", "1", "0")
	require.NoError(t, err)

	out, err := run(t, cfg, "", "solve", "pancake", "1", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "cached:   yes")

	out, err = run(t, cfg, "", "cache", "ls")
	require.NoError(t, err)
	assert.Equal(t, "pancake:1.0\n", out)

	out, err = run(t, cfg, "", "cache", "show", "pancake:1.0")
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "found"`)

	out, err = run(t, cfg, "", "cache", "rm", "pancake:1.0")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed pancake:1.0")

	out, err = run(t, cfg, "", "cache", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "No cached solutions found.")
}

func TestCacheCommand_NoStore(t *testing.T) {
	_, err := run(t, "store:\n  driver: none\n", "", "cache", "ls")
	assert.Error(t, err)
}

func TestApplyAndCostCommands(t *testing.T) {
	out, err := run(t, "", "", "apply", "pancake", "3", "1", "0", "2", "--moves", "4,3,2")
	require.NoError(t, err)
	assert.Equal(t, "0 1 2 3\n", out)

	_, err = run(t, "", "", "apply", "pancake", "1", "0", "-m", "9")
	assert.ErrorIs(t, err, domain.ErrInvalidAction)

	out, err = run(t, "", "", "cost", "pancake", "3", "1", "0", "2")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestScrambleCommand(t *testing.T) {
	first, err := run(t, "", "", "scramble", "pancake", "--size", "5", "--seed", "42")
	require.NoError(t, err)
	second, err := run(t, "", "", "scramble", "pancake", "--size", "5", "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, strings.Fields(first), 5)

	out, err := run(t, "", "", "scramble", "cube", "--length", "0", "--seed", "1")
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out), 54)

	_, err = run(t, "", "", "scramble", "hanoi")
	assert.ErrorIs(t, err, domain.ErrUnknownPuzzle)
}

func TestPlayCommand_Headless(t *testing.T) {
	out, err := run(t, "play:\n  interval: 0s\n", "2\nstate\nquit\n", "play", "pancake", "1", "0", "--headless")
	require.NoError(t, err)
	assert.Contains(t, out, "0 1")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "puzzler version "))
}

func TestInvalidConfig(t *testing.T) {
	_, err := run(t, "store:\n  driver: postgres\n", "", "version")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestOpenStore_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.Default().Store
	cfg.Driver = config.DriverRedis
	cfg.Redis.Addr = mr.Addr()

	b, err := openStore(cfg)
	require.NoError(t, err)
	defer b.close()

	assert.NotNil(t, b.store)
	assert.NotNil(t, b.locker)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitNoSolution, exitCode(domain.ErrNotFound))
	assert.Equal(t, exitTimeout, exitCode(domain.StatusTimeout.Err()))
	assert.Equal(t, exitError, exitCode(domain.ErrMalformedState))
}
