package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/puzzler"
	"github.com/aretw0/puzzler/internal/config"
	"github.com/aretw0/puzzler/internal/logging"
	"github.com/aretw0/puzzler/pkg/adapters/file"
	"github.com/aretw0/puzzler/pkg/adapters/memory"
	"github.com/aretw0/puzzler/pkg/adapters/redis"
	"github.com/aretw0/puzzler/pkg/observability"
	"github.com/aretw0/puzzler/pkg/ports"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// app is the state shared by subcommands once setup has run.
var app struct {
	cfg    config.Config
	logger *slog.Logger
}

func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	app.cfg = cfg
	app.logger = logging.NewWithWriter(cmd.ErrOrStderr(), level, cfg.LogFormat == "json")
	return nil
}

// backend is the configured solution cache. store is nil for the "none" driver.
type backend struct {
	store  ports.SolutionStore
	locker ports.DistributedLocker
	close  func() error
}

func openStore(cfg config.StoreConfig) (backend, error) {
	nop := func() error { return nil }
	switch cfg.Driver {
	case config.DriverNone:
		return backend{close: nop}, nil
	case config.DriverMemory:
		return backend{store: memory.NewStore(), locker: memory.NewLocker(), close: nop}, nil
	case config.DriverFile:
		return backend{store: file.NewStore(cfg.Dir), locker: memory.NewLocker(), close: nop}, nil
	case config.DriverRedis:
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithPrefix(cfg.Redis.Prefix),
			redis.WithTTL(cfg.Redis.TTL),
		)
		return backend{
			store:  store,
			locker: redis.NewLocker(store.Client(), cfg.Redis.Prefix),
			close:  store.Close,
		}, nil
	default:
		return backend{}, fmt.Errorf("%w: unknown store.driver %q", config.ErrInvalidConfig, cfg.Driver)
	}
}

// newSolver wires the configured budget, cache and hooks. metrics may be nil.
func newSolver(metrics *observability.Metrics) (*puzzler.Solver, func() error, error) {
	cfg := app.cfg
	b, err := openStore(cfg.Store)
	if err != nil {
		return nil, nil, err
	}

	opts := []puzzler.Option{
		puzzler.WithLogger(app.logger),
		puzzler.WithMaxExpansions(cfg.Search.MaxExpansions),
		puzzler.WithTimeout(cfg.Search.Timeout),
		puzzler.WithLifecycleHooks(observability.LogHooks(app.logger)),
	}
	if metrics != nil {
		opts = append(opts, puzzler.WithLifecycleHooks(metrics.Hooks()))
	}
	if b.store != nil {
		opts = append(opts, puzzler.WithStore(b.store))
	}
	if b.locker != nil {
		opts = append(opts, puzzler.WithLocker(b.locker, cfg.Store.LockTTL))
	}
	return puzzler.New(opts...), b.close, nil
}

// readValues takes the state from --file when set, otherwise from the arguments.
func readValues(cmd *cobra.Command, args []string) ([]int, error) {
	path, _ := cmd.Flags().GetString("file")
	var loader ports.StateLoader
	switch {
	case path != "":
		loader = file.NewLoader(path)
	case len(args) > 0:
		values, err := file.ParseValues(strings.Join(args, " "))
		if err != nil {
			return nil, err
		}
		loader = ports.StaticLoader(values)
	default:
		return nil, fmt.Errorf("no state given: pass values as arguments or use --file")
	}
	return loader.Load(cmd.Context())
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func formatValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
