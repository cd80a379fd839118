package puzzler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/puzzler/internal/logging"
	"github.com/aretw0/puzzler/internal/runtime"
	"github.com/aretw0/puzzler/pkg/cube"
	"github.com/aretw0/puzzler/pkg/domain"
	"github.com/aretw0/puzzler/pkg/pancake"
	"github.com/aretw0/puzzler/pkg/ports"
)

// Version is the library and CLI release.
const Version = "0.3.0"

// Solver is the high-level entry point: it validates inputs, runs the search engine
// for the requested puzzle, and optionally caches finished solutions.
// A Solver holds only configuration and concurrency-safe collaborators, so it is
// safe for concurrent use.
type Solver struct {
	logger        *slog.Logger
	hooks         domain.SearchHooks
	maxExpansions int
	timeout       time.Duration
	store         ports.SolutionStore
	locker        ports.DistributedLocker
	lockTTL       time.Duration
}

// Option defines a functional option for configuring the Solver.
type Option func(*Solver)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Solver) {
		s.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks on every search.
func WithLifecycleHooks(hooks domain.SearchHooks) Option {
	return func(s *Solver) {
		s.hooks = s.hooks.Merge(hooks)
	}
}

// WithMaxExpansions bounds every search. Zero means unbounded.
func WithMaxExpansions(n int) Option {
	return func(s *Solver) {
		s.maxExpansions = n
	}
}

// WithTimeout bounds the wall time of every search. Zero means no limit beyond ctx.
func WithTimeout(d time.Duration) Option {
	return func(s *Solver) {
		s.timeout = d
	}
}

// WithStore caches found solutions by puzzle and start state.
func WithStore(store ports.SolutionStore) Option {
	return func(s *Solver) {
		s.store = store
	}
}

// WithLocker serializes solves of the same start state. The lock is released after
// the solution is stored, or when ttl expires.
func WithLocker(locker ports.DistributedLocker, ttl time.Duration) Option {
	return func(s *Solver) {
		s.locker = locker
		s.lockTTL = ttl
	}
}

// New creates a Solver.
func New(opts ...Option) *Solver {
	s := &Solver{lockTTL: time.Minute}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	return s
}

// Puzzles lists the supported puzzle names.
func Puzzles() []string {
	return []string{pancake.Name, cube.Name}
}

func (s *Solver) engineOptions(name string, extra ...runtime.EngineOption) []runtime.EngineOption {
	opts := []runtime.EngineOption{
		runtime.WithLogger(s.logger),
		runtime.WithLifecycleHooks(s.hooks),
		runtime.WithMaxExpansions(s.maxExpansions),
		runtime.WithPuzzleName(name),
	}
	return append(opts, extra...)
}

func (s *Solver) searchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(ctx, s.timeout)
	}
	return context.WithCancel(ctx)
}

// SolvePancakes runs greedy best-first search on a pancake stack.
func (s *Solver) SolvePancakes(ctx context.Context, values []int) (domain.Result[pancake.Flip], error) {
	start, err := pancake.New(values)
	if err != nil {
		return domain.Result[pancake.Flip]{}, err
	}
	ctx, cancel := s.searchContext(ctx)
	defer cancel()

	engine := runtime.NewEngine[pancake.Stack, pancake.Flip](pancake.Problem{}, s.engineOptions(pancake.Name)...)
	return engine.Search(ctx, start)
}

// SolveCube runs A* (moves so far + misplaced/6) on a cube state.
// The heuristic is not admissible, so the path is not guaranteed shortest.
func (s *Solver) SolveCube(ctx context.Context, values []int) (domain.Result[cube.Move], error) {
	start, err := cube.New(values)
	if err != nil {
		return domain.Result[cube.Move]{}, err
	}
	ctx, cancel := s.searchContext(ctx)
	defer cancel()

	engine := runtime.NewEngine[cube.State, cube.Move](cube.Problem{},
		s.engineOptions(cube.Name, runtime.WithAdmission(runtime.AdmitImproved))...)
	return engine.Search(ctx, start)
}

// Solve runs the search for the named puzzle and returns its serializable record.
//
// NotFound, Exhausted and Timeout are reported through Solution.Status with a nil
// error; use Status.Err to turn them into sentinels. Found solutions are cached when a
// store is configured, and a cached entry is returned with Cached set.
func (s *Solver) Solve(ctx context.Context, puzzle string, values []int) (*domain.Solution, error) {
	b, err := lookup(puzzle)
	if err != nil {
		return nil, err
	}
	if err := b.validate(values); err != nil {
		return nil, err
	}

	key := domain.SolutionKey(puzzle, values)
	if cached := s.cached(ctx, key); cached != nil {
		return cached, nil
	}

	if s.locker != nil {
		unlock, err := s.locker.Lock(ctx, key, s.lockTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to lock %s: %w", key, err)
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				s.logger.Warn("failed to release lock", "key", key, "error", err)
			}
		}()

		// Another holder may have finished while we waited
		if cached := s.cached(ctx, key); cached != nil {
			return cached, nil
		}
	}

	solution, err := b.solve(ctx, s, values)
	if err != nil {
		return nil, err
	}
	solution.Puzzle = puzzle
	solution.Start = append([]int(nil), values...)
	solution.SolvedAt = time.Now().UTC()

	if s.store != nil && solution.Status == domain.StatusFound {
		if err := s.store.Save(ctx, key, solution); err != nil {
			s.logger.Warn("failed to cache solution", "key", key, "error", err)
		}
	}
	return solution, nil
}

func (s *Solver) cached(ctx context.Context, key string) *domain.Solution {
	if s.store == nil {
		return nil
	}
	solution, err := s.store.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrResultNotFound) {
			s.logger.Warn("failed to read cached solution", "key", key, "error", err)
		}
		return nil
	}
	solution.Cached = true
	return solution
}

// Apply parses moves in the puzzle's notation and applies them in order.
// It returns the resulting symbols; the input slice is not modified.
func (s *Solver) Apply(puzzle string, values []int, moves []string) ([]int, error) {
	b, err := lookup(puzzle)
	if err != nil {
		return nil, err
	}
	out, _, err := applyMoves(b, values, moves)
	return out, err
}

// Cost evaluates the puzzle's priority function for values reached after depth moves.
// For the pancake stack depth is ignored.
func (s *Solver) Cost(puzzle string, values []int, depth int) (float64, error) {
	b, err := lookup(puzzle)
	if err != nil {
		return 0, err
	}
	if depth < 0 {
		return 0, fmt.Errorf("depth must be >= 0, got %d", depth)
	}
	return b.cost(values, depth)
}

// Normalize parses moves and returns them in canonical notation, rejecting any
// that are illegal for values.
func (s *Solver) Normalize(puzzle string, values []int, moves []string) ([]string, error) {
	b, err := lookup(puzzle)
	if err != nil {
		return nil, err
	}
	_, canonical, err := applyMoves(b, values, moves)
	return canonical, err
}
