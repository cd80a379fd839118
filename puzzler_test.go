package puzzler_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/puzzler"
	"github.com/aretw0/puzzler/pkg/adapters/memory"
	"github.com/aretw0/puzzler/pkg/cube"
	"github.com/aretw0/puzzler/pkg/domain"
	"github.com/aretw0/puzzler/pkg/pancake"
	"github.com/aretw0/puzzler/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_Pancake(t *testing.T) {
	solver := puzzler.New()

	solution, err := solver.Solve(context.Background(), pancake.Name, []int{3, 1, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFound, solution.Status)
	assert.Equal(t, []string{"4", "3", "2"}, solution.Moves)
	assert.Equal(t, pancake.Name, solution.Puzzle)
	assert.Equal(t, []int{3, 1, 0, 2}, solution.Start)
	assert.NotEmpty(t, solution.RunID)
	assert.False(t, solution.SolvedAt.IsZero())
	assert.False(t, solution.Cached)
}

func TestSolve_AlreadySolved(t *testing.T) {
	solver := puzzler.New()

	solution, err := solver.Solve(context.Background(), pancake.Name, []int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFound, solution.Status)
	assert.NotNil(t, solution.Moves)
	assert.Empty(t, solution.Moves)
	assert.Equal(t, 1, solution.NodesExpanded)

	solution, err = solver.Solve(context.Background(), cube.Name, cube.Solved().Values())
	require.NoError(t, err)
	assert.Empty(t, solution.Moves)
}

func TestSolve_Errors(t *testing.T) {
	solver := puzzler.New()
	ctx := context.Background()

	_, err := solver.Solve(ctx, "hanoi", []int{0})
	assert.ErrorIs(t, err, domain.ErrUnknownPuzzle)

	_, err = solver.Solve(ctx, pancake.Name, []int{0, 0})
	assert.ErrorIs(t, err, domain.ErrMalformedState)

	_, err = solver.Solve(ctx, cube.Name, []int{0, 1})
	assert.ErrorIs(t, err, domain.ErrMalformedState)
}

func TestSolve_Budget(t *testing.T) {
	solver := puzzler.New(puzzler.WithMaxExpansions(1))

	solution, err := solver.Solve(context.Background(), pancake.Name, []int{3, 1, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusExhausted, solution.Status)
	assert.Nil(t, solution.Moves)
	assert.ErrorIs(t, solution.Status.Err(), domain.ErrExhausted)
}

func TestSolve_Timeout(t *testing.T) {
	solver := puzzler.New(puzzler.WithTimeout(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	solution, err := solver.Solve(ctx, pancake.Name, []int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTimeout, solution.Status)
}

func TestSolve_CachesFoundSolutions(t *testing.T) {
	store := memory.NewStore()
	solver := puzzler.New(puzzler.WithStore(store))
	ctx := context.Background()

	first, err := solver.Solve(ctx, pancake.Name, []int{3, 1, 0, 2})
	require.NoError(t, err)
	assert.False(t, first.Cached)

	keys, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"pancake:3.1.0.2"}, keys)

	second, err := solver.Solve(ctx, pancake.Name, []int{3, 1, 0, 2})
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.RunID, second.RunID)
	assert.Equal(t, first.Moves, second.Moves)
}

func TestSolve_DoesNotCacheExhausted(t *testing.T) {
	store := memory.NewStore()
	solver := puzzler.New(puzzler.WithStore(store), puzzler.WithMaxExpansions(1))

	_, err := solver.Solve(context.Background(), pancake.Name, []int{3, 1, 0, 2})
	require.NoError(t, err)

	keys, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestSolve_LockedSolvesShareOneSearch(t *testing.T) {
	store := memory.NewStore()
	locker := memory.NewLocker()

	var searches int
	var mu sync.Mutex
	hooks := domain.SearchHooks{
		OnSearchStart: func(context.Context, *domain.SearchEvent) {
			mu.Lock()
			searches++
			mu.Unlock()
		},
	}
	solver := puzzler.New(
		puzzler.WithStore(store),
		puzzler.WithLocker(locker, time.Minute),
		puzzler.WithLifecycleHooks(hooks),
	)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			solution, err := solver.Solve(context.Background(), pancake.Name, []int{4, 2, 0, 3, 1})
			assert.NoError(t, err)
			assert.Equal(t, domain.StatusFound, solution.Status)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, searches)
}

type failingLocker struct{}

var errLockDown = errors.New("lock service down")

func (failingLocker) Lock(context.Context, string, time.Duration) (ports.UnlockFunc, error) {
	return nil, errLockDown
}

func TestSolve_LockFailure(t *testing.T) {
	solver := puzzler.New(puzzler.WithLocker(failingLocker{}, time.Second))
	_, err := solver.Solve(context.Background(), pancake.Name, []int{1, 0})
	assert.ErrorIs(t, err, errLockDown)
}

func TestApply(t *testing.T) {
	solver := puzzler.New()

	start := []int{3, 1, 0, 2}
	end, err := solver.Apply(pancake.Name, start, []string{"4", "3", "2"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, end)
	assert.Equal(t, []int{3, 1, 0, 2}, start, "input is not modified")

	_, err = solver.Apply(pancake.Name, start, []string{"5"})
	assert.ErrorIs(t, err, domain.ErrInvalidAction)

	_, err = solver.Apply(pancake.Name, start, []string{"1"})
	assert.ErrorIs(t, err, domain.ErrInvalidAction)

	turned, err := solver.Apply(cube.Name, cube.Solved().Values(), []string{"U", "Shift+U"})
	require.NoError(t, err)
	assert.Equal(t, cube.Solved().Values(), turned)

	_, err = solver.Apply(cube.Name, cube.Solved().Values(), []string{"X"})
	assert.ErrorIs(t, err, domain.ErrInvalidAction)

	_, err = solver.Apply("hanoi", nil, nil)
	assert.ErrorIs(t, err, domain.ErrUnknownPuzzle)
}

func TestNormalize(t *testing.T) {
	solver := puzzler.New()
	moves, err := solver.Normalize(cube.Name, cube.Solved().Values(), []string{"u", "Shift+F", "R CCW"})
	require.NoError(t, err)
	assert.Equal(t, []string{"U", "F'", "R'"}, moves)
}

func TestCost(t *testing.T) {
	solver := puzzler.New()

	c, err := solver.Cost(pancake.Name, []int{3, 1, 0, 2}, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, c)

	c, err = solver.Cost(pancake.Name, []int{0, 1, 2}, 5)
	require.NoError(t, err)
	assert.Equal(t, 0.0, c, "pancake cost ignores depth")

	c, err = solver.Cost(cube.Name, cube.Solved().Values(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, c)

	turned, err := solver.Apply(cube.Name, cube.Solved().Values(), []string{"U"})
	require.NoError(t, err)
	c, err = solver.Cost(cube.Name, turned, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, c)

	_, err = solver.Cost(cube.Name, turned, -1)
	assert.Error(t, err)
}

func TestPlay(t *testing.T) {
	solver := puzzler.New()
	var frames []domain.Frame
	r := ports.RendererFunc(func(_ context.Context, f domain.Frame) error {
		frames = append(frames, f)
		return nil
	})

	end, err := solver.Play(context.Background(), pancake.Name, []int{3, 1, 0, 2}, []string{"4", "3", "2"}, r, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, end)

	require.Len(t, frames, 4)
	assert.Equal(t, 0, frames[0].Step)
	assert.Empty(t, frames[0].Move)
	assert.Equal(t, []int{3, 1, 0, 2}, frames[0].State)
	assert.Equal(t, "4", frames[1].Move)
	assert.Equal(t, []int{2, 0, 1, 3}, frames[1].State)
	assert.Equal(t, 3, frames[3].Step)
	assert.Equal(t, 3, frames[3].Total)
}

func TestPlay_BadMove(t *testing.T) {
	solver := puzzler.New()
	var frames []domain.Frame
	r := ports.RendererFunc(func(_ context.Context, f domain.Frame) error {
		frames = append(frames, f)
		return nil
	})

	end, err := solver.Play(context.Background(), pancake.Name, []int{2, 1, 0}, []string{"3", "9"}, r, 0)
	require.ErrorIs(t, err, domain.ErrInvalidAction)
	assert.Equal(t, "move 2: invalid action: flip 9 outside [2,3]", err.Error())
	assert.Equal(t, []int{0, 1, 2}, end)
	assert.Len(t, frames, 2)

	_, err = solver.Apply(pancake.Name, []int{2, 1, 0}, []string{"3", "9"})
	assert.Equal(t, "move 2: invalid action: flip 9 outside [2,3]", err.Error())
}

func TestPlay_StopsOnCancel(t *testing.T) {
	solver := puzzler.New()
	ctx, cancel := context.WithCancel(context.Background())

	var frames int
	r := ports.RendererFunc(func(context.Context, domain.Frame) error {
		frames++
		cancel()
		return nil
	})

	_, err := solver.Play(ctx, pancake.Name, []int{3, 1, 0, 2}, []string{"4", "3", "2"}, r, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, frames)
}

func TestPuzzles(t *testing.T) {
	assert.Equal(t, []string{"pancake", "cube"}, puzzler.Puzzles())
}
