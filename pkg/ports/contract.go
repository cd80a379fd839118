package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/puzzler/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSolutionStoreContract verifies that a SolutionStore implementation
// adheres to the interface contract.
func RunSolutionStoreContract(t *testing.T, store SolutionStore) {
	ctx := context.Background()
	suffix := time.Now().Format("20060102150405")
	start := []int{3, 1, 0, 2}
	key := domain.SolutionKey("contract-"+suffix, start)

	solution := func() *domain.Solution {
		return &domain.Solution{
			RunID:         "run-" + suffix,
			Puzzle:        "contract",
			Start:         append([]int(nil), start...),
			Status:        domain.StatusFound,
			Moves:         []string{"4", "3", "2"},
			NodesExpanded: 6,
			Duration:      3 * time.Millisecond,
			SolvedAt:      time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, key, solution())
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, domain.StatusFound, loaded.Status)
		assert.Equal(t, []string{"4", "3", "2"}, loaded.Moves)
		assert.Equal(t, start, loaded.Start)
		assert.Equal(t, 6, loaded.NodesExpanded)
		assert.Equal(t, 3*time.Millisecond, loaded.Duration)
		assert.True(t, loaded.SolvedAt.Equal(solution().SolvedAt))
	})

	t.Run("Load returns a copy", func(t *testing.T) {
		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		loaded.Moves[0] = "tampered"

		again, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "4", again.Moves[0])
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "missing-"+key)
		assert.ErrorIs(t, err, domain.ErrResultNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, solution()))

		err := store.Delete(ctx, key)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrResultNotFound, "Load after Delete should return ErrResultNotFound")

		assert.NoError(t, store.Delete(ctx, key), "deleting twice is not an error")
	})

	t.Run("List", func(t *testing.T) {
		key1 := domain.SolutionKey("contract-"+suffix, []int{0, 1})
		key2 := domain.SolutionKey("contract-"+suffix, []int{1, 0})
		require.NoError(t, store.Save(ctx, key1, solution()))
		require.NoError(t, store.Save(ctx, key2, solution()))

		defer func() {
			_ = store.Delete(ctx, key1)
			_ = store.Delete(ctx, key2)
		}()

		keys, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, key1)
		assert.Contains(t, keys, key2)
	})
}
