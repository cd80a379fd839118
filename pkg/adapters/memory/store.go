package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/puzzler/pkg/domain"
)

// Store implements ports.SolutionStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Solution
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Solution),
	}
}

// Save persists a copy of the solution.
func (s *Store) Save(ctx context.Context, key string, solution *domain.Solution) error {
	copied := clone(solution)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = copied
	return nil
}

// Load retrieves a copy of the stored solution.
func (s *Store) Load(ctx context.Context, key string) (*domain.Solution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	solution, ok := s.data[key]
	if !ok {
		return nil, domain.ErrResultNotFound
	}

	// Copy on read so callers can't mutate the stored slices
	return clone(solution), nil
}

// Delete removes the entry.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// List returns the stored keys in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for key := range s.data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

func clone(src *domain.Solution) *domain.Solution {
	dst := *src
	dst.Start = append([]int(nil), src.Start...)
	dst.Moves = append([]string(nil), src.Moves...)
	return &dst
}
