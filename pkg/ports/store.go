package ports

import (
	"context"

	"github.com/aretw0/puzzler/pkg/domain"
)

// SolutionStore persists finished search results.
// Keys are built with domain.SolutionKey so equal start states share an entry.
type SolutionStore interface {
	// Save persists the solution under key, replacing any previous entry.
	Save(ctx context.Context, key string, solution *domain.Solution) error

	// Load retrieves the solution stored under key.
	// Returns domain.ErrResultNotFound if nothing is stored.
	Load(ctx context.Context, key string) (*domain.Solution, error)

	// Delete removes the entry. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns the keys currently stored.
	List(ctx context.Context) ([]string, error)
}
