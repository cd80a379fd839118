package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/puzzler/pkg/domain"
)

// Store implements ports.SolutionStore using the local filesystem.
// Each entry is one JSON file in BasePath.
type Store struct {
	BasePath string
}

// NewStore creates a new Store with the given base path.
// If basePath is empty, it defaults to ".puzzler/solutions".
func NewStore(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".puzzler", "solutions")
	}
	return &Store{BasePath: basePath}
}

// Keys contain ':' which some filesystems reject.
func fileName(key string) string {
	return strings.ReplaceAll(key, ":", "@") + ".json"
}

func keyFromName(name string) string {
	return strings.ReplaceAll(strings.TrimSuffix(name, ".json"), "@", ":")
}

// Save writes the solution atomically: temp file, fsync, rename.
func (s *Store) Save(ctx context.Context, key string, solution *domain.Solution) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure solution directory: %w", err)
	}

	data, err := json.MarshalIndent(solution, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal solution: %w", err)
	}

	// Same directory so the rename stays on one filesystem
	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	destPath := filepath.Join(s.BasePath, fileName(key))
	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Load reads the solution stored under key.
func (s *Store) Load(ctx context.Context, key string) (*domain.Solution, error) {
	if key == "" {
		return nil, fmt.Errorf("key cannot be empty")
	}

	data, err := os.ReadFile(filepath.Join(s.BasePath, fileName(key)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to read solution file: %w", err)
	}

	var solution domain.Solution
	if err := json.Unmarshal(data, &solution); err != nil {
		return nil, fmt.Errorf("failed to unmarshal solution: %w", err)
	}
	return &solution, nil
}

// Delete removes the solution file.
func (s *Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	err := os.Remove(filepath.Join(s.BasePath, fileName(key)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete solution file: %w", err)
	}
	return nil
}

// List returns the stored keys in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list solutions: %w", err)
	}

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" || strings.HasPrefix(name, "tmp-") {
			continue
		}
		keys = append(keys, keyFromName(name))
	}
	sort.Strings(keys)
	return keys, nil
}
