package runtime

import (
	"log/slog"

	"github.com/aretw0/puzzler/pkg/domain"
)

type config struct {
	admission     Admission
	maxExpansions int
	logger        *slog.Logger
	hooks         domain.SearchHooks
	puzzle        string
}

// EngineOption configures an Engine. Options are shared by every Engine instantiation.
type EngineOption func(*config)

// WithAdmission sets the frontier admission policy (default: AdmitFirstSeen).
func WithAdmission(a Admission) EngineOption {
	return func(c *config) {
		c.admission = a
	}
}

// WithMaxExpansions bounds the number of expansions per search. Zero means unbounded.
func WithMaxExpansions(n int) EngineOption {
	return func(c *config) {
		if n > 0 {
			c.maxExpansions = n
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.SearchHooks) EngineOption {
	return func(c *config) {
		c.hooks = hooks
	}
}

// WithPuzzleName labels logs and events emitted by the engine.
func WithPuzzleName(name string) EngineOption {
	return func(c *config) {
		c.puzzle = name
	}
}
