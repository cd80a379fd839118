package domain

import (
	"strconv"
	"strings"
	"time"
)

// Status is the terminal condition of a search.
type Status string

const (
	StatusFound     Status = "found"     // Goal reached, Path is valid
	StatusNotFound  Status = "not_found" // Frontier emptied before the goal
	StatusExhausted Status = "exhausted" // MaxExpansions reached
	StatusTimeout   Status = "timeout"   // Context deadline or cancellation
)

// Err maps a non-successful status to its sentinel error. Found maps to nil.
func (s Status) Err() error {
	switch s {
	case StatusNotFound:
		return ErrNotFound
	case StatusExhausted:
		return ErrExhausted
	case StatusTimeout:
		return ErrTimeout
	default:
		return nil
	}
}

// Result is the outcome of a single search invocation.
type Result[A any] struct {
	// RunID correlates the result with logs and lifecycle events.
	RunID string

	Status Status

	// Path holds the actions from start to goal. Empty (not nil) when the start is solved.
	Path []A

	// NodesExpanded counts frontier pops that reached the goal test.
	NodesExpanded int

	Duration time.Duration
}

// Found reports whether the search reached the goal.
func (r Result[A]) Found() bool {
	return r.Status == StatusFound
}

// Solution is the serializable record of a finished search.
// It is what stores persist and transports return.
type Solution struct {
	RunID         string        `json:"run_id"`
	Puzzle        string        `json:"puzzle"`
	Start         []int         `json:"start"`
	Status        Status        `json:"status"`
	Moves         []string      `json:"moves"`
	NodesExpanded int           `json:"nodes_expanded"`
	Duration      time.Duration `json:"duration"`
	SolvedAt      time.Time     `json:"solved_at"`
	Cached        bool          `json:"cached,omitempty"`
}

// SolutionKey builds the canonical store key for a puzzle start state.
func SolutionKey(puzzle string, start []int) string {
	var b strings.Builder
	b.WriteString(puzzle)
	b.WriteByte(':')
	for i, v := range start {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
