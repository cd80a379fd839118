package runtime

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/puzzler/internal/logging"
	"github.com/aretw0/puzzler/pkg/domain"
	"github.com/google/uuid"
)

// Problem binds a puzzle domain to the engine.
// S must be a value type whose equality is structural (fixed-size arrays, structs of arrays),
// since it is used directly as the visited and backpointer key.
type Problem[S comparable, A any] interface {
	// IsGoal reports whether s is a goal state.
	IsGoal(s S) bool

	// Actions returns the legal actions for s in a fixed order.
	// The engine never mutates the returned slice.
	Actions(s S) []A

	// Apply returns the successor of s under a. It must not mutate s.
	Apply(s S, a A) (S, error)

	// Cost returns the priority of s reached at the given depth. Lower is expanded first.
	Cost(s S, depth int) float64
}

// Admission decides when a generated child enters the frontier.
type Admission int

const (
	// AdmitFirstSeen admits a state only the first time it is discovered (greedy best-first).
	AdmitFirstSeen Admission = iota
	// AdmitImproved also re-admits a state when a strictly lower cost is found (A*).
	AdmitImproved
)

// String returns the admission policy name used in logs.
func (a Admission) String() string {
	switch a {
	case AdmitFirstSeen:
		return "first_seen"
	case AdmitImproved:
		return "improved"
	default:
		return fmt.Sprintf("admission(%d)", int(a))
	}
}

// SimulationError wraps a failure returned by Problem.Apply during expansion.
type SimulationError struct {
	Action string
	Err    error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("simulate action %s: %v", e.Action, e.Err)
}

func (e *SimulationError) Unwrap() error {
	return e.Err
}

// Engine is the domain-agnostic best-first search loop.
// An Engine holds only configuration; every Search call owns its own frontier and tables.
type Engine[S comparable, A any] struct {
	problem Problem[S, A]
	config
}

// NewEngine creates a new engine for the given problem.
func NewEngine[S comparable, A any](problem Problem[S, A], opts ...EngineOption) *Engine[S, A] {
	e := &Engine[S, A]{
		problem: problem,
		config: config{
			admission: AdmitFirstSeen,
			logger:    logging.NewNop(),
			puzzle:    "puzzle",
		},
	}
	for _, opt := range opts {
		opt(&e.config)
	}
	return e
}

// Search expands states from start until the goal is popped or a stop condition holds.
//
// NotFound, Exhausted and Timeout are reported through Result.Status with a nil error.
// A non-nil error means the problem itself failed (see SimulationError).
func (e *Engine[S, A]) Search(ctx context.Context, start S) (domain.Result[A], error) {
	began := time.Now()
	runID := uuid.NewString()
	logger := e.logger.With("puzzle", e.puzzle, "run_id", runID)

	frontier := newFrontier[S]()
	best := make(map[S]float64)
	parents := make(map[S]Backpointer[S, A])

	// 1. Seed the frontier with the start state
	startCost := e.problem.Cost(start, 0)
	frontier.push(start, startCost, 0)
	best[start] = startCost

	e.emitStart(ctx, runID)
	logger.Debug("search started", "cost", startCost, "admission", e.admission)

	result := domain.Result[A]{RunID: runID, Status: domain.StatusNotFound}

	// 2. Expansion loop
	for frontier.Len() > 0 {
		if ctx.Err() != nil {
			result.Status = domain.StatusTimeout
			break
		}
		if e.maxExpansions > 0 && result.NodesExpanded >= e.maxExpansions {
			result.Status = domain.StatusExhausted
			break
		}

		current := frontier.pop()

		// A cheaper copy of this state was admitted after this entry was pushed.
		if e.admission == AdmitImproved && current.cost > best[current.state] {
			continue
		}

		result.NodesExpanded++
		e.emitExpand(ctx, runID, result.NodesExpanded, current, frontier.Len())

		if e.problem.IsGoal(current.state) {
			result.Status = domain.StatusFound
			result.Path = Reconstruct(current.state, parents)
			break
		}

		// 3. Generate and admit children
		depth := current.depth + 1
		for _, action := range e.problem.Actions(current.state) {
			child, err := e.problem.Apply(current.state, action)
			if err != nil {
				logger.Error("simulation failed", "action", fmt.Sprint(action), "error", err)
				return domain.Result[A]{}, &SimulationError{Action: fmt.Sprint(action), Err: err}
			}

			cost := e.problem.Cost(child, depth)
			if !e.admit(best, child, cost) {
				continue
			}

			best[child] = cost
			parents[child] = Backpointer[S, A]{Parent: current.state, Action: action}
			frontier.push(child, cost, depth)
		}
	}

	result.Duration = time.Since(began)
	e.emitFinish(ctx, runID, result)
	logger.Debug("search finished",
		"status", result.Status,
		"expanded", result.NodesExpanded,
		"path_length", len(result.Path),
		"visited", len(best),
		"duration", result.Duration,
	)

	return result, nil
}

func (e *Engine[S, A]) admit(best map[S]float64, child S, cost float64) bool {
	prev, seen := best[child]
	if !seen {
		return true
	}
	return e.admission == AdmitImproved && cost < prev
}

func (e *Engine[S, A]) emitStart(ctx context.Context, runID string) {
	if e.hooks.OnSearchStart == nil {
		return
	}
	e.hooks.OnSearchStart(ctx, &domain.SearchEvent{
		EventBase: domain.EventBase{
			Timestamp: time.Now(),
			Type:      domain.EventSearchStart,
			RunID:     runID,
			Puzzle:    e.puzzle,
		},
	})
}

func (e *Engine[S, A]) emitExpand(ctx context.Context, runID string, expanded int, n *node[S], frontierSize int) {
	if e.hooks.OnExpand == nil {
		return
	}
	e.hooks.OnExpand(ctx, &domain.ExpandEvent{
		EventBase: domain.EventBase{
			Timestamp: time.Now(),
			Type:      domain.EventExpand,
			RunID:     runID,
			Puzzle:    e.puzzle,
		},
		Expanded:     expanded,
		Cost:         n.cost,
		Depth:        n.depth,
		FrontierSize: frontierSize,
	})
}

func (e *Engine[S, A]) emitFinish(ctx context.Context, runID string, result domain.Result[A]) {
	if e.hooks.OnSearchFinish == nil {
		return
	}
	e.hooks.OnSearchFinish(ctx, &domain.SearchEvent{
		EventBase: domain.EventBase{
			Timestamp: time.Now(),
			Type:      domain.EventSearchFinish,
			RunID:     runID,
			Puzzle:    e.puzzle,
		},
		Status:        result.Status,
		NodesExpanded: result.NodesExpanded,
		PathLength:    len(result.Path),
		Duration:      result.Duration,
	})
}
