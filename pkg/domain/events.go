package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSearchStart  EventType = "search_start"
	EventExpand       EventType = "expand"
	EventSearchFinish EventType = "search_finish"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	RunID     string    `json:"run_id"`
	Puzzle    string    `json:"puzzle"`
}

// SearchEvent marks the start or the end of a search run.
type SearchEvent struct {
	EventBase
	Status        Status        `json:"status,omitempty"`
	NodesExpanded int           `json:"nodes_expanded"`
	PathLength    int           `json:"path_length"`
	Duration      time.Duration `json:"duration,omitempty"`
}

// ExpandEvent is emitted once per expansion.
type ExpandEvent struct {
	EventBase
	Expanded     int     `json:"expanded"`
	Cost         float64 `json:"cost"`
	Depth        int     `json:"depth"`
	FrontierSize int     `json:"frontier_size"`
}

// SearchHooks defines callbacks for engine observability.
// Any field may be nil.
type SearchHooks struct {
	OnSearchStart  func(context.Context, *SearchEvent)
	OnExpand       func(context.Context, *ExpandEvent)
	OnSearchFinish func(context.Context, *SearchEvent)
}

// Merge returns hooks that call h first and then other.
func (h SearchHooks) Merge(other SearchHooks) SearchHooks {
	return SearchHooks{
		OnSearchStart:  chainSearch(h.OnSearchStart, other.OnSearchStart),
		OnExpand:       chainExpand(h.OnExpand, other.OnExpand),
		OnSearchFinish: chainSearch(h.OnSearchFinish, other.OnSearchFinish),
	}
}

func chainSearch(a, b func(context.Context, *SearchEvent)) func(context.Context, *SearchEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *SearchEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}

func chainExpand(a, b func(context.Context, *ExpandEvent)) func(context.Context, *ExpandEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *ExpandEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
