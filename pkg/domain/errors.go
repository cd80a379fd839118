package domain

import "errors"

// ErrInvalidAction is returned when an action token or value is not legal for the puzzle.
var ErrInvalidAction = errors.New("invalid action")

// ErrMalformedState is returned when a supplied state has the wrong length or an out-of-range symbol.
var ErrMalformedState = errors.New("malformed state")

// ErrNotFound reports that the frontier was exhausted without reaching the goal.
// Search returns it as a Status, not as an error; Status.Err maps it back for callers.
var ErrNotFound = errors.New("solution not found")

// ErrExhausted reports that the configured expansion budget was spent.
var ErrExhausted = errors.New("expansion budget exhausted")

// ErrTimeout reports that the search deadline passed or the context was canceled.
var ErrTimeout = errors.New("search deadline exceeded")

// ErrUnknownPuzzle is returned when a puzzle kind is not registered.
var ErrUnknownPuzzle = errors.New("unknown puzzle")

// ErrResultNotFound is returned when a solution key cannot be found in the store.
var ErrResultNotFound = errors.New("result not found")
