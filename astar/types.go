package astar

import (
	"errors"
	"fmt"
)

// Sentinel errors for A* search.
var (
	// ErrNilMap is returned when a nil *roadmap.Map is passed.
	ErrNilMap = errors.New("astar: map is nil")

	// ErrUnknownVertex is returned when start or goal is not in the map.
	ErrUnknownVertex = errors.New("astar: vertex not in map")

	// ErrBrokenMap is returned when an adjacency list references a vertex
	// without a coordinate.
	ErrBrokenMap = errors.New("astar: map references a vertex without coordinate")

	// ErrNegativeCost is returned when the cost metric yields a negative
	// or NaN value for a road.
	ErrNegativeCost = errors.New("astar: negative or NaN road cost")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrExpansionLimit is returned when WithMaxExpansions is exceeded.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrNoPath is returned by Result.Err for StatusNoPath.
	ErrNoPath = errors.New("astar: no path between start and goal")

	// ErrInvalidInput is returned by Result.Err for StatusInvalidInput.
	ErrInvalidInput = errors.New("astar: start and goal must be non-negative vertex ids")
)

// Status classifies the outcome of a search.
type Status int

const (
	// StatusUnknown is the zero value, carried by results returned with an error.
	StatusUnknown Status = iota
	// StatusFound means a path from start to goal was found.
	StatusFound
	// StatusNoPath means the goal is unreachable from start.
	StatusNoPath
	// StatusInvalidInput means start or goal was not a valid vertex id.
	StatusInvalidInput
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusUnknown:
		return "unknown"
	case StatusFound:
		return "found"
	case StatusNoPath:
		return "no-path"
	case StatusInvalidInput:
		return "invalid-input"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result holds the outcome of a search.
//
// Path and Cost are set only for StatusFound. Expanded counts vertices
// popped from the frontier; Reopened counts closed vertices moved back
// to the frontier.
type Result struct {
	Status   Status
	Path     []int
	Cost     float64
	Expanded int
	Reopened int
}

// Found reports whether the search reached the goal.
func (r Result) Found() bool { return r.Status == StatusFound }

// Err converts a non-found status into its sentinel error
// (ErrNoPath, ErrInvalidInput). It returns nil only for StatusFound.
func (r Result) Err() error {
	switch r.Status {
	case StatusFound:
		return nil
	case StatusNoPath:
		return ErrNoPath
	case StatusInvalidInput:
		return ErrInvalidInput
	default:
		return fmt.Errorf("astar: unexpected status %v", r.Status)
	}
}

// Query is one start/goal pair for SearchAll.
type Query struct {
	Start int
	Goal  int
}
