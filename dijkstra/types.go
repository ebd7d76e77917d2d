package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/waypath/geom"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source vertex was provided.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilMap indicates that a nil *roadmap.Map was passed to Dijkstra.
	ErrNilMap = errors.New("dijkstra: map is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist in the map.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in map")

	// ErrNegativeCost indicates that the metric produced a negative edge cost.
	ErrNegativeCost = errors.New("dijkstra: negative edge cost encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance and InfEdgeThreshold default to +Inf (no cap, no walls).
type Options struct {
	Source           int       // The id of the source vertex
	HasSource        bool      // Whether Source was set
	ReturnPath       bool      // Whether to return the predecessor map
	Metric           geom.Func // Edge cost between adjacent vertices
	MaxDistance      float64   // Maximum distance to explore
	InfEdgeThreshold float64   // Cost at or above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex id. It must be given.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
		o.HasSource = true
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMetric sets the edge-cost metric. Nil is ignored.
func WithMetric(f geom.Func) Option {
	return func(o *Options) {
		if f != nil {
			o.Metric = f
		}
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed max are not explored.
// Panics with ErrBadMaxDistance for negative values.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges whose cost is ≥ threshold as walls.
// Panics with ErrBadInfThreshold for values ≤ 0.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with Euclidean cost, no predecessor map,
// no distance cap and no impassable edges. No source is set.
func DefaultOptions() Options {
	return Options{
		Metric:           geom.Euclidean,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
