package geom

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// ErrUnknownMetric is returned by ByName for unrecognised metric names.
var ErrUnknownMetric = errors.New("geom: unknown metric")

// Coordinate is the (X, Y) position of an intersection.
type Coordinate struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Vec returns c as a gonum r2 vector.
func (c Coordinate) Vec() r2.Vec { return r2.Vec{X: c.X, Y: c.Y} }

// String implements fmt.Stringer.
func (c Coordinate) String() string { return fmt.Sprintf("(%g, %g)", c.X, c.Y) }

// Func measures the distance between two coordinates.
// Implementations must be pure and return a value ≥ 0.
type Func func(a, b Coordinate) float64

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b Coordinate) float64 {
	return r2.Norm(r2.Sub(a.Vec(), b.Vec()))
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Coordinate) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// Diagonal returns the octile distance between a and b: the length of a
// path that moves diagonally (cost √2) as far as possible and then
// straight (cost 1) for the remainder.
func Diagonal(a, b Coordinate) float64 {
	dx := math.Abs(a.X - b.X)
	dy := math.Abs(a.Y - b.Y)

	return math.Sqrt2*math.Min(dx, dy) + math.Abs(dx-dy)
}

// Zero always returns 0.
func Zero(_, _ Coordinate) float64 { return 0 }

// Metric names accepted by ByName.
const (
	NameEuclidean = "euclidean"
	NameManhattan = "manhattan"
	NameDiagonal  = "diagonal"
	NameZero      = "zero"
)

// ByName resolves a metric by its configuration name (case-insensitive).
// The empty string selects Euclidean.
func ByName(name string) (Func, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameEuclidean:
		return Euclidean, nil
	case NameManhattan:
		return Manhattan, nil
	case NameDiagonal, "octile":
		return Diagonal, nil
	case NameZero, "none":
		return Zero, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
}
