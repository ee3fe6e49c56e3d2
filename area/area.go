package area

import (
	"math"

	"github.com/katalvlaran/lvsurvey/traverse"
)

// SquareMetresPerHectare converts m² to hectares.
const SquareMetresPerHectare = 10_000.0

// Orientation is the winding direction of a ring.
type Orientation int

const (
	// Degenerate rings have zero signed area (collinear or too short).
	Degenerate Orientation = iota
	// CounterClockwise rings have positive signed area.
	CounterClockwise
	// Clockwise rings have negative signed area.
	Clockwise
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case CounterClockwise:
		return "counter-clockwise"
	case Clockwise:
		return "clockwise"
	default:
		return "degenerate"
	}
}

// Polygon returns the non-negative area enclosed by points, 0 for fewer
// than three points.
//
// Complexity: O(n).
func Polygon(points []traverse.Point) float64 {
	return math.Abs(Signed(points))
}

// Signed returns the shoelace area with sign: positive when the stations run
// counter-clockwise (E as x, N as y), negative when clockwise.
func Signed(points []traverse.Point) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += points[i].E * points[j].N
		sum -= points[j].E * points[i].N
	}
	return sum / 2
}

// OrientationOf reports the winding direction of points.
func OrientationOf(points []traverse.Point) Orientation {
	s := Signed(points)
	switch {
	case s > 0:
		return CounterClockwise
	case s < 0:
		return Clockwise
	default:
		return Degenerate
	}
}

// Hectares converts square metres to hectares.
func Hectares(m2 float64) float64 { return m2 / SquareMetresPerHectare }
