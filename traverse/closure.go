package traverse

import "math"

// ClosureReport summarizes how far a chain of stations is from closing on
// its start. It is informational only and never moves a station.
//
// Fields:
//   - Gap: straight-line distance from the last station back to the first.
//   - GapE/GapN: components of last − first.
//   - Perimeter: chain length plus the closing segment.
//   - Precision: Perimeter/Gap, the "1 in N" ratio; +Inf when Gap is 0,
//     0 when Perimeter is 0.
type ClosureReport struct {
	Gap       float64
	GapE      float64
	GapN      float64
	Perimeter float64
	Precision float64
}

// Closure computes the ClosureReport of points. Fewer than two points
// yield a zero report.
func Closure(points []Point) ClosureReport {
	if len(points) < 2 {
		return ClosureReport{}
	}
	first, last := points[0], points[len(points)-1]
	d := last.Sub(first)
	r := ClosureReport{
		Gap:       math.Hypot(d.E, d.N),
		GapE:      d.E,
		GapN:      d.N,
		Perimeter: chainLength(points) + last.DistanceTo(first),
	}
	switch {
	case r.Perimeter == 0:
		r.Precision = 0
	case r.Gap == 0:
		r.Precision = math.Inf(1)
	default:
		r.Precision = r.Perimeter / r.Gap
	}
	return r
}
