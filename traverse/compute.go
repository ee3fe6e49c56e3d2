package traverse

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsurvey/bearing"
	"github.com/katalvlaran/lvsurvey/internal/decimal"
)

// Compute converts raw leg rows into station coordinates.
//
// Steps:
//  1. Parse the rows into a Plan (see Parse for validation rules).
//  2. Accumulate every leg onto the previous station, starting at Plan.Start.
//
// The returned slice always has the start station at index 0 and one more
// station per non-skipped leg, in traversal order.
//
// Errors:
//   - ErrNoPoints: inputs is empty.
//   - ErrInvalidCoordinate: the first row's easting/northing is not a number.
//   - ErrInvalidDistance: a later row's distance is not a positive number.
//   - bearing.ErrInvalidFormat: a later row's bearing does not parse.
//
// Complexity: O(n) time and memory.
func Compute(inputs []LegInput) ([]Point, error) {
	plan, err := Parse(inputs)
	if err != nil {
		return nil, err
	}
	return plan.Run(), nil
}

// Parse validates raw rows and converts them into a Plan.
//
// The first row is the anchor: blank Easting/Northing default to 0 and its
// Bearing/Distance are ignored. For each later row the distance text is read
// first (blank means 0); a row with an empty Bearing is then skipped and its
// position recorded in Plan.Skipped. Remaining rows must carry a valid bearing
// and a distance > 0.
func Parse(inputs []LegInput) (Plan, error) {
	if len(inputs) == 0 {
		return Plan{}, ErrNoPoints
	}

	start, err := parseAnchor(inputs[0])
	if err != nil {
		return Plan{}, fmt.Errorf("leg 1: %w", err)
	}

	plan := Plan{Start: start, Legs: make([]Leg, 0, len(inputs)-1)}
	for i := 1; i < len(inputs); i++ {
		in := inputs[i]

		dist, err := parseNumber(in.Distance)
		if err != nil {
			return Plan{}, fmt.Errorf("leg %d: %w: %q", i+1, ErrInvalidDistance, in.Distance)
		}
		if in.Bearing == "" {
			plan.Skipped = append(plan.Skipped, i)
			continue
		}
		if dist <= 0 {
			return Plan{}, fmt.Errorf("leg %d: %w", i+1, ErrInvalidDistance)
		}

		az, err := bearing.Parse(in.Bearing)
		if err != nil {
			return Plan{}, fmt.Errorf("leg %d: %w", i+1, err)
		}
		plan.Legs = append(plan.Legs, Leg{Index: i, Bearing: in.Bearing, Azimuth: az, Distance: dist})
	}

	return plan, nil
}

// Run accumulates the plan's legs from its start station. A Plan returned by
// Parse is already valid, so Run cannot fail.
func (p Plan) Run() []Point {
	pts := make([]Point, 0, len(p.Legs)+1)
	pts = append(pts, p.Start)
	cur := p.Start
	for _, l := range p.Legs {
		d := l.Delta()
		cur = Point{E: cur.E + d.E, N: cur.N + d.N}
		pts = append(pts, cur)
	}
	return pts
}

// Run computes stations from a start point and already-typed legs, for
// callers that do not go through raw text. Every leg must have a finite
// azimuth and a finite distance > 0; errors name the leg as Index+1.
func Run(start Point, legs []Leg) ([]Point, error) {
	if !finite(start.E) || !finite(start.N) {
		return nil, ErrInvalidCoordinate
	}
	for _, l := range legs {
		if !finite(l.Distance) || l.Distance <= 0 {
			return nil, fmt.Errorf("leg %d: %w", l.Index+1, ErrInvalidDistance)
		}
		if !finite(l.Azimuth) {
			return nil, fmt.Errorf("leg %d: %w", l.Index+1, bearing.ErrInvalidFormat)
		}
	}
	return Plan{Start: start, Legs: legs}.Run(), nil
}

// parseAnchor reads the starting coordinate of the first row.
func parseAnchor(in LegInput) (Point, error) {
	e, err := parseNumber(in.Easting)
	if err != nil {
		return Point{}, fmt.Errorf("%w: easting %q", ErrInvalidCoordinate, in.Easting)
	}
	n, err := parseNumber(in.Northing)
	if err != nil {
		return Point{}, fmt.Errorf("%w: northing %q", ErrInvalidCoordinate, in.Northing)
	}
	return Point{E: e, N: n}, nil
}

// parseNumber reads a finite decimal; blank text reads as 0.
func parseNumber(s string) (float64, error) { return decimal.ParseOptional(s) }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
