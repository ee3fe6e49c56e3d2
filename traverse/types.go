package traverse

import (
	"fmt"
	"math"
)

// Point is a station coordinate in metres on the local grid.
type Point struct {
	E float64 `json:"easting" yaml:"easting"`
	N float64 `json:"northing" yaml:"northing"`
}

// Sub returns the component-wise difference p − q.
func (p Point) Sub(q Point) Point { return Point{E: p.E - q.E, N: p.N - q.N} }

// DistanceTo returns the horizontal distance between p and q.
func (p Point) DistanceTo(q Point) float64 { return math.Hypot(q.E-p.E, q.N-p.N) }

// LegInput is one raw, user-entered row: the first row supplies the starting
// Easting/Northing, every later row a Bearing and Distance. Fields hold the
// text exactly as entered so problems can be reported per leg.
type LegInput struct {
	Easting  string
	Northing string
	Bearing  string
	Distance string
}

// Leg is a parsed traverse leg.
//
// Fields:
//   - Index: 0-based position of the originating LegInput (0 for typed legs
//     built directly by the caller, if they do not care).
//   - Bearing: the bearing text as entered, kept for reporting.
//   - Azimuth: degrees clockwise from north.
//   - Distance: horizontal length in metres, always > 0 after Parse.
type Leg struct {
	Index    int
	Bearing  string
	Azimuth  float64
	Distance float64
}

// Delta returns the (ΔE, ΔN) displacement of the leg.
func (l Leg) Delta() Point {
	rad := l.Azimuth * math.Pi / 180
	return Point{E: l.Distance * math.Sin(rad), N: l.Distance * math.Cos(rad)}
}

// Plan is a traverse parsed once from raw input: the anchor station and the
// ordered legs that follow it.
//
// Skipped lists the 0-based input positions whose bearing was blank. Such rows
// contribute no station and do not move the running position; they are kept
// only for compatibility with previously saved projects.
type Plan struct {
	Start   Point
	Legs    []Leg
	Skipped []int
}

// Kind classifies a traverse as Open or Closed.
type Kind int

const (
	// Open traverses end away from their start and are never closure-adjusted.
	Open Kind = iota
	// Closed traverses are assumed to return to the start; Adjust balances them.
	Closed
)

// String returns "Open" or "Closed", the names used in saved projects.
func (k Kind) String() string {
	switch k {
	case Open:
		return "Open"
	case Closed:
		return "Closed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps "Open"/"Closed" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "Open":
		return Open, nil
	case "Closed":
		return Closed, nil
	default:
		return Open, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k != Open && k != Closed {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Status tells how Adjust treated its input.
type Status int

const (
	// StatusPassThrough: too few points to adjust; Points is the input slice itself.
	StatusPassThrough Status = iota
	// StatusCopied: open traverse; Points is a value-equal copy of the input.
	StatusCopied
	// StatusAdjusted: closed traverse; Points holds newly balanced stations.
	StatusAdjusted
	// StatusDegenerate: closed traverse with zero perimeter; Points is the input.
	StatusDegenerate
)

// String returns a lower-case status name.
func (s Status) String() string {
	switch s {
	case StatusPassThrough:
		return "pass-through"
	case StatusCopied:
		return "copied"
	case StatusAdjusted:
		return "adjusted"
	case StatusDegenerate:
		return "degenerate"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Adjustment is the result of Adjust.
//
// Misfit and Perimeter are populated only for closed traverses with at least
// three points (StatusAdjusted or StatusDegenerate).
type Adjustment struct {
	Points    []Point
	Status    Status
	Misfit    Point
	Perimeter float64
}

// Err returns ErrDegenerateTraverse for StatusDegenerate and nil otherwise,
// so callers can tell "nothing to adjust" from a real adjustment.
func (a Adjustment) Err() error {
	if a.Status == StatusDegenerate {
		return ErrDegenerateTraverse
	}
	return nil
}
