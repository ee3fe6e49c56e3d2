package project

import (
	"fmt"

	"github.com/katalvlaran/lvsurvey/area"
	"github.com/katalvlaran/lvsurvey/internal/decimal"
	"github.com/katalvlaran/lvsurvey/traverse"
)

// Project is the editable state of one survey.
type Project struct {
	kind     traverse.Kind
	inputs   []traverse.LegInput
	points   []traverse.Point
	adjusted traverse.Adjustment
	computed bool
}

// New returns an empty project of the given kind.
func New(kind traverse.Kind) *Project {
	return &Project{kind: kind}
}

// Kind returns the traverse kind.
func (p *Project) Kind() traverse.Kind { return p.kind }

// SetKind changes the traverse kind. Derived stations are discarded because
// their adjustment no longer matches; call Recompute again.
func (p *Project) SetKind(kind traverse.Kind) {
	if kind == p.kind {
		return
	}
	p.kind = kind
	p.resetDerived()
}

// Len returns the number of rows entered.
func (p *Project) Len() int { return len(p.inputs) }

// Inputs returns a copy of the rows entered so far.
func (p *Project) Inputs() []traverse.LegInput {
	return append([]traverse.LegInput(nil), p.inputs...)
}

// AppendLeg validates in and appends it.
//
// On the first row Easting and Northing must be blank or a finite number. A
// row with a bearing must carry a blank or finite, non-negative distance.
// Zero distances are accepted here and rejected by Recompute, as earlier
// versions did.
//
// Derived data is kept: Points, Adjustment, Area and Closure keep describing
// the last successful Recompute until the next one.
func (p *Project) AppendLeg(in traverse.LegInput) error {
	if err := validateRow(in, len(p.inputs) == 0); err != nil {
		return fmt.Errorf("row %d: %w", len(p.inputs)+1, err)
	}
	p.inputs = append(p.inputs, in)
	return nil
}

// RemoveLast drops the most recent row. It reports false, and does nothing,
// when there are no rows. Like AppendLeg it keeps derived data.
func (p *Project) RemoveLast() bool {
	if len(p.inputs) == 0 {
		return false
	}
	p.inputs[len(p.inputs)-1] = traverse.LegInput{}
	p.inputs = p.inputs[:len(p.inputs)-1]
	return true
}

// Clear removes every row and all derived data. The kind is kept.
func (p *Project) Clear() {
	p.inputs = nil
	p.resetDerived()
}

// Recompute runs the traverse computation and adjustment over the current
// rows. Both derived fields are replaced together; on error the previous
// stations and adjustment stay as they were.
func (p *Project) Recompute(opts ...traverse.Option) error {
	pts, err := traverse.Compute(p.inputs)
	if err != nil {
		return err
	}
	adj := traverse.Adjust(pts, p.kind, opts...)

	p.points, p.adjusted, p.computed = pts, adj, true
	return nil
}

// Computed reports whether derived data is available, i.e. Recompute has
// succeeded since New, Clear or the last kind change.
func (p *Project) Computed() bool { return p.computed }

// Points returns a copy of the last computed (unadjusted) stations.
func (p *Project) Points() []traverse.Point {
	return append([]traverse.Point(nil), p.points...)
}

// Adjustment returns the last adjustment result with its own copy of the stations.
func (p *Project) Adjustment() traverse.Adjustment {
	adj := p.adjusted
	adj.Points = append([]traverse.Point(nil), p.adjusted.Points...)
	return adj
}

// Area returns the area enclosed by the adjusted stations.
//
// Errors:
//   - ErrAreaRequiresClosed: the project is an Open traverse.
//   - ErrNotComputed: Recompute has not succeeded since New, Clear or a
//     kind change. Row edits do not invalidate a previous result.
func (p *Project) Area() (float64, error) {
	if p.kind != traverse.Closed {
		return 0, ErrAreaRequiresClosed
	}
	if !p.computed || len(p.adjusted.Points) == 0 {
		return 0, ErrNotComputed
	}
	return area.Polygon(p.adjusted.Points), nil
}

// Closure reports the misclosure of the unadjusted stations.
func (p *Project) Closure() (traverse.ClosureReport, error) {
	if !p.computed {
		return traverse.ClosureReport{}, ErrNotComputed
	}
	return traverse.Closure(p.points), nil
}

func (p *Project) resetDerived() {
	p.points = nil
	p.adjusted = traverse.Adjustment{}
	p.computed = false
}

// validateRow applies the entry-time checks shared by AppendLeg and loading.
// Only the anchor row's coordinates are read by the computation, so later
// rows may carry any easting/northing text (station labels, dashes).
func validateRow(in traverse.LegInput, anchor bool) error {
	if anchor {
		for _, f := range []struct{ name, text string }{
			{"easting", in.Easting},
			{"northing", in.Northing},
		} {
			if _, err := decimal.ParseOptional(f.text); err != nil {
				return fmt.Errorf("%w: %s %q is not a number", ErrInvalidLeg, f.name, f.text)
			}
		}
	}
	if in.Bearing != "" {
		d, err := decimal.ParseOptional(in.Distance)
		if err != nil {
			return fmt.Errorf("%w: distance %q is not a number", ErrInvalidLeg, in.Distance)
		}
		if d < 0 {
			return fmt.Errorf("%w: distance must be positive", ErrInvalidLeg)
		}
	}
	return nil
}
