package traverse_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvsurvey/traverse"
	"github.com/stretchr/testify/assert"
)

// TestClosure_Gap checks gap components, perimeter and precision ratio.
func TestClosure_Gap(t *testing.T) {
	pts := []traverse.Point{{E: 0, N: 0}, {E: 100, N: 0}, {E: 100, N: 100}, {E: 0.3, N: 0.4}}
	r := traverse.Closure(pts)

	assert.InDelta(t, 0.3, r.GapE, tol)
	assert.InDelta(t, 0.4, r.GapN, tol)
	assert.InDelta(t, 0.5, r.Gap, tol)
	wantPerimeter := 100 + 100 + math.Hypot(99.7, 99.6) + 0.5
	assert.InDelta(t, wantPerimeter, r.Perimeter, tol)
	assert.InDelta(t, wantPerimeter/0.5, r.Precision, 1e-6)
}

// TestClosure_Edges covers exact closure, coincident and short inputs.
func TestClosure_Edges(t *testing.T) {
	closed := []traverse.Point{{E: 0, N: 0}, {E: 3, N: 0}, {E: 0, N: 4}, {E: 0, N: 0}}
	r := traverse.Closure(closed)
	assert.Zero(t, r.Gap)
	assert.True(t, math.IsInf(r.Precision, 1))

	same := []traverse.Point{{E: 1, N: 1}, {E: 1, N: 1}}
	r = traverse.Closure(same)
	assert.Zero(t, r.Perimeter)
	assert.Zero(t, r.Precision)

	assert.Equal(t, traverse.ClosureReport{}, traverse.Closure([]traverse.Point{{E: 9, N: 9}}))
}
