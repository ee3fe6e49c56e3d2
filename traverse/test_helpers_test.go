package traverse_test

import (
	"testing"

	"github.com/katalvlaran/lvsurvey/traverse"
	"github.com/stretchr/testify/assert"
)

// tol is the coordinate tolerance used when trigonometry is involved.
const tol = 1e-9

// squareLegs returns rows for a 10 m square walked N, E, S, W from (0,0).
func squareLegs() []traverse.LegInput {
	return []traverse.LegInput{
		{Easting: "0", Northing: "0"},
		{Bearing: "N0E", Distance: "10"},
		{Bearing: "N90E", Distance: "10"},
		{Bearing: "S0E", Distance: "10"},
		{Bearing: "N90W", Distance: "10"},
	}
}

// assertPointsInDelta compares two point slices component-wise.
func assertPointsInDelta(t *testing.T, want, got []traverse.Point, delta float64) {
	t.Helper()
	if !assert.Len(t, got, len(want)) {
		return
	}
	for i := range want {
		assert.InDelta(t, want[i].E, got[i].E, delta, "easting of station %d", i)
		assert.InDelta(t, want[i].N, got[i].N, delta, "northing of station %d", i)
	}
}
