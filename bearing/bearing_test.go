package bearing_test

import (
	"testing"

	"github.com/katalvlaran/lvsurvey/bearing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_Quadrants verifies the four quadrant mappings and input normalization.
func TestParse_Quadrants(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"NE", "N60E", 60},
		{"SE", "S60E", 120},
		{"SW", "S60W", 240},
		{"NW", "N60W", 300},
		{"LowerCase", "n60e", 60},
		{"Spaces", " S 45.5 W ", 225.5},
		{"Tabs", "N\t30\tW", 330},
		{"DueNorth", "N0E", 0},
		{"DueEastFromNorth", "N90E", 90},
		{"DueSouth", "S0E", 180},
		{"DueWest", "S90W", 270},
		{"ZeroWest", "N0W", 360},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := bearing.Parse(tc.in)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

// TestParse_RawAzimuth checks that bare numbers pass through without range checks.
func TestParse_RawAzimuth(t *testing.T) {
	for in, want := range map[string]float64{
		"45":     45,
		"212.75": 212.75,
		"450":    450,
		"-30":    -30,
		" 1e2 ":  100,
	} {
		got, err := bearing.Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

// TestParse_Errors ensures every malformed input reports ErrInvalidFormat.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"Empty", ""},
		{"Blank", "   "},
		{"AngleTooLarge", "N95E"},
		{"NegativeAngle", "S-1W"},
		{"MissingEW", "N60"},
		{"MissingNS", "60E"},
		{"SwappedLetters", "E60N"},
		{"NoAngle", "NE"},
		{"Garbage", "hello"},
		{"BadAngle", "N6x0E"},
		{"NaN", "nan"},
		{"Inf", "inf"},
		{"QuadrantNaN", "NNANE"},
		{"HexAzimuth", "0x1p4"},
		{"HexAzimuthUpper", "0X2DP0"},
		{"HexQuadrantAngle", "N0x1p4E"},
		{"Underscore", "1_0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bearing.Parse(tc.in)
			assert.ErrorIs(t, err, bearing.ErrInvalidFormat)
		})
	}
}

// TestNormalize covers wrap-around in both directions.
func TestNormalize(t *testing.T) {
	assert.Equal(t, 0.0, bearing.Normalize(0))
	assert.Equal(t, 0.0, bearing.Normalize(360))
	assert.Equal(t, 90.0, bearing.Normalize(450))
	assert.Equal(t, 330.0, bearing.Normalize(-30))
	assert.Equal(t, 10.0, bearing.Normalize(-710))
}

// TestSplit verifies quadrant boundaries.
func TestSplit(t *testing.T) {
	cases := []struct {
		az    float64
		q     bearing.Quadrant
		angle float64
	}{
		{0, bearing.NE, 0},
		{90, bearing.NE, 90},
		{120, bearing.SE, 60},
		{180, bearing.SE, 0},
		{240, bearing.SW, 60},
		{270, bearing.SW, 90},
		{300, bearing.NW, 60},
		{-60, bearing.NW, 60},
	}
	for _, tc := range cases {
		q, angle := bearing.Split(tc.az)
		assert.Equal(t, tc.q, q, "az=%v", tc.az)
		assert.InDelta(t, tc.angle, angle, 1e-12, "az=%v", tc.az)
	}
}

// TestFormat_Inverse checks that Parse(Format(az)) returns az for a sweep of azimuths.
func TestFormat_Inverse(t *testing.T) {
	assert.Equal(t, "N60.00E", bearing.Format(60, 2))
	assert.Equal(t, "S60.0E", bearing.Format(120, 1))
	assert.Equal(t, "S60W", bearing.Format(240, 0))
	assert.Equal(t, "N60W", bearing.Format(300, -1))

	for az := 0.0; az < 360; az += 7.5 {
		got, err := bearing.Parse(bearing.Format(az, 4))
		require.NoError(t, err)
		assert.InDelta(t, az, bearing.Normalize(got), 1e-9, "az=%v", az)
	}
}

// TestQuadrant_String covers the fallback branch.
func TestQuadrant_String(t *testing.T) {
	assert.Equal(t, "SW", bearing.SW.String())
	assert.Equal(t, "Quadrant(9)", bearing.Quadrant(9).String())
}
