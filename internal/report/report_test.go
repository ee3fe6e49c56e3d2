package report_test

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/katalvlaran/lvsurvey/internal/report"
	"github.com/katalvlaran/lvsurvey/traverse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareResult() report.Result {
	pts := []traverse.Point{{E: 0, N: 0}, {E: 0, N: 10}, {E: 10, N: 10}, {E: 10, N: 0}, {E: 0, N: 0}}
	c := traverse.Closure(pts)
	a := 100.0
	return report.Result{
		Name:     "square.json",
		Kind:     traverse.Closed,
		Points:   pts,
		Adjusted: traverse.Adjust(pts, traverse.Closed),
		Closure:  &c,
		Area:     &a,
	}
}

// TestWrite_Text checks the table, leg bearings and summary lines.
func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, squareResult(), "text", 1))
	out := buf.String()

	for _, want := range []string{
		"Station", "Adj. Northing",
		"N0.0E", "N90.0E", "S0.0E", "S90.0W",
		"Project: square.json (Closed)",
		"Computed 5 points.",
		"Adjustment: adjusted",
		"precision exact",
		"Area: 100.00 sq.m (0.0100 ha)",
	} {
		assert.Contains(t, out, want)
	}
}

// TestWrite_TextOpen omits closure and area when absent.
func TestWrite_TextOpen(t *testing.T) {
	pts := []traverse.Point{{E: 0, N: 0}, {E: 3, N: 4}}
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.Result{
		Kind: traverse.Open, Points: pts, Adjusted: traverse.Adjust(pts, traverse.Open),
	}, "TEXT", 2))
	out := buf.String()
	assert.Contains(t, out, "5.00")
	assert.Contains(t, out, "Adjustment: copied")
	assert.NotContains(t, out, "Area:")
	assert.NotContains(t, out, "Closure:")
	assert.NotContains(t, out, "Project:")
}

// TestWrite_JSON decodes the document and checks its fields.
func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, squareResult(), "json", 3))

	var doc struct {
		Name       string `json:"name"`
		Kind       string `json:"traverse_type"`
		Status     string `json:"status"`
		Degenerate bool   `json:"degenerate"`
		Stations   []struct {
			Station  int             `json:"station"`
			Point    traverse.Point  `json:"point"`
			Adjusted *traverse.Point `json:"adjusted"`
			Bearing  string          `json:"bearing"`
			Distance float64         `json:"distance"`
		} `json:"stations"`
		Closure *struct {
			Gap       float64  `json:"gap"`
			Perimeter float64  `json:"perimeter"`
			Precision *float64 `json:"precision"`
		} `json:"closure"`
		Area     *float64 `json:"area"`
		Hectares *float64 `json:"hectares"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "square.json", doc.Name)
	assert.Equal(t, "Closed", doc.Kind)
	assert.Equal(t, "adjusted", doc.Status)
	assert.False(t, doc.Degenerate)
	require.Len(t, doc.Stations, 5)
	assert.Equal(t, 1, doc.Stations[0].Station)
	assert.Empty(t, doc.Stations[0].Bearing)
	assert.Equal(t, "N90.000000E", doc.Stations[2].Bearing)
	assert.Equal(t, 10.0, doc.Stations[2].Distance)
	require.NotNil(t, doc.Stations[2].Adjusted)
	assert.Equal(t, traverse.Point{E: 10, N: 10}, *doc.Stations[2].Adjusted)

	require.NotNil(t, doc.Closure)
	assert.Equal(t, 40.0, doc.Closure.Perimeter)
	assert.Nil(t, doc.Closure.Precision, "exact closure has no finite ratio")
	require.NotNil(t, doc.Area)
	assert.Equal(t, 100.0, *doc.Area)
	assert.Equal(t, 0.01, *doc.Hectares)
}

// TestWrite_JSONFinitePrecision reports a finite precision ratio.
func TestWrite_JSONFinitePrecision(t *testing.T) {
	pts := []traverse.Point{{E: 0, N: 0}, {E: 100, N: 0}, {E: 100, N: 100}, {E: 0.3, N: 0.4}}
	c := traverse.Closure(pts)
	require.False(t, math.IsInf(c.Precision, 0))

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.Result{
		Kind: traverse.Closed, Points: pts, Adjusted: traverse.Adjust(pts, traverse.Closed), Closure: &c,
	}, "json", 3))
	assert.Contains(t, buf.String(), `"precision"`)
}

// TestWrite_UnknownFormat rejects unsupported formats.
func TestWrite_UnknownFormat(t *testing.T) {
	err := report.Write(&bytes.Buffer{}, squareResult(), "xml", 2)
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}
