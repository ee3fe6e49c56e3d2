// Package report renders traverse results for the command line, as an
// aligned text table or as a single JSON document.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/lvsurvey/area"
	"github.com/katalvlaran/lvsurvey/bearing"
	"github.com/katalvlaran/lvsurvey/traverse"
)

// ErrUnknownFormat is returned for output formats other than text and json.
var ErrUnknownFormat = errors.New("report: unknown output format")

// Result is everything a command may print about one project.
// Closure and Area are optional.
type Result struct {
	Name     string
	Kind     traverse.Kind
	Points   []traverse.Point
	Adjusted traverse.Adjustment
	Closure  *traverse.ClosureReport
	Area     *float64
}

// Write renders r to w in the given format ("text" or "json").
func Write(w io.Writer, r Result, format string, precision int) error {
	switch strings.ToLower(format) {
	case "text":
		return writeText(w, r, precision)
	case "json":
		return writeJSON(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

type jsonStation struct {
	Station  int             `json:"station"`
	Point    traverse.Point  `json:"point"`
	Adjusted *traverse.Point `json:"adjusted,omitempty"`
	Bearing  string          `json:"bearing,omitempty"`
	Distance float64         `json:"distance,omitempty"`
}

type jsonClosure struct {
	Gap       float64  `json:"gap"`
	GapE      float64  `json:"gap_easting"`
	GapN      float64  `json:"gap_northing"`
	Perimeter float64  `json:"perimeter"`
	Precision *float64 `json:"precision,omitempty"` // nil for an exact closure
}

type jsonResult struct {
	Name       string         `json:"name,omitempty"`
	Kind       traverse.Kind  `json:"traverse_type"`
	Status     string         `json:"status"`
	Degenerate bool           `json:"degenerate"`
	Misfit     traverse.Point `json:"misfit"`
	Stations   []jsonStation  `json:"stations"`
	Closure    *jsonClosure   `json:"closure,omitempty"`
	Area       *float64       `json:"area,omitempty"`
	Hectares   *float64       `json:"hectares,omitempty"`
}

func writeJSON(w io.Writer, r Result) error {
	out := jsonResult{
		Name:       r.Name,
		Kind:       r.Kind,
		Status:     r.Adjusted.Status.String(),
		Degenerate: r.Adjusted.Err() != nil,
		Misfit:     r.Adjusted.Misfit,
		Stations:   make([]jsonStation, 0, len(r.Points)),
	}
	for i, p := range r.Points {
		st := jsonStation{Station: i + 1, Point: p}
		if i < len(r.Adjusted.Points) {
			a := r.Adjusted.Points[i]
			st.Adjusted = &a
		}
		if i > 0 {
			st.Bearing, st.Distance = legOf(r.Points[i-1], p, 6)
		}
		out.Stations = append(out.Stations, st)
	}
	if r.Closure != nil {
		c := &jsonClosure{Gap: r.Closure.Gap, GapE: r.Closure.GapE, GapN: r.Closure.GapN, Perimeter: r.Closure.Perimeter}
		if !math.IsInf(r.Closure.Precision, 0) {
			p := r.Closure.Precision
			c.Precision = &p
		}
		out.Closure = c
	}
	if r.Area != nil {
		a, ha := *r.Area, area.Hectares(*r.Area)
		out.Area, out.Hectares = &a, &ha
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeText(w io.Writer, r Result, precision int) error {
	num := func(v float64) string { return fmt.Sprintf("%.*f", precision, v) }

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Station\tBearing\tDistance\tEasting\tNorthing\tAdj. Easting\tAdj. Northing\t")
	for i, p := range r.Points {
		brg, dist := "", ""
		if i > 0 {
			b, d := legOf(r.Points[i-1], p, precision)
			brg, dist = b, num(d)
		}
		adjE, adjN := "", ""
		if i < len(r.Adjusted.Points) {
			adjE, adjN = num(r.Adjusted.Points[i].E), num(r.Adjusted.Points[i].N)
		}
		fmt.Fprintf(tw, "P%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n", i+1, brg, dist, num(p.E), num(p.N), adjE, adjN)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	var b strings.Builder
	if r.Name != "" {
		fmt.Fprintf(&b, "Project: %s (%s)\n", r.Name, r.Kind)
	}
	fmt.Fprintf(&b, "Computed %d points.\n", len(r.Points))
	fmt.Fprintf(&b, "Adjustment: %s\n", r.Adjusted.Status)
	if r.Closure != nil {
		c := r.Closure
		prec := "exact"
		if !math.IsInf(c.Precision, 0) {
			prec = fmt.Sprintf("1:%.0f", c.Precision)
		}
		fmt.Fprintf(&b, "Closure: gap %s m (ΔE %s, ΔN %s), perimeter %s m, precision %s\n",
			num(c.Gap), num(c.GapE), num(c.GapN), num(c.Perimeter), prec)
	}
	if r.Area != nil {
		fmt.Fprintf(&b, "Area: %.2f sq.m (%.4f ha)\n", *r.Area, area.Hectares(*r.Area))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// legOf recovers the bearing and length of the leg from a to b.
func legOf(a, b traverse.Point, decimals int) (string, float64) {
	d := b.Sub(a)
	if d.E == 0 && d.N == 0 {
		return "", 0
	}
	az := math.Atan2(d.E, d.N) * 180 / math.Pi
	return bearing.Format(az, decimals), a.DistanceTo(b)
}
