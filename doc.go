// Package lvsurvey is a small, dependable engine for land-survey traverses:
// from a control point and a list of bearing/distance legs to station
// coordinates, a balanced closed loop and the area it encloses.
//
// 🚀 What is in the box?
//
//	• Bearings: quadrant bearings (N60E, S45.5W) and raw azimuths, both ways
//	• Traverse computation: polar legs → Cartesian stations on a local grid
//	• Adjustment: proportional closure distribution for closed loops
//	• Closure report: linear misclosure and "1 in N" precision
//	• Area: shoelace formula, orientation, hectares
//	• Projects: editable leg lists persisted as JSON or YAML
//
// ✨ Why lvsurvey?
//
//   - Explicit results – degenerate loops and skipped legs are reported, not hidden
//   - Sentinel errors – every failure is matchable with errors.Is
//   - Pure Go – the engine packages have no I/O and no global state
//
// Packages:
//
//	bearing/: bearing ↔ azimuth conversion
//	traverse/: LegInput, Plan, Compute, Adjust, Closure
//	area/: shoelace area and orientation
//	project/: Project state container, record codecs, file Store
//	cmd/traverse: command-line front end
//
// Quick ASCII example:
//
//	    P2───P3
//	    │     │
//	    P1───P4
//
//	N0E 10, N90E 10, S0E 10, N90W 10 from P1 closes on P1 and encloses 100 m².
//
//	go install github.com/katalvlaran/lvsurvey/cmd/traverse@latest
package lvsurvey
