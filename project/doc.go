// Package project holds the state of one traverse survey: the raw leg rows a
// user entered, the traverse kind, and the stations derived from them.
//
// A Project is owned by its caller and is not safe for concurrent use. Rows
// are append-only with pop-last removal; derived stations are recomputed in
// full on every Recompute and replaced only when the whole computation
// succeeds.
//
// Projects persist as a small record, identical in shape to what earlier
// versions of the survey calculator wrote:
//
//	{
//	    "traverse_type": "Closed",
//	    "points": [
//	        ["1000", "5000", "", ""],
//	        ["", "", "N60E", "25.4"]
//	    ]
//	}
//
// Fields may be strings, numbers or null when loading; they are always
// written as strings. Both JSON (.json) and YAML (.yaml, .yml) files are
// supported.
package project
