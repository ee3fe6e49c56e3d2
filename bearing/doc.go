// Package bearing converts survey bearings to azimuths and back.
//
// 🧭 What is a bearing?
//
//	A quadrant bearing names a reference meridian (N or S), an angle in
//	degrees between 0 and 90, and the side of the meridian (E or W):
//
//	    N60E  → 60°     S60E → 120°
//	    S60W  → 240°    N60W → 300°
//
//	An azimuth is the same direction measured clockwise from north, 0–360°.
//
// ✨ Key features:
//   - Parse accepts quadrant bearings ("N 60 E", "s45.5w") and bare numeric
//     azimuths ("45", "212.75"), case- and whitespace-insensitive.
//   - Format renders an azimuth back into a quadrant bearing for display.
//   - Normalize reduces any finite azimuth into [0, 360).
//
// ⚙️ Usage:
//
//	az, err := bearing.Parse("N60E") // 60
//	if err != nil {
//	  // errors.Is(err, bearing.ErrInvalidFormat)
//	}
//	s := bearing.Format(300, 2) // "N60.00W"
//
// Bare numbers are passed through unchanged: "450" parses as 450 and it is
// the caller's business to Normalize it if a canonical direction is needed.
package bearing
