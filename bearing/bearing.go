package bearing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/lvsurvey/internal/decimal"
)

// MaxQuadrantAngle is the largest angle a quadrant bearing may carry.
const MaxQuadrantAngle = 90.0

// Quadrant identifies the quarter of the compass a direction falls in.
type Quadrant int

const (
	// NE covers azimuths [0, 90].
	NE Quadrant = iota
	// SE covers azimuths (90, 180].
	SE
	// SW covers azimuths (180, 270].
	SW
	// NW covers azimuths (270, 360).
	NW
)

// String returns the two-letter quadrant name.
func (q Quadrant) String() string {
	switch q {
	case NE:
		return "NE"
	case SE:
		return "SE"
	case SW:
		return "SW"
	case NW:
		return "NW"
	default:
		return fmt.Sprintf("Quadrant(%d)", int(q))
	}
}

// Parse converts a bearing expression into an azimuth in degrees.
//
// The text is upper-cased and stripped of all whitespace first. If what
// remains is a plain decimal number (no hexadecimal notation) it is returned as is (raw azimuth mode,
// no range check). Otherwise it must be a quadrant bearing of the form
// [N|S]<angle>[E|W] with 0 ≤ angle ≤ 90, mapped as:
//
//	N a E → a        S a E → 180 − a
//	S a W → 180 + a  N a W → 360 − a
//
// Errors:
//   - ErrInvalidFormat: empty input, unknown syntax, non-finite number or
//     quadrant angle out of range. The returned error wraps the sentinel
//     with the offending text.
//
// Complexity: O(len(text)).
func Parse(text string) (float64, error) {
	s := normalize(text)
	if s == "" {
		return 0, fmt.Errorf("%w: bearing cannot be empty", ErrInvalidFormat)
	}

	// Raw azimuth passthrough.
	switch v, err := decimal.Parse(s); {
	case err == nil:
		return v, nil
	case errors.Is(err, decimal.ErrNotFinite):
		return 0, fmt.Errorf("%w: %q is not a finite azimuth", ErrInvalidFormat, text)
	}

	if len(s) < 3 {
		return 0, fmt.Errorf("%w: %q, use e.g. N60E", ErrInvalidFormat, text)
	}
	ns, ew := s[0], s[len(s)-1]
	if (ns != 'N' && ns != 'S') || (ew != 'E' && ew != 'W') {
		return 0, fmt.Errorf("%w: %q, use e.g. N60E", ErrInvalidFormat, text)
	}

	angle, err := decimal.Parse(s[1 : len(s)-1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q has no numeric angle", ErrInvalidFormat, text)
	}
	if angle < 0 || angle > MaxQuadrantAngle {
		return 0, fmt.Errorf("%w: angle %g must be within 0-90°", ErrInvalidFormat, angle)
	}

	switch {
	case ns == 'N' && ew == 'E':
		return angle, nil
	case ns == 'S' && ew == 'E':
		return 180 - angle, nil
	case ns == 'S' && ew == 'W':
		return 180 + angle, nil
	default: // N…W
		return 360 - angle, nil
	}
}

// Normalize reduces az into [0, 360). Non-finite input is returned unchanged.
func Normalize(az float64) float64 {
	if math.IsNaN(az) || math.IsInf(az, 0) {
		return az
	}
	az = math.Mod(az, 360)
	if az < 0 {
		az += 360
	}
	if az >= 360 { // -tiny + 360 rounds up
		az = 0
	}
	return az
}

// Split returns the quadrant of az and its angle from the reference meridian.
// az is normalized first.
func Split(az float64) (Quadrant, float64) {
	az = Normalize(az)
	switch {
	case az <= 90:
		return NE, az
	case az <= 180:
		return SE, 180 - az
	case az <= 270:
		return SW, az - 180
	default:
		return NW, 360 - az
	}
}

// Format renders az as a quadrant bearing with the given number of decimals,
// e.g. Format(120, 1) == "S60.0E". Parse(Format(az, d)) recovers az up to the
// rounding applied by d (modulo 360).
func Format(az float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	q, angle := Split(az)
	name := q.String()

	var b strings.Builder
	b.WriteByte(name[0])
	b.WriteString(strconv.FormatFloat(angle, 'f', decimals, 64))
	b.WriteByte(name[1])
	return b.String()
}

// normalize upper-cases text and drops every whitespace rune.
func normalize(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, text)
}
