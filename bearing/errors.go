package bearing

import "errors"

// ErrInvalidFormat is returned by Parse for empty input, text that is neither
// a number nor a quadrant bearing, and quadrant angles outside [0, 90].
var ErrInvalidFormat = errors.New("bearing: invalid bearing format")
