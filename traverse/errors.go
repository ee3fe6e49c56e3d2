package traverse

import "errors"

// Sentinel errors for traverse operations. Per-leg failures are wrapped as
// "leg <n>: <sentinel>" where n is the 1-based position in the input list.
var (
	// ErrNoPoints indicates Compute was called with no legs at all.
	ErrNoPoints = errors.New("traverse: no points entered")

	// ErrInvalidDistance indicates a non-initial leg distance is not a positive number.
	ErrInvalidDistance = errors.New("traverse: distance must be a positive number")

	// ErrInvalidCoordinate indicates the starting easting or northing is not a number.
	ErrInvalidCoordinate = errors.New("traverse: invalid starting coordinate")

	// ErrUnknownKind is returned by ParseKind for names other than "Open" and "Closed".
	ErrUnknownKind = errors.New("traverse: unknown traverse type")

	// ErrDegenerateTraverse marks a closed traverse whose perimeter is zero,
	// so there is nothing to distribute the misfit over. It is reported
	// through Adjustment.Err, never as a failure of Adjust itself.
	ErrDegenerateTraverse = errors.New("traverse: zero-perimeter traverse cannot be adjusted")
)
