package project

import "errors"

// Sentinel errors for project operations.
var (
	// ErrAreaRequiresClosed indicates Area was requested for an Open traverse.
	ErrAreaRequiresClosed = errors.New("project: area calculation requires a closed traverse")

	// ErrNotComputed indicates derived data was requested before a successful Recompute.
	ErrNotComputed = errors.New("project: traverse has not been computed")

	// ErrInvalidLeg indicates a row rejected by AppendLeg or found while loading.
	ErrInvalidLeg = errors.New("project: invalid leg")

	// ErrMalformedRecord indicates a persisted record with the wrong shape.
	ErrMalformedRecord = errors.New("project: malformed project record")

	// ErrUnsupportedFormat indicates a file extension with no codec.
	ErrUnsupportedFormat = errors.New("project: unsupported file format")

	// ErrNothingToSave indicates an attempt to save a project with no rows.
	ErrNothingToSave = errors.New("project: no points to save")
)
