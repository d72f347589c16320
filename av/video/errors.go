package video

import "errors"

// Sentinel errors for frame and plane operations.
// These errors enable reliable error classification using errors.Is().
var (
	// ErrInvalidGeometry indicates a non-positive width or height, a stride
	// too small for the width, or dimensions beyond the configured limits.
	ErrInvalidGeometry = errors.New("invalid frame geometry")

	// ErrInvalidBufferSize indicates a plane size below 1 or a source buffer
	// shorter than the size it claims to hold.
	ErrInvalidBufferSize = errors.New("invalid buffer size")

	// ErrUnrecognizedPlane indicates a PlaneType outside {Y, U, V}.
	ErrUnrecognizedPlane = errors.New("unrecognized plane type")
)
