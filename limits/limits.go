// Package limits provides centralized plane size limits for planar video
// buffers. This ensures consistent validation across different components of the system.
package limits

import (
	"errors"
	"fmt"
	"math"
)

const (
	// MaxPlaneSize is the absolute maximum byte size of a single plane.
	// Bounding it by math.MaxInt32 keeps stride*rows representable in int
	// on every platform, including 32-bit ones.
	MaxPlaneSize = math.MaxInt32
)

var (
	// ErrDimensionOutOfRange indicates a non-positive stride or row count
	ErrDimensionOutOfRange = errors.New("dimension out of range")

	// ErrPlaneTooLarge indicates a plane exceeds MaxPlaneSize
	ErrPlaneTooLarge = errors.New("plane too large")
)

// ValidatePlaneGeometry validates that a plane of rows rows at the given
// stride fits in MaxPlaneSize. The product is never computed unless it is
// known to fit, so the check itself cannot overflow.
// name identifies the plane in the returned error.
func ValidatePlaneGeometry(name string, stride, rows int) error {
	if stride < 1 || rows < 1 {
		return fmt.Errorf("%w: %s plane stride %d, rows %d", ErrDimensionOutOfRange, name, stride, rows)
	}
	if stride > MaxPlaneSize/rows {
		return fmt.Errorf("%w: %s plane stride %d x %d rows exceeds limit %d",
			ErrPlaneTooLarge, name, stride, rows, MaxPlaneSize)
	}
	return nil
}

// ValidatePlaneSize validates a plane byte size against MaxPlaneSize.
func ValidatePlaneSize(size int) error {
	if size > MaxPlaneSize {
		return fmt.Errorf("%w: size %d exceeds limit %d", ErrPlaneTooLarge, size, MaxPlaneSize)
	}
	return nil
}
