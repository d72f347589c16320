// Package limits provides centralized plane size constants and validation
// functions for planar video buffers. Every component that sizes a plane goes
// through these checks, so plane arithmetic never overflows int.
//
// # Plane Size Limit
//
// MaxPlaneSize (math.MaxInt32 bytes) is the largest byte size of a single
// plane. Frame width, height and stride have no limits of their own; only
// their product per plane is bounded.
//
// # Validation Functions
//
//	if err := limits.ValidatePlaneGeometry("Y", strideY, height); err != nil {
//	    // errors.Is(err, limits.ErrPlaneTooLarge)
//	}
//
//	if err := limits.ValidatePlaneSize(size); err != nil {
//	    // errors.Is(err, limits.ErrPlaneTooLarge)
//	}
//
// # Error Types
//
//   - ErrDimensionOutOfRange: a stride or row count is below 1
//   - ErrPlaneTooLarge: a plane size exceeds MaxPlaneSize
package limits
