package video

import "fmt"

// PlaneType identifies one of the three planes of an I420 frame.
type PlaneType int

const (
	// YPlane is the full resolution luminance plane.
	YPlane PlaneType = iota
	// UPlane is the Cb chrominance plane, subsampled 2x2.
	UPlane
	// VPlane is the Cr chrominance plane, subsampled 2x2.
	VPlane

	// NumPlanes is the number of planes in an I420 frame.
	NumPlanes = 3
)

// Valid reports whether t names one of YPlane, UPlane or VPlane.
func (t PlaneType) Valid() bool {
	return t >= YPlane && t < NumPlanes
}

func (t PlaneType) String() string {
	switch t {
	case YPlane:
		return "Y"
	case UPlane:
		return "U"
	case VPlane:
		return "V"
	default:
		return fmt.Sprintf("PlaneType(%d)", int(t))
	}
}
