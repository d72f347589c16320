package video

import (
	"fmt"

	"github.com/opd-ai/yuvframe/limits"
	"github.com/sirupsen/logrus"
)

// noCopy makes go vet's copylocks check flag accidental struct copies of a
// frame. Use CopyFrame or Clone for a deep copy and SwapFrame to move storage.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// I420Frame is a planar YUV 4:2:0 video frame.
//
// The frame owns three planes: a full resolution Y plane and U and V planes
// subsampled by two in both directions. Each plane has its own stride, which
// may exceed the logical row width. After any successful mutation:
//
//	strideY >= width, strideU >= (width+1)/2, strideV >= (width+1)/2
//	size(Y) == strideY * height
//	size(U) == strideU * ((height+1)/2), likewise for V
//
// A failed mutation leaves the frame exactly as it was.
//
// The zero value is an empty frame ready for use. I420Frame is not safe for
// concurrent mutation.
type I420Frame struct {
	noCopy noCopy

	planes       [NumPlanes]Plane
	width        int
	height       int
	timestamp    uint32
	renderTimeMs int64
}

// NewI420Frame creates an empty frame with zero dimensions and empty planes.
func NewI420Frame() *I420Frame {
	return &I420Frame{}
}

// CheckDimensions validates a frame geometry without side effects.
//
// It fails with ErrInvalidGeometry when width or height is below 1, when
// strideY is below width, or when strideU or strideV is below (width+1)/2.
// It also fails when a plane's stride*rows would not fit limits.MaxPlaneSize,
// so the plane sizes derived from an accepted geometry never overflow.
func CheckDimensions(width, height, strideY, strideU, strideV int) error {
	halfWidth := width/2 + width%2
	if width < 1 || height < 1 ||
		strideY < width || strideU < halfWidth || strideV < halfWidth {
		return fmt.Errorf("%w: %dx%d with strides %d/%d/%d",
			ErrInvalidGeometry, width, height, strideY, strideU, strideV)
	}

	halfHeight := height/2 + height%2
	planes := [NumPlanes]struct {
		stride int
		rows   int
	}{
		{strideY, height},
		{strideU, halfHeight},
		{strideV, halfHeight},
	}
	for i, p := range planes {
		if err := limits.ValidatePlaneGeometry(PlaneType(i).String(), p.stride, p.rows); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
		}
	}

	return nil
}

// CreateEmptyFrame sizes all three planes for the given geometry without
// copying any pixel data. Plane contents are unspecified afterwards; callers
// write samples directly into Buffer(YPlane) and friends.
func (f *I420Frame) CreateEmptyFrame(width, height, strideY, strideU, strideV int) error {
	if err := CheckDimensions(width, height, strideY, strideU, strideV); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "I420Frame.CreateEmptyFrame",
			"width":    width,
			"height":   height,
			"stride_y": strideY,
			"stride_u": strideU,
			"stride_v": strideV,
			"error":    err.Error(),
		}).Warn("Frame dimension validation failed")
		return err
	}

	sizeY := strideY * height
	halfHeight := (height + 1) / 2
	sizeU := strideU * halfHeight
	sizeV := strideV * halfHeight

	if err := f.planes[YPlane].CreateEmptyPlane(sizeY, strideY, sizeY); err != nil {
		return err
	}
	if err := f.planes[UPlane].CreateEmptyPlane(sizeU, strideU, sizeU); err != nil {
		return err
	}
	if err := f.planes[VPlane].CreateEmptyPlane(sizeV, strideV, sizeV); err != nil {
		return err
	}
	f.width = width
	f.height = height

	logrus.WithFields(logrus.Fields{
		"function": "I420Frame.CreateEmptyFrame",
		"width":    width,
		"height":   height,
		"size_y":   sizeY,
		"size_u":   sizeU,
		"size_v":   sizeV,
	}).Debug("Empty frame allocated")

	return nil
}

// CreateFrame deep-copies externally produced pixel data into the frame.
//
// Each size is the number of bytes copied from the matching buffer and must
// be at least 1 and no larger than the buffer. The frame never aliases the
// caller's buffers after CreateFrame returns. The timestamps are unchanged.
func (f *I420Frame) CreateFrame(sizeY int, bufferY []byte,
	sizeU int, bufferU []byte,
	sizeV int, bufferV []byte,
	width, height, strideY, strideU, strideV int) error {

	if err := validateSources(
		[NumPlanes]int{sizeY, sizeU, sizeV},
		[NumPlanes][]byte{bufferY, bufferU, bufferV},
	); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "I420Frame.CreateFrame",
			"size_y":   sizeY,
			"size_u":   sizeU,
			"size_v":   sizeV,
			"error":    err.Error(),
		}).Warn("Frame buffer validation failed")
		return err
	}
	if err := CheckDimensions(width, height, strideY, strideU, strideV); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "I420Frame.CreateFrame",
			"width":    width,
			"height":   height,
			"stride_y": strideY,
			"stride_u": strideU,
			"stride_v": strideV,
			"error":    err.Error(),
		}).Warn("Frame dimension validation failed")
		return err
	}

	if err := f.planes[YPlane].Copy(sizeY, strideY, bufferY); err != nil {
		return err
	}
	if err := f.planes[UPlane].Copy(sizeU, strideU, bufferU); err != nil {
		return err
	}
	if err := f.planes[VPlane].Copy(sizeV, strideV, bufferV); err != nil {
		return err
	}
	f.width = width
	f.height = height

	logrus.WithFields(logrus.Fields{
		"function": "I420Frame.CreateFrame",
		"width":    width,
		"height":   height,
		"size_y":   sizeY,
		"size_u":   sizeU,
		"size_v":   sizeV,
	}).Debug("Frame created from buffers")

	return nil
}

// validateSources checks every plane source before any plane is touched, so
// a short buffer for V cannot leave Y and U already overwritten.
func validateSources(sizes [NumPlanes]int, buffers [NumPlanes][]byte) error {
	for i, size := range sizes {
		t := PlaneType(i)
		if size < 1 {
			return fmt.Errorf("%w: %s plane size %d", ErrInvalidBufferSize, t, size)
		}
		if len(buffers[i]) < size {
			return fmt.Errorf("%w: %s plane buffer holds %d bytes, need %d",
				ErrInvalidBufferSize, t, len(buffers[i]), size)
		}
		if err := limits.ValidatePlaneSize(size); err != nil {
			return fmt.Errorf("%w: %s plane: %v", ErrInvalidBufferSize, t, err)
		}
	}
	return nil
}

// CopyFrame makes f an independent deep copy of other, timestamps included.
// On failure f is left unchanged.
func (f *I420Frame) CopyFrame(other *I420Frame) error {
	if other == nil {
		return fmt.Errorf("%w: source frame cannot be nil", ErrInvalidGeometry)
	}
	if other == f {
		return nil
	}

	err := f.CreateFrame(
		other.Size(YPlane), other.Buffer(YPlane),
		other.Size(UPlane), other.Buffer(UPlane),
		other.Size(VPlane), other.Buffer(VPlane),
		other.width, other.height,
		other.Stride(YPlane), other.Stride(UPlane), other.Stride(VPlane),
	)
	if err != nil {
		return err
	}
	f.timestamp = other.timestamp
	f.renderTimeMs = other.renderTimeMs
	return nil
}

// Clone returns a new frame holding a deep copy of f.
func (f *I420Frame) Clone() (*I420Frame, error) {
	clone := NewI420Frame()
	if err := clone.CopyFrame(f); err != nil {
		return nil, err
	}
	return clone, nil
}

// SwapFrame exchanges planes, dimensions and timestamps with other in
// constant time. No pixel data is copied. A nil other is a no-op.
func (f *I420Frame) SwapFrame(other *I420Frame) {
	if other == nil {
		return
	}

	for i := range f.planes {
		f.planes[i].Swap(&other.planes[i])
	}
	f.width, other.width = other.width, f.width
	f.height, other.height = other.height, f.height
	f.timestamp, other.timestamp = other.timestamp, f.timestamp
	f.renderTimeMs, other.renderTimeMs = other.renderTimeMs, f.renderTimeMs
}

// Buffer returns the storage of the given plane, or nil for an unrecognized
// plane type. The slice stays owned by the frame.
func (f *I420Frame) Buffer(t PlaneType) []byte {
	if p := f.plane(t); p != nil {
		return p.Buffer()
	}
	return nil
}

// Size returns the allocated byte size of the given plane, or -1 for an
// unrecognized plane type.
func (f *I420Frame) Size(t PlaneType) int {
	if p := f.plane(t); p != nil {
		return p.AllocatedSize()
	}
	return -1
}

// Stride returns the row stride of the given plane, or -1 for an
// unrecognized plane type.
func (f *I420Frame) Stride(t PlaneType) int {
	if p := f.plane(t); p != nil {
		return p.Stride()
	}
	return -1
}

// PlaneFor returns the given plane, or ErrUnrecognizedPlane.
func (f *I420Frame) PlaneFor(t PlaneType) (*Plane, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnrecognizedPlane, t)
	}
	return &f.planes[t], nil
}

// SetWidth changes the logical width without touching the planes. The new
// width must fit the existing strides.
func (f *I420Frame) SetWidth(width int) error {
	if err := CheckDimensions(width, f.height,
		f.planes[YPlane].Stride(), f.planes[UPlane].Stride(), f.planes[VPlane].Stride()); err != nil {
		return err
	}
	f.width = width
	return nil
}

// SetHeight changes the logical height without touching the planes. The new
// height must fit the existing strides and the rows already allocated in
// every plane: each plane must hold at least stride*rows bytes for it.
// A frame built by CreateFrame from planes shorter than stride*rows fails
// this check with ErrInvalidBufferSize, even for its current height.
func (f *I420Frame) SetHeight(height int) error {
	if err := CheckDimensions(f.width, height,
		f.planes[YPlane].Stride(), f.planes[UPlane].Stride(), f.planes[VPlane].Stride()); err != nil {
		return err
	}
	if err := f.checkCapacity(height); err != nil {
		logrus.WithFields(logrus.Fields{
			"function":   "I420Frame.SetHeight",
			"old_height": f.height,
			"new_height": height,
			"error":      err.Error(),
		}).Warn("Frame height exceeds allocated planes")
		return err
	}
	f.height = height
	return nil
}

// checkCapacity verifies each plane holds stride*rows bytes for height.
func (f *I420Frame) checkCapacity(height int) error {
	rows := [NumPlanes]int{height, (height + 1) / 2, (height + 1) / 2}
	for i := range f.planes {
		p := &f.planes[i]
		if need := p.Stride() * rows[i]; need > p.AllocatedSize() {
			return fmt.Errorf("%w: %s plane holds %d bytes, height %d needs %d",
				ErrInvalidBufferSize, PlaneType(i), p.AllocatedSize(), height, need)
		}
	}
	return nil
}

// Width returns the logical width of the Y plane in pixels.
func (f *I420Frame) Width() int { return f.width }

// Height returns the logical height of the Y plane in pixels.
func (f *I420Frame) Height() int { return f.height }

// Timestamp returns the capture timestamp. Its units are defined by the caller.
func (f *I420Frame) Timestamp() uint32 { return f.timestamp }

// SetTimestamp sets the capture timestamp.
func (f *I420Frame) SetTimestamp(timestamp uint32) { f.timestamp = timestamp }

// RenderTimeMs returns the target render time in milliseconds.
func (f *I420Frame) RenderTimeMs() int64 { return f.renderTimeMs }

// SetRenderTimeMs sets the target render time in milliseconds.
func (f *I420Frame) SetRenderTimeMs(renderTimeMs int64) { f.renderTimeMs = renderTimeMs }

// IsZeroSize reports whether every plane is empty.
func (f *I420Frame) IsZeroSize() bool {
	for i := range f.planes {
		if !f.planes[i].IsZeroSize() {
			return false
		}
	}
	return true
}

// ResetSize marks every plane as empty. Storage, dimensions and timestamps
// are kept so the next allocation can reuse the buffers.
func (f *I420Frame) ResetSize() {
	for i := range f.planes {
		f.planes[i].ResetSize()
	}
}

// plane is the single dispatch point for plane accessors. An unrecognized
// type is a programming error upstream; it is logged and yields nil.
func (f *I420Frame) plane(t PlaneType) *Plane {
	if !t.Valid() {
		logrus.WithFields(logrus.Fields{
			"function":   "I420Frame.plane",
			"plane_type": int(t),
		}).Error("Unrecognized plane type")
		return nil
	}
	return &f.planes[t]
}
