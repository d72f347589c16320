package video

import (
	"fmt"

	"github.com/opd-ai/yuvframe/limits"
	"github.com/sirupsen/logrus"
)

// Plane owns one contiguous pixel buffer of an I420 frame.
//
// The buffer length is the allocated size. planeSize tracks how many of those
// bytes hold valid samples and drops to zero on ResetSize without releasing
// storage. A Plane is exclusively owned by one frame; the only way to share
// its storage is Swap, which moves it.
type Plane struct {
	buffer    []byte
	stride    int
	planeSize int
}

// CreateEmptyPlane sizes the plane to allocatedSize bytes with the given
// stride. Previous contents are not preserved and the new contents are
// unspecified; callers are expected to write every sample.
func (p *Plane) CreateEmptyPlane(allocatedSize, stride, planeSize int) error {
	if allocatedSize < 1 || stride < 1 || planeSize < 1 {
		return fmt.Errorf("%w: allocated %d, stride %d, plane %d",
			ErrInvalidBufferSize, allocatedSize, stride, planeSize)
	}
	if err := limits.ValidatePlaneSize(allocatedSize); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBufferSize, err)
	}

	p.resize(allocatedSize)
	p.stride = stride
	p.planeSize = planeSize
	return nil
}

// Copy deep-copies size bytes from buffer into the plane and sets its stride.
// The plane never aliases buffer after Copy returns.
func (p *Plane) Copy(size, stride int, buffer []byte) error {
	if size < 1 || stride < 1 {
		return fmt.Errorf("%w: size %d, stride %d", ErrInvalidBufferSize, size, stride)
	}
	if len(buffer) < size {
		return fmt.Errorf("%w: source holds %d bytes, need %d", ErrInvalidBufferSize, len(buffer), size)
	}
	if err := limits.ValidatePlaneSize(size); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBufferSize, err)
	}

	p.resize(size)
	copy(p.buffer, buffer[:size])
	p.stride = stride
	p.planeSize = size
	return nil
}

// CopyPlane deep-copies other into p.
func (p *Plane) CopyPlane(other *Plane) error {
	if other == nil {
		return fmt.Errorf("%w: source plane cannot be nil", ErrInvalidBufferSize)
	}
	if p == other {
		return nil
	}
	return p.Copy(other.AllocatedSize(), other.stride, other.buffer)
}

// Swap exchanges storage and metadata with other. No bytes are copied.
func (p *Plane) Swap(other *Plane) {
	p.buffer, other.buffer = other.buffer, p.buffer
	p.stride, other.stride = other.stride, p.stride
	p.planeSize, other.planeSize = other.planeSize, p.planeSize
}

// Buffer returns the plane storage. The slice is owned by the plane and is
// only valid until the next allocation, copy or swap.
func (p *Plane) Buffer() []byte {
	return p.buffer
}

// AllocatedSize returns the plane size in bytes set by the last allocation or copy.
func (p *Plane) AllocatedSize() int {
	return len(p.buffer)
}

// Stride returns the row stride in bytes.
func (p *Plane) Stride() int {
	return p.stride
}

// IsZeroSize reports whether the plane holds no valid samples.
func (p *Plane) IsZeroSize() bool {
	return p.planeSize == 0
}

// ResetSize marks the plane as empty while keeping its storage.
func (p *Plane) ResetSize() {
	p.planeSize = 0
}

// resize makes the buffer exactly size bytes long, reusing the existing
// backing array when its capacity allows.
func (p *Plane) resize(size int) {
	if cap(p.buffer) >= size {
		p.buffer = p.buffer[:size]
		return
	}

	logrus.WithFields(logrus.Fields{
		"function":     "Plane.resize",
		"old_capacity": cap(p.buffer),
		"new_size":     size,
	}).Debug("Growing plane buffer")

	p.buffer = make([]byte, size)
}
