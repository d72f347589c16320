// Package video provides the planar YUV 4:2:0 (I420) frame buffer used by
// capture, encode and render pipelines.
//
// An I420Frame owns three planes: a full resolution luminance plane (Y) and
// two chrominance planes (U, V) subsampled by two in both directions. Each
// plane has an independent stride, which may be wider than the visible row
// to allow padding:
//
//	Y: strideY * height bytes
//	U: strideU * ((height+1)/2) bytes
//	V: strideV * ((height+1)/2) bytes
//
// # Creating Frames
//
// Allocate planes and write pixels into them directly:
//
//	frame := video.NewI420Frame()
//	if err := frame.CreateEmptyFrame(640, 480, 640, 320, 320); err != nil {
//	    return fmt.Errorf("allocation failed: %w", err)
//	}
//	y := frame.Buffer(video.YPlane)
//
// Or copy externally produced planes, for example from a capture device.
// The frame never aliases the source buffers:
//
//	err := frame.CreateFrame(len(y), y, len(u), u, len(v), v,
//	    width, height, width, (width+1)/2, (width+1)/2)
//
// # Copy and Swap
//
// CopyFrame and Clone make independent deep copies, timestamps included.
// SwapFrame exchanges storage and metadata between two frames in constant
// time without copying pixel data, which lets a pipeline stage hand a frame
// to the next without allocation:
//
//	next.SwapFrame(current)
//
// Frames must not be copied by value. Use CopyFrame, Clone or SwapFrame.
//
// # Error Handling
//
// Mutating operations return errors that wrap ErrInvalidGeometry or
// ErrInvalidBufferSize and never partially modify the frame. Plane accessors
// keep the sentinel convention: Buffer returns nil, Size and Stride return
// -1 for a PlaneType outside {YPlane, UPlane, VPlane}. PlaneFor reports the
// same condition as ErrUnrecognizedPlane.
//
// # Image Interop
//
// ToYCbCr and CreateFromYCbCr convert to and from *image.YCbCr with
// image.YCbCrSubsampleRatio420, so frames can be handed to the standard
// library image codecs.
//
// # Thread Safety
//
// I420Frame and Plane are not synchronized. Guard a frame with external
// locking when more than one goroutine mutates it.
package video
