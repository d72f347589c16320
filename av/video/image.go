package video

import (
	"fmt"
	"image"

	"github.com/sirupsen/logrus"
)

// ToYCbCr deep-copies the visible width x height region of the frame into a
// tightly strided image.YCbCr with 4:2:0 subsampling. Padding beyond the
// logical width is dropped.
func (f *I420Frame) ToYCbCr() (*image.YCbCr, error) {
	if f.width < 1 || f.height < 1 {
		return nil, fmt.Errorf("%w: frame is empty", ErrInvalidGeometry)
	}
	if err := f.checkCapacity(f.height); err != nil {
		return nil, err
	}

	img := image.NewYCbCr(image.Rect(0, 0, f.width, f.height), image.YCbCrSubsampleRatio420)
	halfWidth := (f.width + 1) / 2
	halfHeight := (f.height + 1) / 2

	copyRows(img.Y, img.YStride, f.Buffer(YPlane), f.Stride(YPlane), f.width, f.height)
	copyRows(img.Cb, img.CStride, f.Buffer(UPlane), f.Stride(UPlane), halfWidth, halfHeight)
	copyRows(img.Cr, img.CStride, f.Buffer(VPlane), f.Stride(VPlane), halfWidth, halfHeight)

	return img, nil
}

// CreateFromYCbCr replaces the frame contents with a copy of img, which must
// use 4:2:0 subsampling and, for sub-images, start at even coordinates. The
// resulting planes are tightly strided. Timestamps are unchanged.
func (f *I420Frame) CreateFromYCbCr(img *image.YCbCr) error {
	if img == nil {
		return fmt.Errorf("%w: source image cannot be nil", ErrInvalidGeometry)
	}
	if img.SubsampleRatio != image.YCbCrSubsampleRatio420 {
		return fmt.Errorf("%w: subsample ratio %v is not 4:2:0", ErrInvalidGeometry, img.SubsampleRatio)
	}
	// An odd origin shifts the source chroma grid by one pixel against the frame's
	if img.Rect.Min.X%2 != 0 || img.Rect.Min.Y%2 != 0 {
		return fmt.Errorf("%w: origin %v is not on the 4:2:0 chroma grid", ErrInvalidGeometry, img.Rect.Min)
	}

	width, height := img.Rect.Dx(), img.Rect.Dy()
	halfWidth := (width + 1) / 2
	halfHeight := (height + 1) / 2
	yOff := img.YOffset(img.Rect.Min.X, img.Rect.Min.Y)
	cOff := img.COffset(img.Rect.Min.X, img.Rect.Min.Y)

	if err := CheckDimensions(width, height, width, halfWidth, halfWidth); err != nil {
		return err
	}
	sources := []struct {
		t      PlaneType
		pix    []byte
		offset int
		stride int
		cols   int
		rows   int
	}{
		{YPlane, img.Y, yOff, img.YStride, width, height},
		{UPlane, img.Cb, cOff, img.CStride, halfWidth, halfHeight},
		{VPlane, img.Cr, cOff, img.CStride, halfWidth, halfHeight},
	}
	for _, src := range sources {
		if src.stride < src.cols {
			return fmt.Errorf("%w: %s stride %d below row width %d", ErrInvalidGeometry, src.t, src.stride, src.cols)
		}
		if need := src.offset + (src.rows-1)*src.stride + src.cols; len(src.pix) < need {
			return fmt.Errorf("%w: %s samples hold %d bytes, need %d", ErrInvalidBufferSize, src.t, len(src.pix), need)
		}
	}

	if err := f.CreateEmptyFrame(width, height, width, halfWidth, halfWidth); err != nil {
		return err
	}
	for _, src := range sources {
		copyRows(f.Buffer(src.t), f.Stride(src.t), src.pix[src.offset:], src.stride, src.cols, src.rows)
	}

	logrus.WithFields(logrus.Fields{
		"function": "I420Frame.CreateFromYCbCr",
		"width":    width,
		"height":   height,
	}).Debug("Frame created from YCbCr image")

	return nil
}

// copyRows copies rows of cols samples between buffers with different strides.
func copyRows(dst []byte, dstStride int, src []byte, srcStride, cols, rows int) {
	for y := 0; y < rows; y++ {
		copy(dst[y*dstStride:y*dstStride+cols], src[y*srcStride:y*srcStride+cols])
	}
}
