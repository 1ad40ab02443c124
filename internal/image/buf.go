// Package image provides the pixel buffers tileshuffle operates on.
//
// All buffers hold 8-bit non-premultiplied RGBA (4 bytes per pixel) in
// compact row-major order. Buffers are filled from standard library images
// with FromStdImage, tiles are read through View, a non-owning window onto
// an ImageBuf, and written with CopyView.
package image

import (
	"errors"
	"image"
)

// BytesPerPixel is the size of one RGBA8 pixel.
const BytesPerPixel = 4

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrOutOfBounds is returned when a rectangle lies outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// ImageBuf is a contiguous RGBA8 image buffer without row padding.
//
// Thread safety: ImageBuf is safe for concurrent read access. CopyView
// requires external synchronization.
type ImageBuf struct {
	data   []byte
	width  int
	height int
}

// NewImageBuf creates a zeroed (transparent black) buffer of the given size.
func NewImageBuf(width, height int) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &ImageBuf{
		data:   make([]byte, width*height*BytesPerPixel),
		width:  width,
		height: height,
	}, nil
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Bounds returns the image rectangle, anchored at the origin.
func (b *ImageBuf) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// stride is the number of bytes per row.
func (b *ImageBuf) stride() int {
	return b.width * BytesPerPixel
}

// RowBytes returns the pixel bytes of row y.
// Returns nil if y is out of bounds.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride()
	return b.data[start : start+b.stride()]
}
