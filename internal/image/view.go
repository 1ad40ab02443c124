package image

import (
	"fmt"
	"image"
)

// View is a read-only rectangular window onto an ImageBuf.
//
// A View does not own pixel data: it references the buffer it was taken from
// and must not outlive it. Coordinates passed to View methods are relative to
// the window's top-left corner.
type View struct {
	buf  *ImageBuf
	rect image.Rectangle
}

// View returns a window onto rect. It fails with ErrOutOfBounds if rect is
// empty or not fully inside the image.
func (b *ImageBuf) View(rect image.Rectangle) (View, error) {
	if rect.Empty() || !rect.In(b.Bounds()) {
		return View{}, fmt.Errorf("%w: view %v of %v", ErrOutOfBounds, rect, b.Bounds())
	}
	return View{buf: b, rect: rect}, nil
}

// Width returns the window width in pixels.
func (v View) Width() int {
	return v.rect.Dx()
}

// Height returns the window height in pixels.
func (v View) Height() int {
	return v.rect.Dy()
}

// Row returns the pixel bytes of window row y (Width()*4 bytes).
// The slice aliases the parent buffer and must be treated as read-only.
// Returns nil if y is out of range.
func (v View) Row(y int) []byte {
	if y < 0 || y >= v.rect.Dy() {
		return nil
	}
	row := v.buf.RowBytes(v.rect.Min.Y + y)
	return row[v.rect.Min.X*BytesPerPixel : v.rect.Max.X*BytesPerPixel]
}

// Pixel returns the 4 bytes of window pixel (x, y).
// Returns nil if the coordinates are out of range.
func (v View) Pixel(x, y int) []byte {
	if x < 0 || x >= v.rect.Dx() {
		return nil
	}
	row := v.Row(y)
	if row == nil {
		return nil
	}
	return row[x*BytesPerPixel : (x+1)*BytesPerPixel]
}

// CopyView copies the pixels of src into b with the top-left corner at
// dst. It fails with ErrOutOfBounds if the destination rectangle does not
// fit inside b; nothing is written in that case.
func (b *ImageBuf) CopyView(dst image.Point, src View) error {
	target := src.rect.Sub(src.rect.Min).Add(dst)
	if src.buf == nil || !target.In(b.Bounds()) {
		return fmt.Errorf("%w: copy to %v of %v", ErrOutOfBounds, target, b.Bounds())
	}

	for y := range src.Height() {
		row := b.RowBytes(dst.Y + y)
		copy(row[dst.X*BytesPerPixel:], src.Row(y))
	}
	return nil
}
