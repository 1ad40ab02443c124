// Package arrange relocates the tiles of an image according to a permutation.
package arrange

import (
	"fmt"

	"github.com/gogpu/tileshuffle/internal/grid"
	"github.com/gogpu/tileshuffle/internal/image"
)

// ConvertError is returned when a tile cannot be copied into place.
// It is unreachable when the geometry was computed from the same image,
// but a caller can pair a geometry with a mismatched image.
type ConvertError struct {
	// Dst is the destination tile index.
	Dst int

	// Src is the source tile index.
	Src int

	// Err is the underlying cause.
	Err error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("arrange: copy tile %d to %d: %v", e.Src, e.Dst, e.Err)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}

// Arrange returns a new image in which destination tile d holds the pixels
// of source tile p[d] of src. src is never modified.
//
// A permutation whose length differs from g.Total(), an out-of-range index,
// or a tile rectangle outside either image yields a *ConvertError. Nothing
// panics.
func Arrange(src *image.ImageBuf, g grid.Geometry, p grid.Permutation) (*image.ImageBuf, error) {
	if len(p) != g.Total() {
		return nil, &ConvertError{Dst: len(p), Src: -1,
			Err: fmt.Errorf("%w: permutation length %d, want %d", image.ErrOutOfBounds, len(p), g.Total())}
	}

	dst, err := image.NewImageBuf(g.Width, g.Height)
	if err != nil {
		return nil, &ConvertError{Dst: -1, Src: -1, Err: err}
	}

	for d, s := range p {
		if s < 0 || s >= g.Total() {
			return nil, &ConvertError{Dst: d, Src: s,
				Err: fmt.Errorf("%w: source tile %d", image.ErrOutOfBounds, s)}
		}

		view, err := src.View(g.Rect(s))
		if err != nil {
			return nil, &ConvertError{Dst: d, Src: s, Err: err}
		}
		if err := dst.CopyView(g.Rect(d).Min, view); err != nil {
			return nil, &ConvertError{Dst: d, Src: s, Err: err}
		}
	}

	return dst, nil
}
