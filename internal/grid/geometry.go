// Package grid provides the tile geometry used by tileshuffle.
//
// An image of Width x Height pixels is divided into an XSplit x YSplit grid
// of equally sized tiles. Unlike a rendering tile grid there are no edge
// tiles: the image must divide exactly, otherwise Compute fails. Tiles are
// addressed by a flat row-major index:
//
//	index = row*XSplit + col
//
// Thread safety: Geometry is an immutable value and safe for concurrent use.
package grid

import (
	"fmt"
	"image"
)

// InvalidSplitError is returned when a split factor is zero or negative.
type InvalidSplitError struct {
	XSplit int
	YSplit int
}

func (e *InvalidSplitError) Error() string {
	return fmt.Sprintf("grid: split factors must be positive, got (%d, %d)", e.XSplit, e.YSplit)
}

// DimensionMismatchError is returned when the image dimensions are not
// divisible by the split factors. It carries the exact inputs.
type DimensionMismatchError struct {
	Width  int
	Height int
	XSplit int
	YSplit int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("grid: image dimensions (%d, %d) are not divisible by (%d, %d)",
		e.Width, e.Height, e.XSplit, e.YSplit)
}

// Geometry describes how an image is cut into tiles.
type Geometry struct {
	// XSplit is the number of tiles horizontally.
	XSplit int

	// YSplit is the number of tiles vertically.
	YSplit int

	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.
	Height int

	// TileWidth is the width of every tile in pixels.
	TileWidth int

	// TileHeight is the height of every tile in pixels.
	TileHeight int
}

// Compute validates the split factors against the image dimensions and
// derives the tile size. It is a pure function.
//
// Compute returns *InvalidSplitError if a split is not positive and
// *DimensionMismatchError if width or height leave a remainder.
func Compute(width, height, xSplit, ySplit int) (Geometry, error) {
	if xSplit <= 0 || ySplit <= 0 {
		return Geometry{}, &InvalidSplitError{XSplit: xSplit, YSplit: ySplit}
	}
	if width%xSplit != 0 || height%ySplit != 0 {
		return Geometry{}, &DimensionMismatchError{
			Width:  width,
			Height: height,
			XSplit: xSplit,
			YSplit: ySplit,
		}
	}

	return Geometry{
		XSplit:     xSplit,
		YSplit:     ySplit,
		Width:      width,
		Height:     height,
		TileWidth:  width / xSplit,
		TileHeight: height / ySplit,
	}, nil
}

// Total returns the number of tiles in the grid.
func (g Geometry) Total() int {
	return g.XSplit * g.YSplit
}

// Cell returns the grid column and row of tile index t.
func (g Geometry) Cell(t int) (col, row int) {
	return t % g.XSplit, t / g.XSplit
}

// Index returns the tile index of the cell at (col, row).
func (g Geometry) Index(col, row int) int {
	return row*g.XSplit + col
}

// Rect returns the pixel rectangle covered by tile index t.
func (g Geometry) Rect(t int) image.Rectangle {
	col, row := g.Cell(t)
	x := col * g.TileWidth
	y := row * g.TileHeight
	return image.Rect(x, y, x+g.TileWidth, y+g.TileHeight)
}

// Bounds returns the full image rectangle.
func (g Geometry) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Width, g.Height)
}

// Divisors returns every split factor that divides n exactly, in ascending
// order. It returns nil for n <= 0.
func Divisors(n int) []int {
	if n <= 0 {
		return nil
	}

	var small, large []int
	for i := 1; i*i <= n; i++ {
		if n%i != 0 {
			continue
		}
		small = append(small, i)
		if j := n / i; j != i {
			large = append(large, j)
		}
	}

	// large was collected in descending order
	for i := len(large) - 1; i >= 0; i-- {
		small = append(small, large[i])
	}
	return small
}
