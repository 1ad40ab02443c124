// Package border measures how continuous the seam between two tiles is.
//
// The cost of placing tile b next to tile a is the sum, over every pixel of
// the shared 1-pixel edge, of the absolute differences of all four RGBA
// channels. Lower is better: neighbours in the original image have similar
// edge pixels.
package border

import (
	"fmt"

	"github.com/gogpu/tileshuffle/internal/image"
)

// Direction names the edge of the first tile that is compared.
type Direction uint8

const (
	// Up compares a's top row with b's bottom row (b sits above a).
	Up Direction = iota

	// Down compares a's bottom row with b's top row (b sits below a).
	Down

	// Left compares a's left column with b's right column (b sits left of a).
	Left

	// Right compares a's right column with b's left column (b sits right of a).
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Cost returns the seam discontinuity between a and b when b is placed in
// direction dir of a.
//
// Both views must have identical dimensions; tiles of one grid always do, so
// a mismatch panics.
func Cost(a, b image.View, dir Direction) uint64 {
	w, h := a.Width(), a.Height()
	if w != b.Width() || h != b.Height() {
		panic(fmt.Sprintf("border: tile size mismatch %dx%d vs %dx%d", w, h, b.Width(), b.Height()))
	}

	switch dir {
	case Up:
		return rowCost(a.Row(0), b.Row(h-1))
	case Down:
		return rowCost(a.Row(h-1), b.Row(0))
	case Left:
		return columnCost(a, 0, b, w-1)
	case Right:
		return columnCost(a, w-1, b, 0)
	default:
		panic(fmt.Sprintf("border: invalid direction %d", dir))
	}
}

// rowCost sums channel differences of two equally long pixel rows.
func rowCost(p, q []byte) uint64 {
	var sum uint64
	for i := range p {
		sum += absDiff(p[i], q[i])
	}
	return sum
}

// columnCost sums channel differences of column ax of a and column bx of b.
func columnCost(a image.View, ax int, b image.View, bx int) uint64 {
	var sum uint64
	for y := range a.Height() {
		sum += rowCost(a.Pixel(ax, y), b.Pixel(bx, y))
	}
	return sum
}

func absDiff(x, y byte) uint64 {
	if x > y {
		return uint64(x - y)
	}
	return uint64(y - x)
}
