package tileshuffle

import (
	"github.com/gogpu/tileshuffle/internal/arrange"
	"github.com/gogpu/tileshuffle/internal/grid"
	intImage "github.com/gogpu/tileshuffle/internal/image"
	"github.com/gogpu/tileshuffle/internal/random"
)

// DimensionMismatchError reports an image whose width or height is not
// divisible by the split factors. It carries the exact inputs.
type DimensionMismatchError = grid.DimensionMismatchError

// InvalidSplitError reports a zero or negative split factor.
type InvalidSplitError = grid.InvalidSplitError

// ConvertError reports a tile copy that could not complete.
type ConvertError = arrange.ConvertError

// Sentinel errors, compared with errors.Is.
var (
	// ErrEntropyUnavailable is returned by Encode when the permutation source
	// cannot be seeded.
	ErrEntropyUnavailable = random.ErrEntropyUnavailable

	// ErrUnsupportedFormat is returned when input bytes are not a registered
	// image format.
	ErrUnsupportedFormat = intImage.ErrUnsupportedFormat

	// ErrEmptyData is returned by the byte helpers for empty input.
	ErrEmptyData = intImage.ErrEmptyData
)
