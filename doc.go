// Package tileshuffle scrambles an image by shuffling equal rectangular
// tiles and recovers a plausible original arrangement from the shuffled
// image alone.
//
// # Overview
//
// An image is split into an XSplit by YSplit grid. Encoding moves every tile
// to a uniformly random position. Decoding knows only the shuffled image and
// the grid; it searches for the arrangement whose tile seams are least
// visible, measured as the summed per-channel difference of the pixels on
// either side of each seam.
//
// # Quick Start
//
//	s, err := tileshuffle.New(8, 8)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	scrambled, err := s.Encode(img)
//	// ...
//	restored, err := s.Decode(scrambled)
//
// File and byte helpers read any registered format (PNG, JPEG, GIF, BMP,
// TIFF, WebP, QOI) and always write PNG.
//
// # Guarantees
//
// The shuffle is not cryptographic and decoding is a greedy heuristic:
// images with repetitive or flat content may not come back exactly. Decoding
// is deterministic. The same input always produces the same output,
// regardless of the number of workers.
//
// # Errors
//
// Images whose dimensions do not divide by the splits fail with
// *DimensionMismatchError unless WithCrop is set. Zero or negative splits
// fail with *InvalidSplitError. Encode fails with ErrEntropyUnavailable if
// the permutation source cannot be seeded.
//
// # Logging
//
// tileshuffle is silent by default. See SetLogger.
package tileshuffle

// Version is the current version of the library.
const Version = "0.3.0"
