package tileshuffle

import (
	crand "crypto/rand"
	"io"
)

// Option configures a Shuffler during creation.
//
// Example:
//
//	// Reproducible shuffles on four workers
//	s, err := tileshuffle.New(8, 8, tileshuffle.WithSeed(42), tileshuffle.WithWorkers(4))
type Option func(*options)

// options holds optional configuration for Shuffler creation.
type options struct {
	seed    uint64
	seeded  bool
	entropy io.Reader
	workers int
	crop    bool
}

// defaultOptions returns the default Shuffler options.
func defaultOptions() options {
	return options{
		entropy: crand.Reader,
		workers: 0, // GOMAXPROCS
	}
}

// WithSeed makes encoding reproducible: two Shufflers created with the same
// seed and splits produce the same sequence of shuffles.
// WithSeed takes precedence over WithEntropy.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithEntropy sets the reader the permutation source is seeded from.
// The default is crypto/rand. The reader is consulted once, on the first
// Encode.
func WithEntropy(r io.Reader) Option {
	return func(o *options) {
		if r != nil {
			o.entropy = r
		}
	}
}

// WithWorkers sets the number of goroutines used by Decode.
// Zero or a negative value uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithCrop trims each input to the largest centered region divisible by the
// splits instead of rejecting it with a DimensionMismatchError.
func WithCrop(crop bool) Option {
	return func(o *options) {
		o.crop = crop
	}
}
