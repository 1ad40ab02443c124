// Package random provides the permutation source used to shuffle tiles.
//
// A Source is an explicitly owned generator handle. There is no package-level
// generator: callers construct a Source (seeded from OS entropy in
// production, from a fixed seed in tests) and keep it for as long as they
// shuffle.
//
// Thread safety: Source is NOT safe for concurrent use. Give each goroutine
// its own Source or guard it externally.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/gogpu/tileshuffle/internal/grid"
)

// ErrEntropyUnavailable is returned when the entropy source cannot supply
// seed bytes.
var ErrEntropyUnavailable = errors.New("random: entropy unavailable")

// seedBytes is the number of entropy bytes consumed per seed.
const seedBytes = 8

// Source produces uniformly random tile permutations.
type Source struct {
	rng *rand.Rand
}

// NewSource returns a Source seeded from the operating system's entropy.
func NewSource() (*Source, error) {
	return NewSourceFrom(crand.Reader)
}

// NewSourceFrom returns a Source seeded with 8 bytes read from r.
// A short read or read error fails with ErrEntropyUnavailable; there is no
// fallback seed.
func NewSourceFrom(r io.Reader) (*Source, error) {
	var buf [seedBytes]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
	}
	return NewSeeded(binary.LittleEndian.Uint64(buf[:])), nil
}

// NewSeeded returns a Source with a fixed seed. Two sources created with the
// same seed produce the same sequence of permutations.
func NewSeeded(seed uint64) *Source {
	return &Source{rng: rand.New(NewSplitMix64(seed))}
}

// Permutation returns a uniformly random permutation of [0, n).
// Every one of the n! orderings is equally likely.
func (s *Source) Permutation(n int) grid.Permutation {
	p := grid.Identity(n)
	s.rng.Shuffle(n, func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
	return p
}
