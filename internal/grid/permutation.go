package grid

import (
	"errors"
	"fmt"
)

// ErrNotPermutation is returned by Validate when a sequence is not a
// bijection over [0, n).
var ErrNotPermutation = errors.New("grid: not a permutation")

// Permutation maps destination tile indices to source tile indices:
//
//	p[dst] = src
//
// The tile occupying src in the input image is written to dst in the output.
type Permutation []int

// Identity returns the permutation that leaves every tile in place.
func Identity(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// Validate reports whether p contains every index in [0, n) exactly once.
func (p Permutation) Validate(n int) error {
	if len(p) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrNotPermutation, len(p), n)
	}

	seen := make([]bool, n)
	for dst, src := range p {
		if src < 0 || src >= n {
			return fmt.Errorf("%w: index %d at position %d out of range", ErrNotPermutation, src, dst)
		}
		if seen[src] {
			return fmt.Errorf("%w: index %d repeated at position %d", ErrNotPermutation, src, dst)
		}
		seen[src] = true
	}
	return nil
}

// Inverse returns q such that q[p[i]] == i. p must be valid.
func (p Permutation) Inverse() Permutation {
	q := make(Permutation, len(p))
	for dst, src := range p {
		q[src] = dst
	}
	return q
}

// Clone returns a copy of p.
func (p Permutation) Clone() Permutation {
	q := make(Permutation, len(p))
	copy(q, p)
	return q
}
