// Package solve reconstructs a tile arrangement from a shuffled image.
//
// The search is a multi-start greedy assembly. For every tile as the
// top-left starting point, the grid is filled in row-major order: the first
// tile of each row is the available tile whose top edge best continues the
// tile above it; every other tile is the one whose left edge best continues
// the tile to its left. Each complete assembly is scored by its global cost
// (the summed border cost of all adjacent pairs) and the cheapest one wins.
//
// Candidates are independent and run on a parallel.WorkerPool. The result
// does not depend on the number of workers: ties in every comparison go to
// the lowest tile index or starting tile.
package solve

import (
	"fmt"

	"github.com/gogpu/tileshuffle/internal/border"
	"github.com/gogpu/tileshuffle/internal/grid"
	"github.com/gogpu/tileshuffle/internal/image"
	"github.com/gogpu/tileshuffle/internal/parallel"
)

// Result is the outcome of a reconstruction.
type Result struct {
	// Permutation maps destination tiles to tiles of the shuffled image.
	Permutation grid.Permutation

	// Cost is the global cost of Permutation.
	Cost uint64

	// Start is the starting tile of the winning candidate.
	Start int

	// Costs holds the global cost of every candidate, indexed by starting tile.
	Costs []uint64
}

// Solver runs reconstructions on a worker pool.
//
// Thread safety: Solver is safe for concurrent use if its pool is.
type Solver struct {
	pool *parallel.WorkerPool
}

// NewSolver returns a Solver that evaluates candidates on pool.
// The caller keeps ownership of the pool.
func NewSolver(pool *parallel.WorkerPool) *Solver {
	return &Solver{pool: pool}
}

// candidate is one complete greedy assembly.
type candidate struct {
	perm grid.Permutation
	cost uint64
}

// Reconstruct searches for the arrangement of img's tiles with the lowest
// border discontinuity. The search always completes; the only error is an
// image too small for g, wrapping image.ErrOutOfBounds.
func (s *Solver) Reconstruct(img *image.ImageBuf, g grid.Geometry) (Result, error) {
	tiles, err := Tiles(img, g)
	if err != nil {
		return Result{}, err
	}

	candidates := parallel.Map(s.pool, len(tiles), func(start int) candidate {
		p := assemble(tiles, g, start)
		return candidate{perm: p, cost: GlobalCost(tiles, g, p)}
	})

	// Strict comparison keeps the lowest start among equal costs.
	best := 0
	costs := make([]uint64, len(candidates))
	for i, c := range candidates {
		costs[i] = c.cost
		if c.cost < candidates[best].cost {
			best = i
		}
	}

	return Result{
		Permutation: candidates[best].perm,
		Cost:        candidates[best].cost,
		Start:       best,
		Costs:       costs,
	}, nil
}

// Tiles returns read-only views of every tile of img, indexed by the tile's
// current position.
func Tiles(img *image.ImageBuf, g grid.Geometry) ([]image.View, error) {
	tiles := make([]image.View, g.Total())
	for i := range tiles {
		v, err := img.View(g.Rect(i))
		if err != nil {
			return nil, fmt.Errorf("solve: tile %d: %w", i, err)
		}
		tiles[i] = v
	}
	return tiles, nil
}

// assemble grows one greedy arrangement with start in the top-left cell.
func assemble(tiles []image.View, g grid.Geometry, start int) grid.Permutation {
	available := make([]bool, len(tiles))
	for i := range available {
		available[i] = true
	}

	p := make(grid.Permutation, 0, len(tiles))
	for row := range g.YSplit {
		for col := range g.XSplit {
			var next int
			switch {
			case row == 0 && col == 0:
				next = start
			case col == 0:
				above := tiles[p[g.Index(0, row-1)]]
				next = nearest(tiles, available, above, border.Down)
			default:
				left := tiles[p[len(p)-1]]
				next = nearest(tiles, available, left, border.Right)
			}
			available[next] = false
			p = append(p, next)
		}
	}
	return p
}

// nearest returns the available tile with the lowest border cost against
// anchor in direction dir. Ties go to the lowest index.
func nearest(tiles []image.View, available []bool, anchor image.View, dir border.Direction) int {
	best := -1
	var bestCost uint64
	for i, ok := range available {
		if !ok {
			continue
		}
		c := border.Cost(anchor, tiles[i], dir)
		if best < 0 || c < bestCost {
			best, bestCost = i, c
		}
	}
	return best
}

// GlobalCost sums the border cost of every vertically and horizontally
// adjacent pair in the arrangement p, where p[dst] indexes tiles.
func GlobalCost(tiles []image.View, g grid.Geometry, p grid.Permutation) uint64 {
	var sum uint64

	// vertical seams
	for col := range g.XSplit {
		for row := range g.YSplit - 1 {
			upper := tiles[p[g.Index(col, row)]]
			lower := tiles[p[g.Index(col, row+1)]]
			sum += border.Cost(upper, lower, border.Down)
		}
	}

	// horizontal seams
	for row := range g.YSplit {
		for col := range g.XSplit - 1 {
			left := tiles[p[g.Index(col, row)]]
			right := tiles[p[g.Index(col+1, row)]]
			sum += border.Cost(left, right, border.Right)
		}
	}

	return sum
}
