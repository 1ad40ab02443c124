package tileshuffle

import (
	"gonum.org/v1/gonum/stat"

	"github.com/gogpu/tileshuffle/internal/solve"
)

// Report describes a reconstruction search.
type Report struct {
	// Permutation maps each output tile to a tile of the decoded input:
	// output tile i is input tile Permutation[i], both in row-major order.
	Permutation []int

	// Cost is the summed border cost of the chosen arrangement.
	Cost uint64

	// Start is the input tile placed in the top-left corner.
	Start int

	// Candidates is the number of arrangements evaluated, one per tile.
	Candidates int

	// MeanCost and StdDevCost summarize the costs of all candidates.
	// StdDevCost is zero when there is a single candidate.
	MeanCost   float64
	StdDevCost float64
}

func newReport(res solve.Result) *Report {
	costs := make([]float64, len(res.Costs))
	for i, c := range res.Costs {
		costs[i] = float64(c)
	}

	r := &Report{
		Permutation: res.Permutation.Clone(),
		Cost:        res.Cost,
		Start:       res.Start,
		Candidates:  len(costs),
	}
	if len(costs) > 1 {
		r.MeanCost, r.StdDevCost = stat.MeanStdDev(costs, nil)
	} else if len(costs) == 1 {
		r.MeanCost = costs[0]
	}
	return r
}
