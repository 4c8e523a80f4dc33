// Package stats computes the descriptive statistics reported by the analysis
// tools: total, mean, and population standard deviation.
package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/surfelab/gi-analysis/internal/dataset"
)

// Summary holds the statistics printed for one input.
type Summary struct {
	Total  float64
	Mean   float64
	StdDev float64
}

// Summarize computes summary statistics over a sequence. The standard
// deviation is the population form (divide by N). An empty input yields NaN
// mean and standard deviation, matching the underlying library.
func Summarize(xs []float64) Summary {
	return Summary{
		Total:  floats.Sum(xs),
		Mean:   stat.Mean(xs, nil),
		StdDev: stat.PopStdDev(xs, nil),
	}
}

// SummarizeGrid computes summary statistics over all cells of a grid,
// flattened. Total is the sum of all counts.
func SummarizeGrid(g *dataset.Grid) Summary {
	return Summarize(g.Floats())
}
