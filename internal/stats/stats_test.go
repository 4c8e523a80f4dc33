package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/surfelab/gi-analysis/internal/dataset"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	t.Run("population standard deviation", func(t *testing.T) {
		t.Parallel()
		sum := Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
		assert.InDelta(t, 40, sum.Total, 1e-12)
		assert.InDelta(t, 5, sum.Mean, 1e-12)
		assert.InDelta(t, 2, sum.StdDev, 1e-12)
	})

	t.Run("stddev is zero iff all elements equal", func(t *testing.T) {
		t.Parallel()
		assert.Zero(t, Summarize([]float64{3.5, 3.5, 3.5, 3.5}).StdDev)
		assert.Positive(t, Summarize([]float64{3.5, 3.5, 3.6}).StdDev)
	})

	t.Run("empty input yields NaN mean and stddev", func(t *testing.T) {
		t.Parallel()
		sum := Summarize(nil)
		assert.Zero(t, sum.Total)
		assert.True(t, math.IsNaN(sum.Mean))
		assert.True(t, math.IsNaN(sum.StdDev))
	})
}

func TestSummarizeGrid(t *testing.T) {
	t.Parallel()

	t.Run("total equals sum over all cells", func(t *testing.T) {
		t.Parallel()
		g := &dataset.Grid{Rows: 2, Cols: 3, Cells: []int{1, 2, 3, 4, 5, 6}}
		sum := SummarizeGrid(g)
		assert.InDelta(t, 21, sum.Total, 1e-12)
		assert.InDelta(t, 21.0/6.0, sum.Mean, 1e-12)
	})

	t.Run("all-zero 16x16 grid", func(t *testing.T) {
		t.Parallel()
		g := &dataset.Grid{Rows: 16, Cols: 16, Cells: make([]int, 256)}
		sum := SummarizeGrid(g)
		assert.Zero(t, sum.Total)
		assert.Zero(t, sum.Mean)
		assert.Zero(t, sum.StdDev)
	})
}
