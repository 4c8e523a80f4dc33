// Package dataset loads the CSV measurement files produced by the renderer's
// test harness: fixed-shape grids of per-cell visibility counts and
// single-column timing series. Loaders fail fast with file and row context;
// shape is an explicit parameter, never inferred from the data.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Grid is a fixed-shape 2D array of integer counts, stored row-major.
type Grid struct {
	Rows  int
	Cols  int
	Cells []int
}

// At returns the cell value at row r, column c.
func (g *Grid) At(r, c int) int {
	return g.Cells[r*g.Cols+c]
}

// Floats returns the flattened cell values as float64s, row-major.
func (g *Grid) Floats() []float64 {
	out := make([]float64, len(g.Cells))
	for i, v := range g.Cells {
		out[i] = float64(v)
	}
	return out
}

// LoadGrid reads a comma-separated integer grid from path. The file must
// contain exactly rows lines of cols values each; any other shape or a
// non-integer token is an error.
func LoadGrid(path string, rows, cols int) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open grid %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = cols

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read grid %s: %w", path, err)
	}
	if len(records) != rows {
		return nil, fmt.Errorf("grid %s: expected %d rows, got %d", path, rows, len(records))
	}

	g := &Grid{Rows: rows, Cols: cols, Cells: make([]int, 0, rows*cols)}
	for i, record := range records {
		for j, field := range record {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("grid %s row %d col %d: invalid count %q", path, i+1, j+1, field)
			}
			g.Cells = append(g.Cells, v)
		}
	}
	return g, nil
}

// LoadSequence reads a single-column series of float64 values from path, one
// value per line (the first CSV field of each row).
func LoadSequence(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sequence %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read sequence %s: %w", path, err)
	}

	out := make([]float64, 0, len(records))
	for i, record := range records {
		v, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("sequence %s row %d: invalid value %q", path, i+1, record[0])
		}
		out = append(out, v)
	}
	return out, nil
}
