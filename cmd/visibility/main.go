// Package main computes summary statistics for the renderer's per-cell
// visibility counts and renders one annotated heatmap per test scenario.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gonum.org/v1/plot/vg"

	"github.com/surfelab/gi-analysis/internal/charts"
	"github.com/surfelab/gi-analysis/internal/dataset"
	"github.com/surfelab/gi-analysis/internal/results"
	"github.com/surfelab/gi-analysis/internal/stats"
)

// The simulation buckets visible samples into a 16x16 grid.
const (
	gridRows = 16
	gridCols = 16
)

// tests lists the fixed visibility inputs. The file id also names the output
// heatmap.
var tests = []struct {
	id   string
	name string
}{
	{"count_static", "Static camera"},
	{"count_jump_sweep", "Jump sweep"},
	{"count_step_sweep", "Step sweep"},
	{"count_jump_zoom_in", "Jump zoom in"},
	{"count_step_zoom_in", "Step zoom in"},
	{"count_jump_zoom_out", "Jump zoom out"},
	{"count_step_zoom_out", "Step zoom out"},
}

type config struct {
	dataDir string
	outDir  string
	dbPath  string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.dataDir, "data", "data", "directory containing count_*.csv inputs")
	flag.StringVar(&cfg.outDir, "out", "imgs", "directory to write heatmaps to")
	flag.StringVar(&cfg.dbPath, "db", "analysis.db", "results database path")
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatalf("visibility: %v", err)
	}
}

func run(cfg config) error {
	if err := os.MkdirAll(cfg.outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	db, err := results.Open(cfg.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	store := results.NewStore(db)
	runID := uuid.New().String()

	for _, test := range tests {
		grid, err := dataset.LoadGrid(filepath.Join(cfg.dataDir, test.id+".csv"), gridRows, gridCols)
		if err != nil {
			return err
		}

		sum := stats.SummarizeGrid(grid)
		fmt.Printf("Test: %-32s | Visible: %4.0f | Mean: % .3f | Dev: % .3f\n",
			test.id, sum.Total, sum.Mean, sum.StdDev)

		p, err := charts.Heatmap(grid, test.name)
		if err != nil {
			return err
		}
		out := filepath.Join(cfg.outDir, test.id+"_heatmap.png")
		if err := charts.SavePNG(p, 6*vg.Inch, 6*vg.Inch, out); err != nil {
			return err
		}

		if err := store.InsertSummary(&results.SummaryRecord{
			RunID:  runID,
			Tool:   "visibility",
			Name:   test.id,
			Total:  sum.Total,
			Mean:   sum.Mean,
			StdDev: sum.StdDev,
		}); err != nil {
			return err
		}
	}
	return nil
}
