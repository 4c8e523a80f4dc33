// Package main renders per-stage timing bar charts for the surfel pipeline,
// one chart per camera-motion condition.
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

// conditions lists the fixed camera-motion inputs.
var conditions = []struct {
	id   string
	name string
}{
	{"static", "Static camera"},
	{"moving", "Moving camera"},
}

// stages names the surfel pipeline stages in execution order. Each input CSV
// holds one timing per stage, in this order.
var stages = []string{
	"Acceleration structure fill (1x1 kernel)",
	"Surfel removal by density",
	"Surfel removal by usage",
	"Surfel insertion by density",
	"Acceleration structure fill (5x5 kernel)",
	"Initial surfel sampling",
	"Sample sharing between surfels",
	"Surfel luminance update",
	"Pixel lighting texture write",
}

type config struct {
	dataDir string
	outDir  string
	dbPath  string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.dataDir, "data", "data", "directory containing stage timing CSV inputs")
	flag.StringVar(&cfg.outDir, "out", "imgs", "directory to write charts to")
	flag.StringVar(&cfg.dbPath, "db", "analysis.db", "results database path")
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatalf("stage-perf: %v", err)
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

	for _, cond := range conditions {
		data, err := dataset.LoadSequence(filepath.Join(cfg.dataDir, cond.id+".csv"))
		if err != nil {
			return err
		}
		if len(data) != len(stages) {
			return fmt.Errorf("%s: expected %d stage timings, got %d", cond.id, len(stages), len(data))
		}

		sum := stats.Summarize(data)
		fmt.Printf("Name: %-32s  Mean: %.3f  Std: %.3f\n", cond.name, sum.Mean, sum.StdDev)

		p, err := charts.StageBars(data, stages)
		if err != nil {
			return err
		}
		out := filepath.Join(cfg.outDir, cond.id+".png")
		if err := charts.SavePNG(p, 10*vg.Inch, 4.8*vg.Inch, out); err != nil {
			return err
		}

		if err := store.InsertSummary(&results.SummaryRecord{
			RunID:  runID,
			Tool:   "stage-perf",
			Name:   cond.id,
			Total:  sum.Total,
			Mean:   sum.Mean,
			StdDev: sum.StdDev,
		}); err != nil {
			return err
		}
	}
	return nil
}
