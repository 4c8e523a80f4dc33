// Package main reports per-frame timing statistics for each rendering
// technique and plots static and moving camera runs as one chart per
// technique.
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

// frameWindow is how many frames of each capture are analysed. The captures
// run longer but only the first 60 frames are comparable across engines.
const frameWindow = 60

// scenarios lists the fixed inputs, ordered static/moving per technique.
var scenarios = []struct {
	id   string
	name string
}{
	{"godot_static", "Godot static camera"},
	{"godot_moving", "Godot moving camera"},
	{"surfels_static", "Surfels static camera"},
	{"surfels_moving", "Surfels moving camera"},
	{"ue5_static", "Unreal Engine 5 static camera"},
	{"ue5_moving", "Unreal Engine 5 moving camera"},
}

// techniques names the output chart per static/moving scenario pair.
var techniques = []string{"godot", "surfels", "ue5"}

type config struct {
	dataDir string
	outDir  string
	dbPath  string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.dataDir, "data", "data", "directory containing frame timing CSV inputs")
	flag.StringVar(&cfg.outDir, "out", "imgs", "directory to write charts to")
	flag.StringVar(&cfg.dbPath, "db", "analysis.db", "results database path")
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatalf("frame-perf: %v", err)
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

	series := make([][]float64, 0, len(scenarios))
	for _, sc := range scenarios {
		data, err := dataset.LoadSequence(filepath.Join(cfg.dataDir, sc.id+".csv"))
		if err != nil {
			return err
		}
		if len(data) > frameWindow {
			data = data[:frameWindow]
		}
		series = append(series, data)

		sum := stats.Summarize(data)
		fmt.Printf("Name: %-32s  Mean: %.3f  Std: %.3f\n", sc.name, sum.Mean, sum.StdDev)

		if err := store.InsertSummary(&results.SummaryRecord{
			RunID:  runID,
			Tool:   "frame-perf",
			Name:   sc.id,
			Total:  sum.Total,
			Mean:   sum.Mean,
			StdDev: sum.StdDev,
		}); err != nil {
			return err
		}
	}

	for i, technique := range techniques {
		static := series[2*i]
		moving := series[2*i+1]

		p, err := charts.FrameLines(static, moving)
		if err != nil {
			return err
		}
		out := filepath.Join(cfg.outDir, technique+".png")
		if err := charts.SavePNG(p, 6.4*vg.Inch, 4.8*vg.Inch, out); err != nil {
			return err
		}
	}
	return nil
}
