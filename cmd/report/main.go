// Package main builds an HTML dashboard from the recorded analysis results.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/surfelab/gi-analysis/internal/report"
	"github.com/surfelab/gi-analysis/internal/results"
)

type config struct {
	dbPath string
	outDir string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.dbPath, "db", "analysis.db", "results database path")
	flag.StringVar(&cfg.outDir, "out", "imgs", "directory to write the dashboard to")
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatalf("report: %v", err)
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

	var d report.DashboardData
	if d.Visibility, err = store.ListSummaries("visibility"); err != nil {
		return err
	}
	if d.FrameTimes, err = store.ListSummaries("frame-perf"); err != nil {
		return err
	}
	if d.StageTimes, err = store.ListSummaries("stage-perf"); err != nil {
		return err
	}
	if d.Similarities, err = store.ListSimilarities(); err != nil {
		return err
	}

	out := filepath.Join(cfg.outDir, "dashboard.html")
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := report.WriteDashboard(f, d); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.Printf("dashboard written to %s", out)
	return nil
}
