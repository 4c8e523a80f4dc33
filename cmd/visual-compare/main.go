// Package main scores rendered reference images against a ground-truth
// render using mean-squared-error and structural similarity over the images'
// brightness channel.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/surfelab/gi-analysis/internal/imgmetrics"
	"github.com/surfelab/gi-analysis/internal/results"
)

// reference is the ground-truth render the others are compared against.
var reference = struct {
	id   string
	name string
}{"blender", "Blender"}

// comparisons lists the renders scored against the reference.
var comparisons = []struct {
	id   string
	name string
}{
	{"godot_4", "Godot 4"},
	{"unreal_engine_5", "Unreal Engine 5"},
	{"surfels", "Surfels"},
}

type config struct {
	imgDir string
	dbPath string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.imgDir, "imgs", "imgs", "directory containing the rendered PNG images")
	flag.StringVar(&cfg.dbPath, "db", "analysis.db", "results database path")
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatalf("visual-compare: %v", err)
	}
}

func run(cfg config) error {
	db, err := results.Open(cfg.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	store := results.NewStore(db)
	runID := uuid.New().String()

	ref, err := imgmetrics.LoadValueChannel(filepath.Join(cfg.imgDir, reference.id+".png"))
	if err != nil {
		return err
	}

	for _, cmp := range comparisons {
		img, err := imgmetrics.LoadValueChannel(filepath.Join(cfg.imgDir, cmp.id+".png"))
		if err != nil {
			return err
		}

		mse, err := imgmetrics.MSE(ref, img)
		if err != nil {
			return fmt.Errorf("%s: %w", cmp.id, err)
		}
		ssim, err := imgmetrics.SSIM(ref, img)
		if err != nil {
			return fmt.Errorf("%s: %w", cmp.id, err)
		}

		fmt.Printf("Name: %-20s   MSE: %.5f   SSIM: %.5f\n", cmp.name, mse, ssim)

		if err := store.InsertSimilarity(&results.SimilarityRecord{
			RunID:     runID,
			Reference: reference.id,
			Name:      cmp.id,
			MSE:       mse,
			SSIM:      ssim,
		}); err != nil {
			return err
		}
	}
	return nil
}
