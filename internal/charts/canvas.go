// Package charts renders the analysis figures: annotated visibility heatmaps,
// frame-time line charts, and log-axis stage bar charts. Every figure is a
// fresh *plot.Plot drawn onto its own canvas, so no state leaks between the
// images produced in one run.
package charts

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// outputDPI matches the resolution the figures are published at.
const outputDPI = 600

// SavePNG writes p to path as a PNG at 600 DPI with a transparent background.
func SavePNG(p *plot.Plot, w, h vg.Length, path string) error {
	c := vgimg.NewWith(
		vgimg.UseWH(w, h),
		vgimg.UseDPI(outputDPI),
		vgimg.UseBackgroundColor(color.Transparent),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
