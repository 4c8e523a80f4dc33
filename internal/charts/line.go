package charts

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Fixed y-axis range for frame-time charts, in milliseconds.
const (
	frameTimeMin = 0
	frameTimeMax = 10
)

// Series colors for the static and moving camera lines.
var lineColors = []color.Color{
	color.RGBA{R: 31, G: 119, B: 180, A: 255},
	color.RGBA{R: 255, G: 127, B: 14, A: 255},
}

// FrameLines plots one line per timing series against 1-based frame index,
// with the y-axis fixed to [0,10] ms. Both series must be the same length.
func FrameLines(series ...[]float64) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = "Frame computation time [ms]"
	p.Y.Min = frameTimeMin
	p.Y.Max = frameTimeMax

	for i, data := range series {
		pts := make(plotter.XYs, len(data))
		for j, v := range data {
			pts[j] = plotter.XY{X: float64(j + 1), Y: v}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("frame line %d: %w", i, err)
		}
		line.Color = lineColors[i%len(lineColors)]
		line.Width = vg.Points(1)
		p.Add(line)
	}

	return p, nil
}
