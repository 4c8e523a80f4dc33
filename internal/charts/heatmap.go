package charts

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"

	"github.com/surfelab/gi-analysis/internal/dataset"
)

// Fixed visibility color scale. Counts outside the range are clamped by the
// palette rather than rejected.
const (
	heatmapMin = 0
	heatmapMax = 9
)

// gridXYZ adapts a dataset.Grid to plotter.GridXYZ with row 0 at the top of
// the figure.
type gridXYZ struct {
	g *dataset.Grid
}

func (d gridXYZ) Dims() (c, r int) { return d.g.Cols, d.g.Rows }
func (d gridXYZ) X(c int) float64  { return float64(c) }
func (d gridXYZ) Y(r int) float64  { return float64(r) }
func (d gridXYZ) Z(c, r int) float64 {
	return float64(d.g.At(d.g.Rows-1-r, c))
}

// Heatmap renders a visibility-count grid as a color-mapped image with each
// cell's count centered in white text. No axis ticks or labels are drawn.
func Heatmap(g *dataset.Grid, title string) (*plot.Plot, error) {
	cm := moreland.Kindlmann()
	cm.SetMin(heatmapMin)
	cm.SetMax(heatmapMax)

	hm := plotter.NewHeatMap(gridXYZ{g: g}, cm.Palette(256))
	hm.Min = heatmapMin
	hm.Max = heatmapMax

	p := plot.New()
	p.Title.Text = title
	p.HideAxes()
	p.Add(hm)

	xys := make(plotter.XYs, 0, g.Rows*g.Cols)
	strs := make([]string, 0, g.Rows*g.Cols)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			xys = append(xys, plotter.XY{X: float64(c), Y: float64(g.Rows - 1 - r)})
			strs = append(strs, fmt.Sprintf("%d", g.At(r, c)))
		}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: strs})
	if err != nil {
		return nil, fmt.Errorf("heatmap labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = color.White
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
	}
	p.Add(labels)

	return p, nil
}
