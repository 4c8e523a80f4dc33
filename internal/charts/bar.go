package charts

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
)

// Fixed x-axis range for stage-time charts, in milliseconds. The axis is
// logarithmic, so bars are anchored at stageTimeMin rather than zero.
const (
	stageTimeMin = 0.001
	stageTimeMax = 30
)

const barHalfHeight = 0.4

var barColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// StageBars renders per-stage timings as horizontal bars on a logarithmic
// x-axis spanning [0.001, 30] ms. The first value is drawn topmost and each
// bar is annotated with its timing at 4 decimal places just past its end.
// Bars are built as polygons because a zero-anchored bar cannot be placed on
// a log scale.
func StageBars(values []float64, stages []string) (*plot.Plot, error) {
	if len(values) != len(stages) {
		return nil, fmt.Errorf("stage bars: %d values for %d stages", len(values), len(stages))
	}

	p := plot.New()
	p.X.Label.Text = "Stage computation time [ms]"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.X.Min = stageTimeMin
	p.X.Max = stageTimeMax
	p.Y.Min = -2 * barHalfHeight
	p.Y.Max = float64(len(values)-1) + 2*barHalfHeight

	ticks := make([]plot.Tick, len(values))
	labelXYs := make(plotter.XYs, len(values))
	labelStrs := make([]string, len(values))
	for i, v := range values {
		// First stage at the topmost y position.
		y := float64(len(values) - 1 - i)

		x := v
		if x < stageTimeMin {
			x = stageTimeMin
		}
		bar, err := plotter.NewPolygon(plotter.XYs{
			{X: stageTimeMin, Y: y - barHalfHeight},
			{X: x, Y: y - barHalfHeight},
			{X: x, Y: y + barHalfHeight},
			{X: stageTimeMin, Y: y + barHalfHeight},
		})
		if err != nil {
			return nil, fmt.Errorf("stage bar %d: %w", i, err)
		}
		bar.Color = barColor
		p.Add(bar)

		ticks[i] = plot.Tick{Value: y, Label: stages[i]}
		labelXYs[i] = plotter.XY{X: x * 1.2, Y: y}
		labelStrs[i] = fmt.Sprintf("%.4f", v)
	}
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: labelStrs})
	if err != nil {
		return nil, fmt.Errorf("stage bar labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].YAlign = text.YCenter
	}
	p.Add(labels)

	return p, nil
}
