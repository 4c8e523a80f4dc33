// Package report renders an HTML dashboard of recorded analysis results
// using go-echarts.
package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/surfelab/gi-analysis/internal/results"
)

// DashboardData holds the recorded results the dashboard is built from.
type DashboardData struct {
	Visibility   []*results.SummaryRecord
	FrameTimes   []*results.SummaryRecord
	StageTimes   []*results.SummaryRecord
	Similarities []*results.SimilarityRecord
}

// WriteDashboard renders one HTML page with a chart per result family. Empty
// families are skipped.
func WriteDashboard(w io.Writer, d DashboardData) error {
	page := components.NewPage()
	page.PageTitle = "Surfel GI analysis"

	if len(d.Visibility) > 0 {
		page.AddCharts(summaryBar("Visible samples per cell", "mean count", d.Visibility))
	}
	if len(d.FrameTimes) > 0 {
		page.AddCharts(summaryBar("Frame computation time", "mean ms", d.FrameTimes))
	}
	if len(d.StageTimes) > 0 {
		page.AddCharts(summaryBar("Stage computation time", "mean ms", d.StageTimes))
	}
	if len(d.Similarities) > 0 {
		page.AddCharts(similarityBar(d.Similarities))
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	return nil
}

// summaryBar builds a bar chart of per-input means with the population
// standard deviation in the tooltip series.
func summaryBar(title, seriesName string, recs []*results.SummaryRecord) *charts.Bar {
	x := make([]string, 0, len(recs))
	means := make([]opts.BarData, 0, len(recs))
	devs := make([]opts.BarData, 0, len(recs))
	for _, r := range recs {
		x = append(x, r.Name)
		means = append(means, opts.BarData{Value: r.Mean})
		devs = append(devs, opts.BarData{Value: r.StdDev})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(x).
		AddSeries(seriesName, means,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		).
		AddSeries("std dev", devs)
	return bar
}

// similarityBar builds a bar chart of MSE and SSIM per comparison image.
func similarityBar(recs []*results.SimilarityRecord) *charts.Bar {
	x := make([]string, 0, len(recs))
	mse := make([]opts.BarData, 0, len(recs))
	ssim := make([]opts.BarData, 0, len(recs))
	for _, r := range recs {
		x = append(x, r.Name)
		mse = append(mse, opts.BarData{Value: r.MSE})
		ssim = append(ssim, opts.BarData{Value: r.SSIM})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Similarity to reference render"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(x).
		AddSeries("MSE", mse).
		AddSeries("SSIM", ssim,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)
	return bar
}
