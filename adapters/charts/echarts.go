// Package charts renders dataset slices to on-disk chart assets.
package charts

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/core"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/dataset"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/report"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/ports"
)

const (
	histogramBins = 20
	chartWidth    = "900px"
	chartHeight   = "500px"
)

// Renderer produces go-echarts HTML assets in a scratch directory.
// Assets are transient; the pipeline owner is responsible for cleanup.
type Renderer struct {
	assetDir string
}

// NewRenderer creates a chart renderer writing into assetDir
func NewRenderer(assetDir string) ports.ChartRenderer {
	return &Renderer{assetDir: assetDir}
}

// Render draws one chart for the request and returns its asset reference
func (r *Renderer) Render(ctx context.Context, ds *dataset.Dataset, req ports.ChartRequest) (report.ChartAsset, error) {
	var err error
	var path string

	switch req.Kind {
	case ports.ChartNumericDistribution:
		path, err = r.renderNumericDistribution(ds, req)
	case ports.ChartCategoricalDistribution:
		path, err = r.renderCategoricalDistribution(ds, req)
	case ports.ChartTimeSeries:
		path, err = r.renderTimeSeries(ds, req)
	default:
		err = fmt.Errorf("unknown chart kind: %s", req.Kind)
	}

	if err != nil {
		return report.ChartAsset{}, core.NewChartRenderError(string(req.Kind), err)
	}
	return report.ChartAsset{Name: string(req.Kind), Path: path}, nil
}

// renderNumericDistribution draws binned histograms, one series per column
func (r *Renderer) renderNumericDistribution(ds *dataset.Dataset, req ports.ChartRequest) (string, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: req.Title}),
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	labels := make([]string, histogramBins)
	for i := range labels {
		labels[i] = fmt.Sprintf("bin %d", i+1)
	}
	bar.SetXAxis(labels)

	plotted := 0
	for _, col := range req.Columns {
		counts, ok := histogram(numericSeries(ds, col))
		if !ok {
			continue
		}
		data := make([]opts.BarData, len(counts))
		for i, n := range counts {
			data[i] = opts.BarData{Value: n}
		}
		bar.AddSeries(col, data)
		plotted++
	}
	if plotted == 0 {
		return "", fmt.Errorf("no numeric values to plot")
	}

	return r.writeAsset(bar.Render, string(ports.ChartNumericDistribution))
}

// renderCategoricalDistribution draws a pie of the column's top ten values
func (r *Renderer) renderCategoricalDistribution(ds *dataset.Dataset, req ports.ChartRequest) (string, error) {
	if len(req.Columns) == 0 {
		return "", fmt.Errorf("no column given")
	}
	col := req.Columns[0]

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, v := range ds.Values(col) {
		if dataset.IsMissing(v) {
			continue
		}
		key := dataset.FormatCell(v)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}
	if len(order) == 0 {
		return "", fmt.Errorf("no values in column %s", col)
	}

	// top ten by count, stable on first-seen order
	top := topValues(order, counts, 10)

	items := make([]opts.PieData, len(top))
	for i, key := range top {
		items[i] = opts.PieData{Name: key, Value: counts[key]}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: req.Title}),
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
	)
	pie.AddSeries(col, items)

	return r.writeAsset(pie.Render, string(ports.ChartCategoricalDistribution))
}

// renderTimeSeries draws the numeric columns against the date column,
// which must be the first request column
func (r *Renderer) renderTimeSeries(ds *dataset.Dataset, req ports.ChartRequest) (string, error) {
	if len(req.Columns) < 2 {
		return "", fmt.Errorf("time series needs a date column and one value column")
	}
	dateCol := req.Columns[0]

	labels := make([]string, 0, ds.RowCount())
	for _, v := range ds.Values(dateCol) {
		if t, ok := v.(time.Time); ok {
			labels = append(labels, t.Format("2006-01-02"))
		} else {
			labels = append(labels, dataset.FormatCell(v))
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: req.Title}),
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	line.SetXAxis(labels)

	for _, col := range req.Columns[1:] {
		values := ds.Values(col)
		data := make([]opts.LineData, len(values))
		for i, v := range values {
			if f, ok := dataset.NumericCell(v); ok {
				data[i] = opts.LineData{Value: f}
			} else {
				data[i] = opts.LineData{Value: nil}
			}
		}
		line.AddSeries(col, data,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	}

	return r.writeAsset(line.Render, string(ports.ChartTimeSeries))
}

// writeAsset renders a chart into a uniquely named file in the asset dir
func (r *Renderer) writeAsset(render func(w io.Writer) error, kind string) (string, error) {
	if err := os.MkdirAll(r.assetDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create asset dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s.html", kind, core.NewID())
	path := filepath.Join(r.assetDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create asset file: %w", err)
	}
	defer f.Close()

	if err := render(f); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to render chart: %w", err)
	}
	return path, nil
}

func numericSeries(ds *dataset.Dataset, col string) []float64 {
	values := ds.Values(col)
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if dataset.IsMissing(v) {
			continue
		}
		if f, ok := dataset.NumericCell(v); ok {
			out = append(out, f)
		}
	}
	return out
}

// histogram bins values into histogramBins equal-width buckets
func histogram(values []float64) ([]int, bool) {
	if len(values) == 0 {
		return nil, false
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}

	counts := make([]int, histogramBins)
	width := (max - min) / float64(histogramBins)
	if width == 0 {
		counts[0] = len(values)
		return counts, true
	}
	for _, v := range values {
		bin := int((v - min) / width)
		if bin >= histogramBins {
			bin = histogramBins - 1
		}
		counts[bin]++
	}
	return counts, true
}

func topValues(order []string, counts map[string]int, n int) []string {
	top := append([]string(nil), order...)
	// selection by count, stable for ties
	for i := 0; i < len(top) && i < n; i++ {
		best := i
		for j := i + 1; j < len(top); j++ {
			if counts[top[j]] > counts[top[best]] {
				best = j
			}
		}
		if best != i {
			picked := top[best]
			copy(top[i+1:best+1], top[i:best])
			top[i] = picked
		}
	}
	if len(top) > n {
		top = top[:n]
	}
	return top
}
