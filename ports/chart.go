package ports

import (
	"context"

	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/dataset"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/report"
)

// ChartKind identifies one of the three conceptual charts
type ChartKind string

const (
	ChartNumericDistribution     ChartKind = "numeric_distribution"
	ChartCategoricalDistribution ChartKind = "categorical_distribution"
	ChartTimeSeries              ChartKind = "time_series"
)

// ChartRequest asks a renderer for one chart over the given columns.
// For time series the first column is the date axis.
type ChartRequest struct {
	Kind    ChartKind
	Title   string
	Columns []string
}

// ChartRenderer turns a dataset slice into an on-disk asset. A failed
// render is non-fatal to the pipeline; the chart is simply omitted.
type ChartRenderer interface {
	Render(ctx context.Context, ds *dataset.Dataset, req ChartRequest) (report.ChartAsset, error)
}
