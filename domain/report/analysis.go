package report

import (
	"time"

	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/dataset"
)

// ColumnStats holds descriptive statistics for one numeric column,
// computed over non-missing values only. StdDev is the sample standard
// deviation (ddof=1); a single-value column has StdDev 0 by convention.
type ColumnStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Sum    float64 `json:"sum"`
	Count  int     `json:"count"` // non-missing values
}

// ValueCount is one (value, occurrences) pair of a top-N summary
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// CategoricalSummary describes a categorical column: the distinct-value
// count over the whole column and up to five most frequent values,
// descending by count with ties broken by first-seen order.
type CategoricalSummary struct {
	UniqueValues int          `json:"unique_values"`
	TopValues    []ValueCount `json:"top_values"`
}

// DateRange is derived from the first date-tagged column
type DateRange struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Column string    `json:"column"`
}

// Days returns the whole-day span between start and end
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

// AnalysisReport is the immutable result of one Analyzer invocation
type AnalysisReport struct {
	TotalRecords       int                           `json:"total_records"`
	Columns            []string                      `json:"columns"`
	DataTypes          map[string]dataset.ColumnType `json:"data_types"`
	DateRange          *DateRange                    `json:"date_range,omitempty"`
	SummaryStats       map[string]ColumnStats        `json:"summary_stats"`
	CategoricalSummary map[string]CategoricalSummary `json:"categorical_summary"`
}

// NumericColumns returns the numeric-tagged columns in table order
func (a *AnalysisReport) NumericColumns() []string {
	var cols []string
	for _, col := range a.Columns {
		if _, ok := a.SummaryStats[col]; ok {
			cols = append(cols, col)
		}
	}
	return cols
}

// CategoricalColumns returns the summarized categorical columns in table order
func (a *AnalysisReport) CategoricalColumns() []string {
	var cols []string
	for _, col := range a.Columns {
		if _, ok := a.CategoricalSummary[col]; ok {
			cols = append(cols, col)
		}
	}
	return cols
}

// Insight is a single derived statement about the dataset
type Insight string
