// Package analysis computes descriptive statistics for classified datasets.
package analysis

import (
	"sort"
	"time"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/core"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/dataset"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/report"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/internal/classify"
)

// Analyzer computes an AnalysisReport from a classified dataset
type Analyzer struct{}

// NewAnalyzer creates an analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze produces a fresh AnalysisReport. It fails only when the dataset
// has zero columns; a zero-row dataset is valid and yields empty stats.
//
// Numeric stats use the sample standard deviation (ddof=1). A column with a
// single non-missing value gets StdDev 0 by convention. Missing cells are
// excluded from every statistic including the sum.
func (a *Analyzer) Analyze(ds *dataset.Dataset) (*report.AnalysisReport, error) {
	if ds.ColumnCount() == 0 {
		return nil, core.ErrEmptyDataset
	}

	rep := &report.AnalysisReport{
		TotalRecords:       ds.RowCount(),
		Columns:            ds.Columns(),
		DataTypes:          ds.Types(),
		SummaryStats:       make(map[string]report.ColumnStats),
		CategoricalSummary: make(map[string]report.CategoricalSummary),
	}

	if col, ok := classify.FirstDateColumn(ds); ok {
		if r, ok := dateRange(ds.Values(col), col); ok {
			rep.DateRange = &r
		}
	}

	for _, col := range ds.Columns() {
		switch ds.Type(col) {
		case dataset.TypeNumeric:
			if cs, ok := columnStats(ds.Values(col)); ok {
				rep.SummaryStats[col] = cs
			}
		case dataset.TypeCategorical:
			// date columns never enter categorical summaries
			rep.CategoricalSummary[col] = summarizeCategorical(ds.Values(col))
		}
	}

	return rep, nil
}

// columnStats computes the six descriptive statistics over non-missing
// values. Returns false when the column has no non-missing values.
func columnStats(values []any) (report.ColumnStats, bool) {
	data := make([]float64, 0, len(values))
	for _, v := range values {
		if dataset.IsMissing(v) {
			continue
		}
		if f, ok := dataset.NumericCell(v); ok {
			data = append(data, f)
		}
	}
	if len(data) == 0 {
		return report.ColumnStats{}, false
	}

	mean, _ := stats.Mean(data)
	median, _ := stats.Median(data)
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)
	sum, _ := stats.Sum(data)

	// gonum's StdDev divides by n-1; pin a single observation to zero
	stdDev := 0.0
	if len(data) > 1 {
		stdDev = stat.StdDev(data, nil)
	}

	return report.ColumnStats{
		Mean:   mean,
		Median: median,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
		Sum:    sum,
		Count:  len(data),
	}, true
}

// summarizeCategorical counts value frequencies over the full column and
// keeps the top five, descending by count with ties in first-seen order.
func summarizeCategorical(values []any) report.CategoricalSummary {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for i, v := range values {
		if dataset.IsMissing(v) {
			continue
		}
		key := dataset.FormatCell(v)
		if _, ok := counts[key]; !ok {
			firstSeen[key] = i
		}
		counts[key]++
	}

	ranked := make([]report.ValueCount, 0, len(counts))
	for value, count := range counts {
		ranked = append(ranked, report.ValueCount{Value: value, Count: count})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Value] < firstSeen[ranked[j].Value]
	})

	top := ranked
	if len(top) > 5 {
		top = top[:5]
	}

	return report.CategoricalSummary{
		UniqueValues: len(counts),
		TopValues:    top,
	}
}

// dateRange finds the min and max parsed dates of the first date column
func dateRange(values []any, column string) (report.DateRange, bool) {
	var start, end time.Time
	found := false
	for _, v := range values {
		t, ok := v.(time.Time)
		if !ok {
			continue
		}
		if !found {
			start, end = t, t
			found = true
			continue
		}
		if t.Before(start) {
			start = t
		}
		if t.After(end) {
			end = t
		}
	}
	if !found {
		return report.DateRange{}, false
	}
	return report.DateRange{Start: start, End: end, Column: column}, true
}
