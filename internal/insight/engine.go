// Package insight derives human-readable statements from an analysis report.
package insight

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/report"
)

const dateFormat = "January 02, 2006"

// CV thresholds, in percent
const (
	highVariabilityCV = 50.0
	lowVariabilityCV  = 10.0
)

// Engine generates insights in a fixed, deterministic order:
// overview, date span, per-numeric-column variability, per-categorical-column
// cardinality and dominance. Insights are never deduplicated.
type Engine struct{}

// NewEngine creates an insight engine
func NewEngine() *Engine {
	return &Engine{}
}

// Generate derives the ordered insight sequence for a report
func (e *Engine) Generate(rep *report.AnalysisReport) []report.Insight {
	var insights []report.Insight

	insights = append(insights, report.Insight(fmt.Sprintf(
		"Dataset contains %s records across %d columns",
		humanize.Comma(int64(rep.TotalRecords)), len(rep.Columns))))

	if rep.DateRange != nil {
		insights = append(insights, report.Insight(fmt.Sprintf(
			"Data spans %d days from %s to %s",
			rep.DateRange.Days(),
			rep.DateRange.Start.Format(dateFormat),
			rep.DateRange.End.Format(dateFormat))))
	}

	for _, col := range rep.NumericColumns() {
		if stmt, ok := variabilityInsight(col, rep.SummaryStats[col]); ok {
			insights = append(insights, stmt)
		}
	}

	for _, col := range rep.CategoricalColumns() {
		summary := rep.CategoricalSummary[col]
		if float64(summary.UniqueValues) < float64(rep.TotalRecords)*0.1 {
			insights = append(insights, report.Insight(fmt.Sprintf(
				"%s has relatively few unique values (%d categories)",
				col, summary.UniqueValues)))
		}
		if stmt, ok := dominanceInsight(col, summary, rep.TotalRecords); ok {
			insights = append(insights, stmt)
		}
	}

	return insights
}

// variabilityInsight emits a statement when the coefficient of variation
// falls outside [10, 50]. A zero mean cannot produce a CV and is skipped.
func variabilityInsight(col string, cs report.ColumnStats) (report.Insight, bool) {
	if cs.StdDev <= 0 || cs.Mean == 0 {
		return "", false
	}
	cv := cs.StdDev / cs.Mean * 100
	switch {
	case cv > highVariabilityCV:
		return report.Insight(fmt.Sprintf("%s shows high variability (CV: %.1f%%)", col, cv)), true
	case cv < lowVariabilityCV:
		return report.Insight(fmt.Sprintf("%s shows low variability (CV: %.1f%%)", col, cv)), true
	default:
		return "", false
	}
}

// dominanceInsight emits a statement when one value covers more than half
// of all records
func dominanceInsight(col string, summary report.CategoricalSummary, totalRecords int) (report.Insight, bool) {
	if len(summary.TopValues) == 0 || totalRecords == 0 {
		return "", false
	}
	top := summary.TopValues[0]
	share := float64(top.Count) / float64(totalRecords) * 100
	if share <= 50 {
		return "", false
	}
	return report.Insight(fmt.Sprintf(
		"Most common %s is '%s' (%.1f%% of records)", col, top.Value, share)), true
}
