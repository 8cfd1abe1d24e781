// Package classify tags dataset columns as date, numeric or categorical.
package classify

import (
	"strings"
	"time"

	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/core"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/dataset"
)

// dateLayouts are tried in order for every cell of a date-candidate column
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"2006/01/02",
	"02-Jan-2006",
	"January 2, 2006",
}

// ColumnClassifier assigns type tags and coerces date columns
type ColumnClassifier struct{}

// NewColumnClassifier creates a classifier
func NewColumnClassifier() *ColumnClassifier {
	return &ColumnClassifier{}
}

// parseOutcome is the per-column result of a date parse attempt.
// A failed attempt is reduced to a fallback tag, never propagated.
type parseOutcome struct {
	values []any
	err    error
}

// Classify returns a new dataset view with every column tagged and each
// successfully parsed date column's values replaced by time.Time cells.
// The input dataset is not mutated.
//
// Rules:
//   - a column whose name contains "date" or "time" (case-insensitive) is a
//     date candidate; it is tagged date only if every non-missing value
//     parses, otherwise it falls back to its storage type
//   - remaining columns are numeric when stored as numbers, else categorical
//   - zero-row columns are classified by name alone, categorical if ambiguous
func (c *ColumnClassifier) Classify(ds *dataset.Dataset) *dataset.Dataset {
	types := make(map[string]dataset.ColumnType, ds.ColumnCount())
	out := ds

	for _, col := range ds.Columns() {
		values := out.Values(col)

		if isDateCandidate(col) {
			if ds.RowCount() == 0 {
				types[col] = dataset.TypeDate
				continue
			}
			outcome := parseDateColumn(col, values)
			if outcome.err == nil {
				replaced, err := out.WithColumnValues(col, outcome.values)
				if err == nil {
					out = replaced
					types[col] = dataset.TypeDate
					continue
				}
			}
			// fall through to storage-based classification
		}

		if ds.RowCount() == 0 {
			types[col] = dataset.TypeCategorical
			continue
		}
		if dataset.IsNumericStorage(values) {
			types[col] = dataset.TypeNumeric
		} else {
			types[col] = dataset.TypeCategorical
		}
	}

	return out.WithTypes(types)
}

// FirstDateColumn returns the first date-tagged column in table order
func FirstDateColumn(ds *dataset.Dataset) (string, bool) {
	for _, col := range ds.Columns() {
		if ds.Type(col) == dataset.TypeDate {
			return col, true
		}
	}
	return "", false
}

func isDateCandidate(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "date") || strings.Contains(lower, "time")
}

// parseDateColumn attempts to parse the whole column. The first value that
// fails makes the entire column non-date. Missing cells stay missing.
func parseDateColumn(column string, values []any) parseOutcome {
	parsed := make([]any, len(values))
	for i, v := range values {
		if dataset.IsMissing(v) {
			parsed[i] = nil
			continue
		}
		if t, ok := v.(time.Time); ok {
			parsed[i] = t
			continue
		}
		raw, ok := v.(string)
		if !ok {
			return parseOutcome{err: core.NewDateParseError(column, dataset.FormatCell(v))}
		}
		t, ok := parseDate(raw)
		if !ok {
			return parseOutcome{err: core.NewDateParseError(column, raw)}
		}
		parsed[i] = t
	}
	return parseOutcome{values: parsed}
}

func parseDate(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
