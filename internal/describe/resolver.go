// Package describe maps column names to one-line semantic descriptions.
package describe

import (
	"strings"

	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/dataset"
)

// keywordRule matches any of its keywords as a case-insensitive substring
type keywordRule struct {
	keywords    []string
	description string
}

// rules is a priority list, not an alphabetical one: "sales_id" must resolve
// through the "id" group because it precedes the financial group.
var rules = []keywordRule{
	{[]string{"date", "time"}, "Date/time information"},
	{[]string{"id"}, "Identifier field"},
	{[]string{"name"}, "Name/label field"},
	{[]string{"sales", "revenue", "amount"}, "Financial/sales data"},
	{[]string{"quantity", "count"}, "Quantity/count data"},
	{[]string{"region", "location"}, "Geographic information"},
}

// Resolve returns the description for a column name and type tag.
// Keyword groups are checked in order, first match wins; unmatched columns
// fall back on the type tag.
func Resolve(columnName string, typeTag dataset.ColumnType) string {
	lower := strings.ToLower(columnName)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.description
			}
		}
	}
	if typeTag == dataset.TypeNumeric {
		return "Numerical data"
	}
	return "Categorical data"
}
