// Package testkit provides synthetic datasets for tests.
package testkit

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/dataset"
)

var regions = []string{"North", "South", "East", "West"}
var products = []string{"Widget", "Gadget", "Gizmo"}

// SalesDataset builds a deterministic synthetic sales table with a date
// column, a name column, two numeric columns and a low-cardinality region
// column. Rows start at 2024-01-01, one per day.
func SalesDataset(rows int, seed int64) *dataset.Dataset {
	rng := rand.New(rand.NewSource(seed))
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	dates := make([]any, rows)
	names := make([]any, rows)
	sales := make([]any, rows)
	quantities := make([]any, rows)
	regionCol := make([]any, rows)

	for i := 0; i < rows; i++ {
		dates[i] = start.AddDate(0, 0, i).Format("2006-01-02")
		names[i] = products[rng.Intn(len(products))]
		sales[i] = 100.0 + rng.Float64()*900.0
		quantities[i] = float64(1 + rng.Intn(50))
		regionCol[i] = regions[rng.Intn(len(regions))]
	}

	ds, err := dataset.New("sales.csv",
		[]string{"date", "product_name", "sales", "quantity", "region"},
		map[string][]any{
			"date":         dates,
			"product_name": names,
			"sales":        sales,
			"quantity":     quantities,
			"region":       regionCol,
		})
	if err != nil {
		panic(fmt.Sprintf("testkit: %v", err))
	}
	return ds
}

// Columns builds a dataset directly from column values, in the given order
func Columns(source string, columns []string, cells map[string][]any) *dataset.Dataset {
	ds, err := dataset.New(source, columns, cells)
	if err != nil {
		panic(fmt.Sprintf("testkit: %v", err))
	}
	return ds
}

// NumericColumn converts floats to cell values
func NumericColumn(values ...float64) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// StringColumn converts strings to cell values, empty strings to missing
func StringColumn(values ...string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		if v == "" {
			out[i] = nil
		} else {
			out[i] = v
		}
	}
	return out
}
