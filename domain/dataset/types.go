package dataset

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// ColumnType tags a column with its analyzed role
type ColumnType string

const (
	TypeDate        ColumnType = "date"
	TypeNumeric     ColumnType = "numeric"
	TypeCategorical ColumnType = "categorical"
)

// Dataset is an in-memory columnar table. Columns are ordered and unique,
// every column holds exactly RowCount cells, and a nil cell means missing.
// Cell storage types are string, float64 and time.Time; loaders coerce
// whole columns to float64 when every non-missing value parses as a number.
//
// A Dataset is immutable after construction. Type tagging and date coercion
// produce new views (WithTypes, WithColumnValues) rather than mutating the
// receiver, so callers holding the original never observe reclassification.
type Dataset struct {
	sourceName string
	columns    []string
	cells      map[string][]any
	types      map[string]ColumnType
	rows       int
}

// New builds a Dataset and validates the equal-length and unique-column
// invariants. A zero-row dataset (header only) is valid.
func New(sourceName string, columns []string, cells map[string][]any) (*Dataset, error) {
	seen := make(map[string]bool, len(columns))
	for _, col := range columns {
		if seen[col] {
			return nil, fmt.Errorf("duplicate column name: %s", col)
		}
		seen[col] = true
		if _, ok := cells[col]; !ok {
			return nil, fmt.Errorf("no cell values for column: %s", col)
		}
	}

	rows := 0
	if len(columns) > 0 {
		rows = len(cells[columns[0]])
	}
	for _, col := range columns {
		if len(cells[col]) != rows {
			return nil, fmt.Errorf("column %s has %d values, expected %d", col, len(cells[col]), rows)
		}
	}

	return &Dataset{
		sourceName: sourceName,
		columns:    append([]string(nil), columns...),
		cells:      cells,
		types:      make(map[string]ColumnType, len(columns)),
		rows:       rows,
	}, nil
}

// SourceName returns the name of the file or origin the data came from
func (d *Dataset) SourceName() string { return d.sourceName }

// Columns returns the column names in table order
func (d *Dataset) Columns() []string {
	return append([]string(nil), d.columns...)
}

// RowCount returns the number of data rows
func (d *Dataset) RowCount() int { return d.rows }

// ColumnCount returns the number of columns
func (d *Dataset) ColumnCount() int { return len(d.columns) }

// Values returns the cell values for a column, nil if the column is unknown
func (d *Dataset) Values(column string) []any {
	return d.cells[column]
}

// Type returns the tag assigned to a column (empty before classification)
func (d *Dataset) Type(column string) ColumnType {
	return d.types[column]
}

// Types returns a copy of the column type mapping
func (d *Dataset) Types() map[string]ColumnType {
	out := make(map[string]ColumnType, len(d.types))
	for k, v := range d.types {
		out[k] = v
	}
	return out
}

// WithTypes returns a view of the dataset carrying the given type tags.
// Cell data is shared with the receiver.
func (d *Dataset) WithTypes(types map[string]ColumnType) *Dataset {
	next := d.shallowCopy()
	next.types = make(map[string]ColumnType, len(types))
	for k, v := range types {
		next.types[k] = v
	}
	return next
}

// WithColumnValues returns a view with one column's values replaced,
// used for date coercion. The replacement must keep the row count.
func (d *Dataset) WithColumnValues(column string, values []any) (*Dataset, error) {
	if _, ok := d.cells[column]; !ok {
		return nil, fmt.Errorf("unknown column: %s", column)
	}
	if len(values) != d.rows {
		return nil, fmt.Errorf("column %s replacement has %d values, expected %d", column, len(values), d.rows)
	}
	next := d.shallowCopy()
	next.cells = make(map[string][]any, len(d.cells))
	for k, v := range d.cells {
		next.cells[k] = v
	}
	next.cells[column] = values
	return next, nil
}

func (d *Dataset) shallowCopy() *Dataset {
	return &Dataset{
		sourceName: d.sourceName,
		columns:    d.columns,
		cells:      d.cells,
		types:      d.types,
		rows:       d.rows,
	}
}

// Head returns up to n rows with cells stringified, for sample tables
func (d *Dataset) Head(n int) [][]string {
	if n > d.rows {
		n = d.rows
	}
	out := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		row := make([]string, len(d.columns))
		for j, col := range d.columns {
			row[j] = FormatCell(d.cells[col][i])
		}
		out = append(out, row)
	}
	return out
}

// IsMissing reports whether a cell counts as missing for analysis:
// nil, empty string, or NaN.
func IsMissing(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case float64:
		return math.IsNaN(val)
	default:
		return false
	}
}

// IsNumericStorage reports whether every non-missing cell is stored as a
// number. Columns with only missing cells do not qualify.
func IsNumericStorage(values []any) bool {
	nonMissing := 0
	for _, v := range values {
		if IsMissing(v) {
			continue
		}
		switch v.(type) {
		case float64, int, int64:
			nonMissing++
		default:
			return false
		}
	}
	return nonMissing > 0
}

// FormatCell stringifies a cell for display
func FormatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		if math.IsNaN(val) {
			return ""
		}
		return strconv.FormatFloat(val, 'g', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case time.Time:
		return val.Format("2006-01-02")
	default:
		return fmt.Sprintf("%v", val)
	}
}

// NumericCell converts a numeric cell to float64
func NumericCell(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) {
			return 0, false
		}
		return val, true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	default:
		return 0, false
	}
}
