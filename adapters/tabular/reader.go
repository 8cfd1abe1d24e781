// Package tabular loads CSV and Excel files into datasets.
package tabular

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/core"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/dataset"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/ports"
)

// supported file extensions, lower case
var supportedExtensions = map[string]bool{
	".csv":  true,
	".xlsx": true,
	".xls":  true,
}

// Loader reads tabular files into datasets, coercing columns whose
// non-missing values all parse as numbers to float64 storage.
type Loader struct{}

// NewLoader creates a table loader
func NewLoader() ports.TableLoader {
	return &Loader{}
}

// Load reads the file at path. The extension picks the parser; anything
// outside the supported set fails before any I/O.
func (l *Loader) Load(ctx context.Context, path string) (*dataset.Dataset, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return nil, core.NewUnsupportedFormatError(ext)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", core.ErrFileNotFound, path)
	}

	var rows [][]string
	var err error
	if ext == ".csv" {
		rows, err = readCSV(path)
	} else {
		rows, err = readExcel(path)
	}
	if err != nil {
		return nil, err
	}

	return buildDataset(filepath.Base(path), rows)
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

func readExcel(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("Excel file has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	return rows, nil
}

// buildDataset turns raw string rows into a typed columnar dataset.
// The first row is the header; a header-only file yields zero rows.
func buildDataset(sourceName string, rows [][]string) (*dataset.Dataset, error) {
	if len(rows) == 0 {
		return dataset.New(sourceName, nil, nil)
	}

	headerRow := rows[0]
	columns := make([]string, len(headerRow))
	for i, header := range headerRow {
		columns[i] = strings.TrimSpace(header)
	}

	cells := make(map[string][]any, len(columns))
	for j, col := range columns {
		values := make([]any, 0, len(rows)-1)
		for i := 1; i < len(rows); i++ {
			values = append(values, cellAt(rows[i], j))
		}
		cells[col] = coerceColumn(values)
	}

	return dataset.New(sourceName, columns, cells)
}

// cellAt reads one raw cell, nil for short rows and blank cells
func cellAt(row []string, j int) any {
	if j >= len(row) {
		return nil
	}
	trimmed := strings.TrimSpace(row[j])
	if trimmed == "" {
		return nil
	}
	return trimmed
}

// coerceColumn converts a column to float64 storage when every non-missing
// raw value parses as a number, otherwise leaves strings in place.
func coerceColumn(values []any) []any {
	numeric := 0
	for _, v := range values {
		if v == nil {
			continue
		}
		raw := v.(string)
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return values
		}
		numeric++
	}
	if numeric == 0 {
		return values
	}

	out := make([]any, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		f, _ := strconv.ParseFloat(v.(string), 64)
		out[i] = f
	}
	return out
}
