package tabular

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/core"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestLoad_CSV(t *testing.T) {
	path := writeCSV(t, "sales.csv",
		"date,product,sales\n"+
			"2024-01-01,Widget,100.5\n"+
			"2024-01-02,Gadget,200\n")

	ds, err := NewLoader().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := ds.SourceName(); got != "sales.csv" {
		t.Errorf("expected source name sales.csv, got %q", got)
	}
	if ds.RowCount() != 2 || ds.ColumnCount() != 3 {
		t.Fatalf("expected 2x3, got %dx%d", ds.RowCount(), ds.ColumnCount())
	}

	// numeric column coerced to float64 storage
	if v, ok := ds.Values("sales")[0].(float64); !ok || v != 100.5 {
		t.Errorf("expected float64 100.5, got %T %v", ds.Values("sales")[0], ds.Values("sales")[0])
	}
	// mixed text stays string
	if _, ok := ds.Values("product")[0].(string); !ok {
		t.Errorf("expected string cell, got %T", ds.Values("product")[0])
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), "report.pdf")
	if !errors.Is(err, core.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, core.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}

func TestLoad_HeaderOnlyYieldsZeroRows(t *testing.T) {
	path := writeCSV(t, "empty.csv", "a,b,c\n")

	ds, err := NewLoader().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ds.RowCount() != 0 {
		t.Errorf("expected 0 rows, got %d", ds.RowCount())
	}
	if ds.ColumnCount() != 3 {
		t.Errorf("expected 3 columns, got %d", ds.ColumnCount())
	}
}

func TestLoad_ShortAndBlankCellsAreMissing(t *testing.T) {
	path := writeCSV(t, "gaps.csv",
		"a,b\n"+
			"1,\n"+
			"2\n")

	ds, err := NewLoader().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	b := ds.Values("b")
	if b[0] != nil || b[1] != nil {
		t.Errorf("expected missing cells, got %v %v", b[0], b[1])
	}
	// column a still coerces around the gap-free values
	if v, ok := ds.Values("a")[1].(float64); !ok || v != 2 {
		t.Errorf("expected float64 2, got %T %v", ds.Values("a")[1], ds.Values("a")[1])
	}
}

func TestLoad_PartialNumericColumnStaysString(t *testing.T) {
	path := writeCSV(t, "mixed.csv",
		"code\n"+
			"12\n"+
			"A7\n")

	ds, err := NewLoader().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, ok := ds.Values("code")[0].(string); !ok {
		t.Errorf("expected string storage for mixed column, got %T", ds.Values("code")[0])
	}
}

func TestLoad_HeadersTrimmed(t *testing.T) {
	path := writeCSV(t, "padded.csv", " a , b \n1,2\n")

	ds, err := NewLoader().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cols := ds.Columns()
	if cols[0] != "a" || cols[1] != "b" {
		t.Errorf("expected trimmed headers, got %v", cols)
	}
}

func TestLoad_Xlsx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"date", "sales"},
		{"2024-01-01", 100.5},
		{"2024-01-02", 200},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("bad coordinates: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("failed to set row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save xlsx: %v", err)
	}
	_ = f.Close()

	ds, err := NewLoader().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ds.RowCount() != 2 || ds.ColumnCount() != 2 {
		t.Fatalf("expected 2x2, got %dx%d", ds.RowCount(), ds.ColumnCount())
	}
	if v, ok := ds.Values("sales")[0].(float64); !ok || v != 100.5 {
		t.Errorf("expected float64 100.5, got %T %v", ds.Values("sales")[0], ds.Values("sales")[0])
	}
}
