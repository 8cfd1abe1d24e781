package dataset

import (
	"math"
	"testing"
	"time"
)

func TestNew_Validation(t *testing.T) {
	if _, err := New("t.csv", []string{"a", "a"}, map[string][]any{"a": {}}); err == nil {
		t.Error("expected duplicate column rejection")
	}
	if _, err := New("t.csv", []string{"a"}, map[string][]any{}); err == nil {
		t.Error("expected missing cells rejection")
	}
	if _, err := New("t.csv", []string{"a", "b"}, map[string][]any{
		"a": {1.0, 2.0},
		"b": {1.0},
	}); err == nil {
		t.Error("expected unequal column length rejection")
	}
}

func TestNew_ZeroRowsValid(t *testing.T) {
	ds, err := New("t.csv", []string{"a"}, map[string][]any{"a": {}})
	if err != nil {
		t.Fatalf("expected header-only dataset to be valid: %v", err)
	}
	if ds.RowCount() != 0 || ds.ColumnCount() != 1 {
		t.Errorf("expected 0x1, got %dx%d", ds.RowCount(), ds.ColumnCount())
	}
}

func TestWithTypes_DoesNotMutateReceiver(t *testing.T) {
	ds, err := New("t.csv", []string{"a"}, map[string][]any{"a": {1.0}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	view := ds.WithTypes(map[string]ColumnType{"a": TypeNumeric})

	if got := ds.Type("a"); got != "" {
		t.Errorf("expected receiver untagged, got %q", got)
	}
	if got := view.Type("a"); got != TypeNumeric {
		t.Errorf("expected view tagged numeric, got %q", got)
	}
}

func TestWithColumnValues(t *testing.T) {
	ds, err := New("t.csv", []string{"a"}, map[string][]any{"a": {"2024-01-01"}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	parsed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	view, err := ds.WithColumnValues("a", []any{parsed})
	if err != nil {
		t.Fatalf("WithColumnValues failed: %v", err)
	}

	if _, ok := view.Values("a")[0].(time.Time); !ok {
		t.Errorf("expected replaced cell in view, got %T", view.Values("a")[0])
	}
	if _, ok := ds.Values("a")[0].(string); !ok {
		t.Errorf("expected receiver cells untouched, got %T", ds.Values("a")[0])
	}

	if _, err := ds.WithColumnValues("a", []any{nil, nil}); err == nil {
		t.Error("expected row-count mismatch rejection")
	}
	if _, err := ds.WithColumnValues("nope", []any{nil}); err == nil {
		t.Error("expected unknown column rejection")
	}
}

func TestHead(t *testing.T) {
	ds, err := New("t.csv", []string{"a", "b"}, map[string][]any{
		"a": {1.5, 2.0, 3.0},
		"b": {"x", nil, "z"},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	head := ds.Head(2)
	if len(head) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(head))
	}
	if head[0][0] != "1.5" || head[0][1] != "x" {
		t.Errorf("unexpected first row %v", head[0])
	}
	if head[1][1] != "" {
		t.Errorf("expected missing cell rendered empty, got %q", head[1][1])
	}

	// n larger than the table is clamped
	if got := len(ds.Head(10)); got != 3 {
		t.Errorf("expected clamp to 3 rows, got %d", got)
	}
}

func TestIsMissing(t *testing.T) {
	cases := []struct {
		v    any
		want bool
	}{
		{nil, true},
		{"", true},
		{math.NaN(), true},
		{"x", false},
		{0.0, false},
		{time.Now(), false},
	}
	for _, tc := range cases {
		if got := IsMissing(tc.v); got != tc.want {
			t.Errorf("IsMissing(%v) = %v, want %v", tc.v, got, tc.want)
		}
	}
}

func TestIsNumericStorage(t *testing.T) {
	if !IsNumericStorage([]any{1.0, nil, 2.0}) {
		t.Error("expected numeric storage with gaps to qualify")
	}
	if IsNumericStorage([]any{1.0, "x"}) {
		t.Error("expected mixed column to fail")
	}
	if IsNumericStorage([]any{nil, nil}) {
		t.Error("expected all-missing column to fail")
	}
}

func TestFormatCell(t *testing.T) {
	if got := FormatCell(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)); got != "2024-03-01" {
		t.Errorf("expected date formatting, got %q", got)
	}
	if got := FormatCell(12.0); got != "12" {
		t.Errorf("expected compact float formatting, got %q", got)
	}
}
