package insight

import (
	"strings"
	"testing"
	"time"

	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/report"
)

func numericReport(col string, cs report.ColumnStats) *report.AnalysisReport {
	return &report.AnalysisReport{
		TotalRecords:       100,
		Columns:            []string{col},
		SummaryStats:       map[string]report.ColumnStats{col: cs},
		CategoricalSummary: map[string]report.CategoricalSummary{},
	}
}

func TestGenerate_OverviewAlwaysFirst(t *testing.T) {
	rep := &report.AnalysisReport{
		TotalRecords:       1500,
		Columns:            []string{"a", "b"},
		SummaryStats:       map[string]report.ColumnStats{},
		CategoricalSummary: map[string]report.CategoricalSummary{},
	}

	insights := NewEngine().Generate(rep)
	if len(insights) == 0 {
		t.Fatal("expected at least the overview insight")
	}
	if got := string(insights[0]); got != "Dataset contains 1,500 records across 2 columns" {
		t.Errorf("unexpected overview: %q", got)
	}
}

func TestGenerate_DateSpan(t *testing.T) {
	rep := &report.AnalysisReport{
		TotalRecords:       10,
		Columns:            []string{"order_date"},
		SummaryStats:       map[string]report.ColumnStats{},
		CategoricalSummary: map[string]report.CategoricalSummary{},
		DateRange: &report.DateRange{
			Start:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			End:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Column: "order_date",
		},
	}

	insights := NewEngine().Generate(rep)
	if len(insights) < 2 {
		t.Fatalf("expected date span insight, got %d insights", len(insights))
	}
	want := "Data spans 60 days from January 01, 2024 to March 01, 2024"
	if got := string(insights[1]); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestGenerate_Variability(t *testing.T) {
	cases := []struct {
		name   string
		stats  report.ColumnStats
		expect string // empty means no variability insight
	}{
		{"high", report.ColumnStats{Mean: 100, StdDev: 60}, "sales shows high variability (CV: 60.0%)"},
		{"low", report.ColumnStats{Mean: 100, StdDev: 5}, "sales shows low variability (CV: 5.0%)"},
		{"middle band silent", report.ColumnStats{Mean: 100, StdDev: 20}, ""},
		{"zero mean skipped", report.ColumnStats{Mean: 0, StdDev: 60}, ""},
		{"zero stddev skipped", report.ColumnStats{Mean: 100, StdDev: 0}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			insights := NewEngine().Generate(numericReport("sales", tc.stats))

			var found string
			for _, ins := range insights {
				if strings.Contains(string(ins), "variability") {
					found = string(ins)
				}
			}
			if found != tc.expect {
				t.Errorf("expected %q, got %q", tc.expect, found)
			}
		})
	}
}

func TestGenerate_FewUniqueValues(t *testing.T) {
	rep := &report.AnalysisReport{
		TotalRecords: 100,
		Columns:      []string{"region"},
		SummaryStats: map[string]report.ColumnStats{},
		CategoricalSummary: map[string]report.CategoricalSummary{
			"region": {UniqueValues: 4, TopValues: []report.ValueCount{{Value: "North", Count: 30}}},
		},
	}

	insights := NewEngine().Generate(rep)
	want := "region has relatively few unique values (4 categories)"
	if !containsInsight(insights, want) {
		t.Errorf("expected %q in %v", want, insights)
	}
}

func TestGenerate_FewUniqueThresholdIsStrict(t *testing.T) {
	// exactly 10% of records does not qualify
	rep := &report.AnalysisReport{
		TotalRecords: 100,
		Columns:      []string{"region"},
		SummaryStats: map[string]report.ColumnStats{},
		CategoricalSummary: map[string]report.CategoricalSummary{
			"region": {UniqueValues: 10},
		},
	}

	insights := NewEngine().Generate(rep)
	for _, ins := range insights {
		if strings.Contains(string(ins), "few unique values") {
			t.Errorf("did not expect cardinality insight at the boundary: %q", ins)
		}
	}
}

func TestGenerate_Dominance(t *testing.T) {
	rep := &report.AnalysisReport{
		TotalRecords: 100,
		Columns:      []string{"region"},
		SummaryStats: map[string]report.ColumnStats{},
		CategoricalSummary: map[string]report.CategoricalSummary{
			"region": {
				UniqueValues: 20,
				TopValues:    []report.ValueCount{{Value: "North", Count: 51}},
			},
		},
	}

	insights := NewEngine().Generate(rep)
	want := "Most common region is 'North' (51.0% of records)"
	if !containsInsight(insights, want) {
		t.Errorf("expected %q in %v", want, insights)
	}
}

func TestGenerate_NoDominanceAtHalf(t *testing.T) {
	rep := &report.AnalysisReport{
		TotalRecords: 100,
		Columns:      []string{"region"},
		SummaryStats: map[string]report.ColumnStats{},
		CategoricalSummary: map[string]report.CategoricalSummary{
			"region": {
				UniqueValues: 20,
				TopValues:    []report.ValueCount{{Value: "North", Count: 50}},
			},
		},
	}

	insights := NewEngine().Generate(rep)
	for _, ins := range insights {
		if strings.Contains(string(ins), "Most common") {
			t.Errorf("did not expect dominance at exactly half: %q", ins)
		}
	}
}

func containsInsight(insights []report.Insight, want string) bool {
	for _, ins := range insights {
		if string(ins) == want {
			return true
		}
	}
	return false
}
