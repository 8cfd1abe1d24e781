package charts

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/core"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/internal/classify"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/internal/testkit"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/ports"
)

func TestRender_WritesHTMLAsset(t *testing.T) {
	dir := t.TempDir()
	ds := classify.NewColumnClassifier().Classify(testkit.SalesDataset(20, 5))

	asset, err := NewRenderer(dir).Render(context.Background(), ds, ports.ChartRequest{
		Kind:    ports.ChartNumericDistribution,
		Title:   "Distribution of Numeric Columns",
		Columns: []string{"sales", "quantity"},
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if asset.Name != string(ports.ChartNumericDistribution) {
		t.Errorf("unexpected asset name %q", asset.Name)
	}
	if !strings.HasSuffix(asset.Path, ".html") {
		t.Errorf("expected .html asset, got %s", asset.Path)
	}
	content, readErr := os.ReadFile(asset.Path)
	if readErr != nil {
		t.Fatalf("asset not written: %v", readErr)
	}
	if len(content) == 0 {
		t.Error("expected non-empty asset")
	}
}

func TestRender_TimeSeriesAndPie(t *testing.T) {
	dir := t.TempDir()
	ds := classify.NewColumnClassifier().Classify(testkit.SalesDataset(20, 5))

	reqs := []ports.ChartRequest{
		{Kind: ports.ChartCategoricalDistribution, Title: "Distribution of product_name", Columns: []string{"product_name"}},
		{Kind: ports.ChartTimeSeries, Title: "Time Series Analysis", Columns: []string{"date", "sales"}},
	}
	for _, req := range reqs {
		asset, err := NewRenderer(dir).Render(context.Background(), ds, req)
		if err != nil {
			t.Fatalf("Render(%s) failed: %v", req.Kind, err)
		}
		if _, err := os.Stat(asset.Path); err != nil {
			t.Errorf("asset for %s not on disk: %v", req.Kind, err)
		}
	}
}

func TestRender_UnknownKind(t *testing.T) {
	ds := testkit.SalesDataset(5, 1)

	_, err := NewRenderer(t.TempDir()).Render(context.Background(), ds, ports.ChartRequest{Kind: "sparkline"})
	if !errors.Is(err, core.ErrChartRender) {
		t.Fatalf("expected ErrChartRender, got %v", err)
	}
}

func TestRender_NoNumericValues(t *testing.T) {
	ds := classify.NewColumnClassifier().Classify(testkit.Columns("t.csv",
		[]string{"label"},
		map[string][]any{"label": testkit.StringColumn("x", "y")},
	))

	_, err := NewRenderer(t.TempDir()).Render(context.Background(), ds, ports.ChartRequest{
		Kind:    ports.ChartNumericDistribution,
		Columns: []string{"label"},
	})
	if !errors.Is(err, core.ErrChartRender) {
		t.Fatalf("expected ErrChartRender, got %v", err)
	}
}

func TestHistogram(t *testing.T) {
	counts, ok := histogram([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	if !ok {
		t.Fatal("expected a histogram")
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	if total != 11 {
		t.Errorf("expected all values binned, got %d", total)
	}
	if counts[len(counts)-1] == 0 {
		t.Error("expected the maximum to land in the last bin")
	}
}

func TestHistogram_ConstantColumn(t *testing.T) {
	counts, ok := histogram([]float64{5, 5, 5})
	if !ok {
		t.Fatal("expected a histogram")
	}
	if counts[0] != 3 {
		t.Errorf("expected all constant values in the first bin, got %v", counts)
	}
}

func TestTopValues(t *testing.T) {
	order := []string{"a", "b", "c", "d"}
	counts := map[string]int{"a": 1, "b": 3, "c": 3, "d": 2}

	top := topValues(order, counts, 3)
	want := []string{"b", "c", "d"}
	for i := range want {
		if top[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, top)
		}
	}
}
