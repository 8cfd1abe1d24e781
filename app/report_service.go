// Package app wires the analysis-and-composition pipeline together.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/core"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/dataset"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/report"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/internal"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/internal/analysis"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/internal/classify"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/internal/compose"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/internal/insight"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/ports"
)

// GenerateRequest describes one report generation run
type GenerateRequest struct {
	SourcePath string
	OutputPath string
	Charts     bool
}

// GenerateResult summarizes a completed run
type GenerateResult struct {
	OutputPath   string
	TotalRecords int
	ColumnCount  int
	InsightCount int
	ChartCount   int
}

// ReportService runs the full pipeline: load, classify, analyze, derive
// insights, render charts, compose and render the document. Chart assets
// are transient and removed after rendering on success and failure alike.
type ReportService struct {
	loader   ports.TableLoader
	charts   ports.ChartRenderer    // nil disables charts
	renderer ports.DocumentRenderer
	repo     ports.ReportRepository // nil disables run persistence

	classifier *classify.ColumnClassifier
	analyzer   *analysis.Analyzer
	insights   *insight.Engine
	composer   *compose.Composer
	logger     *internal.Logger
}

// NewReportService creates the pipeline service
func NewReportService(
	loader ports.TableLoader,
	chartRenderer ports.ChartRenderer,
	docRenderer ports.DocumentRenderer,
	repo ports.ReportRepository,
	cfg compose.Config,
	logger *internal.Logger,
) *ReportService {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	return &ReportService{
		loader:     loader,
		charts:     chartRenderer,
		renderer:   docRenderer,
		repo:       repo,
		classifier: classify.NewColumnClassifier(),
		analyzer:   analysis.NewAnalyzer(),
		insights:   insight.NewEngine(),
		composer:   compose.NewComposer(cfg),
		logger:     logger,
	}
}

// Generate runs the pipeline for one source file. Load and analysis
// failures abort the run; chart failures only omit the affected chart.
func (s *ReportService) Generate(ctx context.Context, req GenerateRequest) (result *GenerateResult, err error) {
	s.logger.Info("generating report for %s", req.SourcePath)

	rec := &ports.ReportRecord{
		ID:          core.ReportID(core.NewID()),
		SourcePath:  req.SourcePath,
		OutputPath:  req.OutputPath,
		GeneratedAt: time.Now(),
	}
	defer func() {
		if s.repo == nil {
			return
		}
		rec.Status = ports.RunCompleted
		if err != nil {
			rec.Status = ports.RunFailed
			rec.ErrorMessage = err.Error()
		}
		if createErr := s.repo.Create(ctx, rec); createErr != nil {
			s.logger.Warn("failed to record report run: %v", createErr)
		}
	}()

	ds, err := s.loader.Load(ctx, req.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("load failed: %w", err)
	}

	classified := s.classifier.Classify(ds)

	rep, err := s.analyzer.Analyze(classified)
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}

	insights := s.insights.Generate(rep)

	var assets []report.ChartAsset
	if req.Charts && s.charts != nil {
		assets = s.renderCharts(ctx, classified, rep)
	}
	defer s.cleanupAssets(assets)

	doc := s.composer.Compose(rep, insights, assets, classified)

	if err = s.renderer.Render(ctx, doc, req.OutputPath); err != nil {
		return nil, fmt.Errorf("render failed: %w", err)
	}

	rec.TotalRecords = rep.TotalRecords
	rec.ColumnCount = len(rep.Columns)
	rec.InsightCount = len(insights)
	rec.ChartCount = len(assets)

	s.logger.Info("report written to %s (%d blocks)", req.OutputPath, len(doc.Blocks))
	return &GenerateResult{
		OutputPath:   req.OutputPath,
		TotalRecords: rep.TotalRecords,
		ColumnCount:  len(rep.Columns),
		InsightCount: len(insights),
		ChartCount:   len(assets),
	}, nil
}

// renderCharts requests at most three conceptual charts, skipping any that
// fail or whose triggering data is absent
func (s *ReportService) renderCharts(ctx context.Context, ds *dataset.Dataset, rep *report.AnalysisReport) []report.ChartAsset {
	var assets []report.ChartAsset
	for _, req := range ChartRequests(rep) {
		asset, err := s.charts.Render(ctx, ds, req)
		if err != nil {
			s.logger.Warn("chart omitted: %v", err)
			continue
		}
		assets = append(assets, asset)
	}
	return assets
}

// cleanupAssets removes transient chart files; failures are logged and
// never affect report validity
func (s *ReportService) cleanupAssets(assets []report.ChartAsset) {
	for _, asset := range assets {
		if err := os.Remove(asset.Path); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("%v", core.NewAssetCleanupError(asset.Path, err))
		}
	}
}

// ChartRequests derives the chart plan from an analysis report:
// numeric distribution over up to four numeric columns, a pie of the first
// categorical column, and a time series of up to three numeric columns
// against the date column. Charts without triggering data are not requested.
func ChartRequests(rep *report.AnalysisReport) []ports.ChartRequest {
	var reqs []ports.ChartRequest

	numeric := rep.NumericColumns()
	if len(numeric) > 0 {
		cols := numeric
		if len(cols) > 4 {
			cols = cols[:4]
		}
		reqs = append(reqs, ports.ChartRequest{
			Kind:    ports.ChartNumericDistribution,
			Title:   "Distribution of Numeric Columns",
			Columns: cols,
		})
	}

	if categorical := rep.CategoricalColumns(); len(categorical) > 0 {
		reqs = append(reqs, ports.ChartRequest{
			Kind:    ports.ChartCategoricalDistribution,
			Title:   fmt.Sprintf("Distribution of %s", categorical[0]),
			Columns: categorical[:1],
		})
	}

	if rep.DateRange != nil && len(numeric) > 0 {
		cols := numeric
		if len(cols) > 3 {
			cols = cols[:3]
		}
		reqs = append(reqs, ports.ChartRequest{
			Kind:    ports.ChartTimeSeries,
			Title:   "Time Series Analysis",
			Columns: append([]string{rep.DateRange.Column}, cols...),
		})
	}

	return reqs
}
