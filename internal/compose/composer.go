// Package compose assembles analysis results into an ordered ReportDocument.
package compose

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/dataset"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/report"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/internal/describe"
)

const longDateFormat = "January 02, 2006"

// Composer builds the deterministic block sequence of a report. It never
// fails on absent optional inputs; each section degrades independently.
type Composer struct {
	cfg Config

	// Now supplies the generation timestamp; override in tests for
	// structurally identical output
	Now func() time.Time
}

// NewComposer creates a composer with the given style configuration
func NewComposer(cfg Config) *Composer {
	return &Composer{cfg: cfg, Now: time.Now}
}

// Compose assembles the ordered document from the analysis report, the
// generated insights, any chart assets and the sample dataset.
func (c *Composer) Compose(
	rep *report.AnalysisReport,
	insights []report.Insight,
	charts []report.ChartAsset,
	sample *dataset.Dataset,
) *report.ReportDocument {
	doc := &report.ReportDocument{}

	doc.Append(report.TitleBlock{Text: c.cfg.Title})
	doc.Append(c.metadataBlock(rep, sample.SourceName()))

	doc.Append(heading("Executive Summary"))
	doc.Append(c.summaryBlock(rep))

	doc.Append(heading("Data Overview"))
	doc.Append(c.overviewTable(rep))

	c.appendNumericSection(doc, rep)
	c.appendCategoricalSection(doc, rep)
	c.appendChartSection(doc, charts)
	c.appendSampleSection(doc, sample)
	c.appendInsightSection(doc, insights)

	return doc
}

func (c *Composer) metadataBlock(rep *report.AnalysisReport, sourceName string) report.ParagraphBlock {
	text := fmt.Sprintf("**Report Generated:** %s\n**Data Source:** %s\n**Total Records:** %s",
		c.Now().Format(longDateFormat),
		sourceName,
		humanize.Comma(int64(rep.TotalRecords)))
	return report.ParagraphBlock{Text: text, Style: report.StyleNormal}
}

func (c *Composer) summaryBlock(rep *report.AnalysisReport) report.ParagraphBlock {
	var b strings.Builder
	fmt.Fprintf(&b,
		"This report provides a comprehensive analysis of the dataset containing %s records across %d columns. "+
			"The analysis includes statistical summaries, visualizations, and key insights derived from the data.",
		humanize.Comma(int64(rep.TotalRecords)), len(rep.Columns))

	if rep.DateRange != nil {
		fmt.Fprintf(&b, "\n\nThe data covers the period from %s to %s.",
			rep.DateRange.Start.Format(longDateFormat),
			rep.DateRange.End.Format(longDateFormat))
	}
	return report.ParagraphBlock{Text: b.String(), Style: report.StyleNormal}
}

func (c *Composer) overviewTable(rep *report.AnalysisReport) report.TableBlock {
	rows := make([][]string, 0, len(rep.Columns))
	for _, col := range rep.Columns {
		tag := rep.DataTypes[col]
		rows = append(rows, []string{col, string(tag), describe.Resolve(col, tag)})
	}
	return report.TableBlock{
		Header:       []string{"Column Name", "Data Type", "Description"},
		Rows:         rows,
		ColumnWidths: c.cfg.OverviewColumnWidths,
	}
}

func (c *Composer) appendNumericSection(doc *report.ReportDocument, rep *report.AnalysisReport) {
	cols := rep.NumericColumns()
	if len(cols) == 0 {
		return
	}
	doc.Append(heading("Statistical Summary"))
	for _, col := range cols {
		cs := rep.SummaryStats[col]
		doc.Append(subheading(fmt.Sprintf("%s Statistics:", col)))
		text := fmt.Sprintf(
			"**Mean:** %.2f | **Median:** %.2f | **Standard Deviation:** %.2f\n"+
				"**Minimum:** %.2f | **Maximum:** %.2f | **Total:** %.2f",
			cs.Mean, cs.Median, cs.StdDev, cs.Min, cs.Max, cs.Sum)
		doc.Append(report.ParagraphBlock{Text: text, Style: report.StyleNormal})
	}
}

func (c *Composer) appendCategoricalSection(doc *report.ReportDocument, rep *report.AnalysisReport) {
	cols := rep.CategoricalColumns()
	if len(cols) == 0 {
		return
	}
	doc.Append(heading("Categorical Analysis"))
	for _, col := range cols {
		summary := rep.CategoricalSummary[col]
		doc.Append(subheading(fmt.Sprintf("%s Analysis:", col)))

		var b strings.Builder
		fmt.Fprintf(&b, "**Unique values:** %d\n\n**Top values:**", summary.UniqueValues)
		for _, vc := range summary.TopValues {
			if rep.TotalRecords > 0 {
				pct := float64(vc.Count) / float64(rep.TotalRecords) * 100
				fmt.Fprintf(&b, "\n• **%s:** %d (%.1f%%)", vc.Value, vc.Count, pct)
			} else {
				fmt.Fprintf(&b, "\n• **%s:** %d", vc.Value, vc.Count)
			}
		}
		doc.Append(report.ParagraphBlock{Text: b.String(), Style: report.StyleNormal})
	}
}

func (c *Composer) appendChartSection(doc *report.ReportDocument, charts []report.ChartAsset) {
	doc.Append(report.PageBreakBlock{})
	doc.Append(heading("Data Visualizations"))
	if len(charts) == 0 {
		doc.Append(report.ParagraphBlock{
			Text:  "Charts could not be generated for this dataset.",
			Style: report.StyleNormal,
		})
		return
	}
	for _, asset := range charts {
		doc.Append(report.ImageBlock{
			AssetPath: asset.Path,
			Width:     c.cfg.ChartWidth,
			Height:    c.cfg.ChartHeight,
		})
	}
}

func (c *Composer) appendSampleSection(doc *report.ReportDocument, sample *dataset.Dataset) {
	doc.Append(report.PageBreakBlock{})
	doc.Append(heading("Sample Data"))

	columns := sample.Columns()
	widths := make([]float64, len(columns))
	if len(columns) > 0 {
		per := c.cfg.SamplePageWidth / float64(len(columns))
		for i := range widths {
			widths[i] = per
		}
	}
	doc.Append(report.TableBlock{
		Header:       columns,
		Rows:         sample.Head(c.cfg.SampleRowLimit),
		ColumnWidths: widths,
	})
}

func (c *Composer) appendInsightSection(doc *report.ReportDocument, insights []report.Insight) {
	if !c.cfg.IncludeInsights || len(insights) == 0 {
		return
	}
	doc.Append(report.PageBreakBlock{})
	doc.Append(heading("Key Insights"))
	for _, ins := range insights {
		doc.Append(report.ParagraphBlock{
			Text:  fmt.Sprintf("• %s", ins),
			Style: report.StyleNormal,
		})
	}
}

func heading(text string) report.ParagraphBlock {
	return report.ParagraphBlock{Text: text, Style: report.StyleHeading}
}

func subheading(text string) report.ParagraphBlock {
	return report.ParagraphBlock{Text: text, Style: report.StyleSubheading}
}
