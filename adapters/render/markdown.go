// Package render turns composed report documents into output files.
package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"

	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/core"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/report"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/ports"
)

const pageBreakMarker = `<div style="page-break-after: always;"></div>`

// MarkdownRenderer writes the block sequence as Markdown, or as HTML when
// the output path carries an .html extension. Block order is preserved;
// paragraph bold markers are already Markdown and line breaks become hard
// breaks.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a document renderer
func NewMarkdownRenderer() ports.DocumentRenderer {
	return &MarkdownRenderer{}
}

// Render writes the document to outputPath
func (r *MarkdownRenderer) Render(ctx context.Context, doc *report.ReportDocument, outputPath string) error {
	md := r.toMarkdown(doc)

	content := []byte(md)
	if strings.EqualFold(filepath.Ext(outputPath), ".html") {
		p := parser.NewWithExtensions(parser.CommonExtensions | parser.HardLineBreak)
		content = markdown.ToHTML(content, p, nil)
	}

	if err := os.WriteFile(outputPath, content, 0o644); err != nil {
		return fmt.Errorf("%w: %v", core.ErrRenderFailed, err)
	}
	return nil
}

func (r *MarkdownRenderer) toMarkdown(doc *report.ReportDocument) string {
	var b strings.Builder
	for _, block := range doc.Blocks {
		switch blk := block.(type) {
		case report.TitleBlock:
			fmt.Fprintf(&b, "# %s\n\n", blk.Text)
		case report.ParagraphBlock:
			writeParagraph(&b, blk)
		case report.TableBlock:
			writeTable(&b, blk)
		case report.ImageBlock:
			fmt.Fprintf(&b, "![chart](%s)\n\n", blk.AssetPath)
		case report.PageBreakBlock:
			fmt.Fprintf(&b, "%s\n\n", pageBreakMarker)
		}
	}
	return b.String()
}

func writeParagraph(b *strings.Builder, blk report.ParagraphBlock) {
	switch blk.Style {
	case report.StyleHeading:
		fmt.Fprintf(b, "## %s\n\n", blk.Text)
	case report.StyleSubheading:
		fmt.Fprintf(b, "### %s\n\n", blk.Text)
	default:
		// hard line breaks inside a paragraph
		text := strings.ReplaceAll(blk.Text, "\n", "  \n")
		fmt.Fprintf(b, "%s\n\n", text)
	}
}

func writeTable(b *strings.Builder, blk report.TableBlock) {
	if len(blk.Header) == 0 {
		return
	}
	writeRow(b, blk.Header)
	sep := make([]string, len(blk.Header))
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(b, sep)
	for _, row := range blk.Rows {
		writeRow(b, row)
	}
	b.WriteString("\n")
}

func writeRow(b *strings.Builder, cells []string) {
	escaped := make([]string, len(cells))
	for i, cell := range cells {
		escaped[i] = strings.ReplaceAll(cell, "|", `\|`)
	}
	fmt.Fprintf(b, "| %s |\n", strings.Join(escaped, " | "))
}
