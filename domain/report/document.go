package report

// ReportDocument is the ordered sequence of blocks handed to a document
// renderer. Block order is the reading order and must be preserved.
//
// Paragraph text uses two rich-text markers that renderers are required to
// honor: "**bold**" spans and "\n" line breaks.
type ReportDocument struct {
	Blocks []Block `json:"blocks"`
}

// Append adds blocks in order
func (d *ReportDocument) Append(blocks ...Block) {
	d.Blocks = append(d.Blocks, blocks...)
}

// BlockKind discriminates the block union
type BlockKind string

const (
	KindTitle     BlockKind = "title"
	KindParagraph BlockKind = "paragraph"
	KindTable     BlockKind = "table"
	KindImage     BlockKind = "image"
	KindPageBreak BlockKind = "page_break"
)

// ParagraphStyle selects the render treatment of a paragraph
type ParagraphStyle string

const (
	StyleNormal     ParagraphStyle = "normal"
	StyleHeading    ParagraphStyle = "heading"
	StyleSubheading ParagraphStyle = "subheading"
)

// Block is one structural unit of the composed document
type Block interface {
	Kind() BlockKind
}

// TitleBlock renders the report title
type TitleBlock struct {
	Text string `json:"text"`
}

func (TitleBlock) Kind() BlockKind { return KindTitle }

// ParagraphBlock renders rich text in a given style
type ParagraphBlock struct {
	Text  string         `json:"text"`
	Style ParagraphStyle `json:"style"`
}

func (ParagraphBlock) Kind() BlockKind { return KindParagraph }

// TableBlock renders a grid with a header row. ColumnWidths are in points;
// a nil slice lets the renderer divide the page evenly.
type TableBlock struct {
	Header       []string   `json:"header"`
	Rows         [][]string `json:"rows"`
	ColumnWidths []float64  `json:"column_widths,omitempty"`
}

func (TableBlock) Kind() BlockKind { return KindTable }

// ImageBlock references a chart asset by path. Width and height are in
// points and fix the aspect on the page.
type ImageBlock struct {
	AssetPath string  `json:"asset_path"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
}

func (ImageBlock) Kind() BlockKind { return KindImage }

// PageBreakBlock forces a page boundary
type PageBreakBlock struct{}

func (PageBreakBlock) Kind() BlockKind { return KindPageBreak }
