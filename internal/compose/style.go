package compose

// Config is the immutable style and layout configuration for one report.
// It is constructed once per generation and passed explicitly; the composer
// keeps no process-wide state.
type Config struct {
	Title string

	// Overview table column widths in points (name, type, description)
	OverviewColumnWidths []float64

	// Usable page width in points for the sample-data table
	SamplePageWidth float64
	SampleRowLimit  int

	// Fixed chart placement in points
	ChartWidth  float64
	ChartHeight float64

	// IncludeInsights controls the trailing insights section
	IncludeInsights bool
}

// DefaultConfig mirrors the A4 layout of the reference reports:
// 2in/1.5in/3in overview columns, 6.5in sample width, 6in x 3.6in charts.
func DefaultConfig() Config {
	return Config{
		Title:                "Automated Data Analysis Report",
		OverviewColumnWidths: []float64{144, 108, 216},
		SamplePageWidth:      468,
		SampleRowLimit:       10,
		ChartWidth:           432,
		ChartHeight:          259.2,
		IncludeInsights:      true,
	}
}
