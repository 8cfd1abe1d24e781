package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/adapters/charts"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/adapters/postgres"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/adapters/render"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/adapters/tabular"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/app"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/internal"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/internal/compose"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/internal/config"
	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/ports"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "reportgen",
		Short: "Generate analysis reports from tabular data files",
	}

	rootCmd.AddCommand(newGenerateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newGenerateCmd() *cobra.Command {
	var output string
	var title string
	var noCharts bool
	var noInsights bool

	cmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Analyze a CSV or Excel file and write a report",
		Long: `Analyze a tabular data file and write a Markdown or HTML report.

The report contains descriptive statistics, categorical summaries,
heuristic insights, chart visualizations and a data sample.

Example: reportgen generate sales.csv --output sales_report.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if title != "" {
				cfg.Report.Title = title
			}
			if output == "" {
				output = defaultOutputPath(args[0], cfg.Report.OutputDir)
			}
			return runGenerate(cmd, cfg, args[0], output, !noCharts, !noInsights)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default: <file>_report.md next to REPORT_OUTPUT_DIR)")
	cmd.Flags().StringVar(&title, "title", "", "Report title override")
	cmd.Flags().BoolVar(&noCharts, "no-charts", false, "Skip chart generation")
	cmd.Flags().BoolVar(&noInsights, "no-insights", false, "Omit the key insights section")

	return cmd
}

func runGenerate(cmd *cobra.Command, cfg *config.Config, source, output string, withCharts, withInsights bool) error {
	logger := internal.NewDefaultLogger()

	var repo ports.ReportRepository
	if cfg.Database.URL != "" {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			logger.Warn("run log disabled, database unreachable: %v", err)
		} else {
			defer db.Close()
			repo = postgres.NewReportRepository(db)
		}
	}

	composeCfg := compose.DefaultConfig()
	composeCfg.Title = cfg.Report.Title
	composeCfg.IncludeInsights = withInsights

	service := app.NewReportService(
		tabular.NewLoader(),
		charts.NewRenderer(cfg.Report.AssetDir),
		render.NewMarkdownRenderer(),
		repo,
		composeCfg,
		logger,
	)

	result, err := service.Generate(cmd.Context(), app.GenerateRequest{
		SourcePath: source,
		OutputPath: output,
		Charts:     withCharts && cfg.Report.ChartsEnabled,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Report written to %s\n", result.OutputPath)
	fmt.Printf("  records:  %d\n", result.TotalRecords)
	fmt.Printf("  columns:  %d\n", result.ColumnCount)
	fmt.Printf("  insights: %d\n", result.InsightCount)
	fmt.Printf("  charts:   %d\n", result.ChartCount)
	return nil
}

func defaultOutputPath(source, outputDir string) string {
	base := filepath.Base(source)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, stem+"_report.md")
}
