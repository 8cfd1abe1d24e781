package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/adapters/api"
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
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := internal.NewDefaultLogger()

	var repo ports.ReportRepository
	if cfg.Database.URL != "" {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		defer db.Close()
		repo = postgres.NewReportRepository(db)
	}

	composeCfg := compose.DefaultConfig()
	composeCfg.Title = cfg.Report.Title

	service := app.NewReportService(
		tabular.NewLoader(),
		charts.NewRenderer(cfg.Report.AssetDir),
		render.NewMarkdownRenderer(),
		repo,
		composeCfg,
		logger,
	)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: api.NewServer(service, repo, logger).Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
