package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/philipp/grocery-harvester/internal/config"
	"github.com/philipp/grocery-harvester/internal/crawl"
	"github.com/philipp/grocery-harvester/internal/csvstore"
	"github.com/philipp/grocery-harvester/internal/observability"
)

var (
	crawlDataDir   string
	crawlOutputDir string
	crawlMetrics   bool
)

var crawlCmd = &cobra.Command{
	Use:   "crawl",
	Short: "Extract product records from the archived webpage tree",
	Long:  `Traverse the archived HTML tree, build one normalized record per product detail page and append it to the dated output CSV. Prints the run summary when done.`,
	RunE:  runCrawl,
}

func init() {
	crawlCmd.Flags().StringVar(&crawlDataDir, "data-dir", "", "Archived webpage directory (default from DATA_DIR)")
	crawlCmd.Flags().StringVar(&crawlOutputDir, "output-dir", "", "Output directory for the CSV (default from OUTPUT_DIR)")
	crawlCmd.Flags().BoolVar(&crawlMetrics, "metrics", false, "Expose prometheus counters on /metrics while crawling")
	rootCmd.AddCommand(crawlCmd)
}

func runCrawl(_ *cobra.Command, _ []string) error {
	cfg := config.Load()
	if crawlDataDir != "" {
		cfg.DataDir = crawlDataDir
	}
	if crawlOutputDir != "" {
		cfg.OutputDir = crawlOutputDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	store := csvstore.New()
	csvName := fmt.Sprintf("product_info_%s.csv", time.Now().Format("2006_01_02"))
	if err := store.SetDestination(filepath.Join(cfg.OutputDir, csvName)); err != nil {
		return err
	}

	runner := &crawl.Runner{
		Store: store,
		Stats: csvstore.NewRunStats(),
	}
	if crawlMetrics {
		runner.Metrics = observability.NewCrawlMetrics(prometheus.DefaultRegisterer)
		observability.Serve(cfg.MetricsPort)
	}

	if err := runner.Run(cfg.DataDir); err != nil {
		return err
	}

	runner.Stats.Report(os.Stdout)
	fmt.Printf("Records written to %s\n", store.Path())
	return nil
}
