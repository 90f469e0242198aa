package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/philipp/grocery-harvester/internal/config"
	"github.com/philipp/grocery-harvester/internal/locations"
)

var locationsStore string

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "Export store locations from the location-search API",
	Long:  `Query the location-search API for the given store chain and append the results to a locations CSV in the output directory.`,
	RunE:  runLocations,
}

func init() {
	locationsCmd.Flags().StringVar(&locationsStore, "store", "Netto", "Store chain to search for")
	rootCmd.AddCommand(locationsCmd)
}

func runLocations(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.SerpAPIKey == "" {
		return fmt.Errorf("SERP_API_KEY environment variable is required")
	}

	client := locations.NewClient(cfg.SerpAPIKey)
	locs, err := client.Search(cmd.Context(), locationsStore)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(cfg.OutputDir, fmt.Sprintf("locations_info_%s.csv", locationsStore))
	if err := locations.WriteCSV(path, locs); err != nil {
		return err
	}

	fmt.Printf("Wrote %d locations to %s\n", len(locs), path)
	return nil
}
