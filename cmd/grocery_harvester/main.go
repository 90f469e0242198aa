// Package main provides the entry point for the grocery harvester CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "grocery_harvester",
	Short: "Grocery product harvester",
	Long:  "Grocery harvester extracts product records from an archived storefront, persists them as CSV and loads the result into a MariaDB table via generated SQL.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
