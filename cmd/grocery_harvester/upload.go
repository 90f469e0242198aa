package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/spf13/cobra"

	"github.com/philipp/grocery-harvester/internal/config"
	"github.com/philipp/grocery-harvester/internal/dataset"
	"github.com/philipp/grocery-harvester/internal/product"
	"github.com/philipp/grocery-harvester/internal/sqlgen"
	"github.com/philipp/grocery-harvester/internal/upload"
)

var (
	uploadCSVPath   string
	uploadDropTable bool
	uploadInfer     bool
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Load an accumulated CSV into the database table",
	Long:  `Read the crawl output CSV, create the target table (explicit type map by default, inference with --infer-types) and insert every row. Failed statements are written to a dated log file.`,
	RunE:  runUpload,
}

func init() {
	uploadCmd.Flags().StringVar(&uploadCSVPath, "csv", "", "Path to the CSV file to upload (required)")
	uploadCmd.Flags().BoolVar(&uploadDropTable, "drop-table", false, "Drop the target table before creating it")
	uploadCmd.Flags().BoolVar(&uploadInfer, "infer-types", false, "Infer column types from the data instead of the explicit type map")
	_ = uploadCmd.MarkFlagRequired("csv")
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN environment variable is required")
	}

	ds, err := dataset.Load(uploadCSVPath)
	if err != nil {
		return err
	}

	db, err := sql.Open("mysql", cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()
	if err := db.PingContext(cmd.Context()); err != nil {
		return fmt.Errorf("failed to connect to database %s: %w", cfg.DatabaseName, err)
	}

	var types sqlgen.TypeMap
	if uploadInfer {
		types = sqlgen.InferColumnTypes(ds, sqlgen.DefaultInferOptions())
	} else {
		types = sqlgen.TypeMap(product.ColumnTypes())
	}

	uploader := &upload.Uploader{
		Database: cfg.DatabaseName,
		Table:    cfg.TableName,
		Exec:     upload.NewExecutor(db),
	}

	ctx := cmd.Context()
	if uploadDropTable {
		if err := uploader.DropTable(ctx); err != nil {
			return err
		}
	}
	if err := uploader.CreateTable(ctx, ds, types); err != nil {
		return err
	}

	fmt.Printf("Uploading data table %s to database %s...\n", cfg.TableName, cfg.DatabaseName)
	if err := uploader.InsertDataset(ctx, ds, product.JSONArrayColumns()); err != nil {
		return err
	}

	failed := uploader.Exec.Failed()
	if len(failed) == 0 {
		fmt.Println("No errors occurred.")
		return nil
	}

	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	logPath, err := upload.WriteFailedLog(cfg.LogDir, cfg.TableName, cfg.DatabaseName, failed)
	if err != nil {
		return err
	}
	fmt.Printf("%d statements failed; details in %s\n", len(failed), logPath)
	return nil
}
