package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"wasdex/config"
	"wasdex/storage"
)

var (
	exportYear   int
	exportMonth  int
	exportOutput string
	exportDBPath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write an archived report record as JSON",
	Long: `Write the archived normalized record for one report month to stdout or a file.

Year and month default to the current date.`,
	Example: `
  # Print the February 2026 record
  wasdex export --year 2026 --month 2

  # Write it to a file
  wasdex export --year 2026 --month 2 --output ./wasde-2026-02.json
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		year, month := resolveReportMonth(exportYear, exportMonth, time.Now())

		dbPath := exportDBPath
		if dbPath == "" {
			dbPath = cfg.Database.Path
		}
		store, err := storage.OpenSQLite(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		row, err := store.GetReport(year, month)
		if err != nil {
			return fmt.Errorf("report %d-%02d: %w", year, month, err)
		}

		if exportOutput == "" {
			fmt.Println(string(row.Payload))
			return nil
		}
		if err := os.WriteFile(exportOutput, append(row.Payload, '\n'), 0o644); err != nil {
			return fmt.Errorf("write export %s: %w", exportOutput, err)
		}
		fmt.Printf("Export completed. Report: %s, File: %s\n", row.ReportID, exportOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().IntVar(&exportYear, "year", 0, "Report year (defaults to current year)")
	exportCmd.Flags().IntVar(&exportMonth, "month", 0, "Report month 1-12 (defaults to current month)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path (stdout when omitted)")
	exportCmd.Flags().StringVar(&exportDBPath, "db", "", "Path to local SQLite archive (overrides database.path)")
}
