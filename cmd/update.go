package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"wasdex/config"
	"wasdex/extract"
	"wasdex/publish"
	"wasdex/report"
	"wasdex/source"
	"wasdex/storage"
)

var (
	updateYear     int
	updateMonth    int
	updateInput    string
	updateTemplate string
	updateOutput   string
	updatePublish  string
	updateDBPath   string
	updateKeep     bool
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Download the monthly report, extract figures, publish, and archive",
	Long: `Run the full monthly pipeline: fetch the report workbook for the requested
year/month, extract the commodity figures, embed the normalized record into
the dashboard HTML, and archive the record in SQLite.

Year and month default to the current date. Rows the extractor cannot find
degrade to zero-filled series and are listed as data-quality warnings; a
missing report page or a missing dashboard data block aborts the run.`,
	Example: `
  # Monthly run with current year/month
  wasdex update

  # Specific report month
  wasdex update --year 2026 --month 2

  # Use an already-downloaded workbook and keep it afterwards
  wasdex update --input ./wasde0226.xls --keep

  # Publish a standalone JSON file instead of updating the dashboard
  wasdex update --publish json --output ./wasde.json

  # Extract and archive without publishing
  wasdex update --publish none
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		year, month := resolveReportMonth(updateYear, updateMonth, time.Now())

		sheets, workbookPath, downloaded, err := loadSheets(cmd, cfg, year, month)
		if err != nil {
			return err
		}

		result, err := extract.Run(extract.Input{Year: year, Month: month, Sheets: sheets})
		if err != nil {
			return err
		}

		payload, err := publish.Encode(result.Record)
		if err != nil {
			return err
		}

		if updatePublish != "none" {
			sink, sinkErr := resolveSink(cfg)
			if sinkErr != nil {
				return sinkErr
			}
			if err := sink.Publish(result.Record); err != nil {
				return err
			}
		}

		dbPath := updateDBPath
		if dbPath == "" {
			dbPath = cfg.Database.Path
		}
		store, err := storage.OpenSQLite(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		reportID, _ := result.Record["reportId"].(string)
		reportDate, _ := result.Record["reportDate"].(string)
		if err := store.SaveReport(year, month, reportID, reportDate, payload); err != nil {
			return err
		}

		fmt.Printf("Update completed. Report: %s — %s, Fields resolved: %d, Fields defaulted: %d\n",
			reportID,
			reportDate,
			len(result.Quality.Resolved),
			len(result.Quality.Defaulted),
		)
		for _, field := range result.Quality.Defaulted {
			fmt.Printf("Warning: row not found, field defaulted to zero: %s\n", field)
		}
		printHeadlines(result.Record)

		if downloaded && !updateKeep {
			if err := os.Remove(workbookPath); err != nil {
				fmt.Printf("Warning: could not remove downloaded workbook %s: %v\n", workbookPath, err)
			}
		}

		return nil
	},
}

// loadSheets decodes the report pages either from a local workbook or by
// downloading the month's file. The returned flag says whether the workbook
// was downloaded by this run (and so may be cleaned up afterwards).
func loadSheets(cmd *cobra.Command, cfg *config.Config, year, month int) (map[string]report.Sheet, string, bool, error) {
	if updateInput != "" {
		sheets, err := source.ReadWorkbook(updateInput, extract.Pages())
		return sheets, updateInput, false, err
	}

	client, err := source.NewClient(source.ClientConfig{
		BaseURL: cfg.Source.BaseURL,
		Timeout: time.Duration(cfg.Source.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		return nil, "", false, err
	}

	path, err := client.Download(cmd.Context(), year, month, ".")
	if err != nil {
		return nil, "", false, err
	}
	fmt.Printf("Downloaded %s\n", path)

	sheets, err := source.ReadWorkbook(path, extract.Pages())
	return sheets, path, true, err
}

func resolveSink(cfg *config.Config) (publish.Sink, error) {
	switch updatePublish {
	case "html":
		template := updateTemplate
		if template == "" {
			template = cfg.Publish.Template
		}
		return publish.SinkForFormat("html", template)
	case "json":
		return publish.SinkForFormat("json", updateOutput)
	default:
		return nil, fmt.Errorf("unsupported publish mode: %s (supported: html, json, none)", updatePublish)
	}
}

// resolveReportMonth fills unset year/month flags from the clock.
func resolveReportMonth(year, month int, now time.Time) (int, int) {
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	return year, month
}

// printHeadlines mirrors the figures a human checks first after a release.
func printHeadlines(record report.Record) {
	for _, name := range []string{"corn", "soybeans", "wheat"} {
		commodity, ok := record[name].(report.Mapping)
		if !ok {
			continue
		}
		price, _ := commodity["price"].(report.Series)
		stocks, _ := commodity["endStocks"].(report.Series)
		if len(price) < 3 || len(stocks) < 3 {
			continue
		}
		fmt.Printf("%s: price %.2f, ending stocks %.0f\n", name, price[2], stocks[2])
	}
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().IntVar(&updateYear, "year", 0, "Report year (defaults to current year)")
	updateCmd.Flags().IntVar(&updateMonth, "month", 0, "Report month 1-12 (defaults to current month)")
	updateCmd.Flags().StringVarP(&updateInput, "input", "i", "", "Local workbook path (skips download)")
	updateCmd.Flags().StringVar(&updateTemplate, "template", "", "Dashboard HTML path (overrides publish.template)")
	updateCmd.Flags().StringVarP(&updateOutput, "output", "o", "./wasde.json", "Output path for --publish json")
	updateCmd.Flags().StringVar(&updatePublish, "publish", "html", "Publish mode: html|json|none")
	updateCmd.Flags().StringVar(&updateDBPath, "db", "", "Path to local SQLite archive (overrides database.path)")
	updateCmd.Flags().BoolVar(&updateKeep, "keep", false, "Keep the downloaded workbook file")
}
