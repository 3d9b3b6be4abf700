package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wasdex/config"
	"wasdex/storage"
)

var historyDBPath string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived report runs",
	Long:  `List every archived report run, newest report month first.`,
	Example: `
  # List archived runs
  wasdex history
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		dbPath := historyDBPath
		if dbPath == "" {
			dbPath = cfg.Database.Path
		}
		store, err := storage.OpenSQLite(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		reports, err := store.ListReports()
		if err != nil {
			return err
		}
		if len(reports) == 0 {
			fmt.Println("No archived reports. Run: wasdex update")
			return nil
		}

		for _, row := range reports {
			fmt.Printf("%d-%02d  %-12s %-16s updated %s\n", row.Year, row.Month, row.ReportID, row.ReportDate, row.CreatedAt)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historyDBPath, "db", "", "Path to local SQLite archive (overrides database.path)")
}
