package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wasdex/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wasdex",
	Short: "Fetch, extract, and publish monthly WASDE supply/demand figures.",
	Long: `wasdex keeps a commodity supply/demand dashboard current.

Each month it downloads the WASDE report workbook, extracts corn, soybean
(incl. oil/meal), and wheat (incl. by-class) figures from the report pages,
normalizes them into a fixed JSON record, embeds that record into the
dashboard HTML, and archives the record in a local SQLite database.`,
	Example: `
  # Create configuration file
  wasdex config create

  # Run the monthly update for the current month
  wasdex update

  # Run for a specific report month
  wasdex update --year 2026 --month 2

  # Extract from an already-downloaded workbook, publish JSON only
  wasdex update --input ./wasde0226.xls --publish json --output ./wasde.json

  # Inspect the archive
  wasdex history
  wasdex export --year 2026 --month 2

  # Serve the dashboard locally
  wasdex serve --port 8080
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.wasdex.yaml, then ./.wasdex.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".wasdex" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".wasdex")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in. Defaults cover every value, so
	// running without one is fine.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found, using defaults. Create one with: wasdex config create")
	}
}
