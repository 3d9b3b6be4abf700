package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wasdex/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  wasdex config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file loaded, showing defaults.")
		}
		fmt.Println("Configuration:")
		fmt.Printf("source.base_url: %s\n", cfg.Source.BaseURL)
		fmt.Printf("source.timeout_seconds: %d\n", cfg.Source.TimeoutSeconds)
		fmt.Printf("publish.template: %s\n", cfg.Publish.Template)
		fmt.Printf("database.path: %s\n", cfg.Database.Path)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
