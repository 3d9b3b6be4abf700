package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage wasdex configuration file values.",
	Long: `Create and display the wasdex configuration file.

The configuration stores:
- source.base_url / source.timeout_seconds
- publish.template
- database.path`,
	Example: `
  # Create default config in $HOME/.wasdex.yaml
  wasdex config create

  # Show active config and source file
  wasdex config show
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
