// internal/cli/show.go
package benchlens

import (
	"github.com/benchlens/benchlens/internal/appconfig"
	"github.com/spf13/cobra"
)

// showCmd groups read-only inspection subcommands.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Inspect application state",
}

// showConfigCmd displays the effective configuration after flag merging.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show the effective configuration after the config file and flags have been merged.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := GetConfig()
		if cfg == nil {
			fallback := appconfig.Default()
			appconfig.ShowConfig(cmd.OutOrStdout(), fallback)
			return
		}
		appconfig.ShowConfig(cmd.OutOrStdout(), *cfg)
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
	rootCmd.AddCommand(showCmd)
}
