// internal/cli/view.go
package benchlens

import (
	"github.com/benchlens/benchlens/internal/tui"
	"github.com/spf13/cobra"
)

type viewOptions struct {
	inputPath string
}

var viewOpts viewOptions

// viewCmd opens the interactive terminal viewer over a benchmark CSV.
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Explore a benchmark CSV interactively",
	Long: `Open an interactive terminal viewer: pick a model (or all models),
cycle through metrics, and inspect the heatmap and KPI summary. KPIs and
matrices are recomputed on every selection change.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		records, err := loadRelation(viewOpts.inputPath, cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		return tui.Start(records)
	},
}

func init() {
	viewCmd.Flags().StringVar(&viewOpts.inputPath, "input", "", "Path to the benchmark CSV (falls back to dataPath from the config)")

	rootCmd.AddCommand(viewCmd)
}
