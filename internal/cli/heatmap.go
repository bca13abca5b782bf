// internal/cli/heatmap.go
package benchlens

import (
	"fmt"

	"github.com/benchlens/benchlens/internal/metrics"
	"github.com/benchlens/benchlens/internal/report"
	"github.com/spf13/cobra"
)

type heatmapOptions struct {
	inputPath string
	metric    string
}

var heatmapOpts heatmapOptions

// heatmapCmd renders one metric of the benchmark matrix as a colored grid.
var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Render a models×prompts heatmap for one metric",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := metrics.MetricKind(heatmapOpts.metric)
		if !kind.Known() {
			return fmt.Errorf("unknown metric %q (known: %v)", heatmapOpts.metric, metrics.AllMetricKinds)
		}

		records, err := loadRelation(heatmapOpts.inputPath, GetConfig(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		if len(records) == 0 {
			cmd.Println("No usable records in the input.")
			return nil
		}

		models := metrics.Models(records)
		prompts := metrics.Prompts(records)
		matrix := metrics.BuildMatrix(records, kind, models, prompts)
		cmd.Println(report.RenderHeatmap(matrix, models, prompts, kind))
		return nil
	},
}

func init() {
	heatmapCmd.Flags().StringVar(&heatmapOpts.inputPath, "input", "", "Path to the benchmark CSV (falls back to dataPath from the config)")
	heatmapCmd.Flags().StringVar(&heatmapOpts.metric, "metric", string(metrics.MetricQuality), "Metric kind to render")

	rootCmd.AddCommand(heatmapCmd)
}
