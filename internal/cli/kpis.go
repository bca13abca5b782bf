// internal/cli/kpis.go
package benchlens

import (
	"github.com/benchlens/benchlens/internal/metrics"
	"github.com/benchlens/benchlens/internal/report"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
)

type kpisOptions struct {
	inputPath string
	model     string
	asJSON    bool
}

var kpisOpts kpisOptions

// kpisCmd computes and renders the aggregate KPI summary for a benchmark CSV.
var kpisCmd = &cobra.Command{
	Use:   "kpis",
	Short: "Compute aggregate KPIs from a benchmark CSV",
	Long: `Read a wide-format benchmark CSV, normalize it, derive environmental
metrics, and print the KPI summary. With more than one model in scope the
quality, latency, and energy means are macro-averaged (average of per-model
means); p95 latency and total energy always pool all individual records.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		records, err := loadRelation(kpisOpts.inputPath, cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		records = metrics.FilterModel(records, kpisOpts.model)

		if cfg.Debug {
			pp.Println(cfg.Factors)
		}

		summary := metrics.ComputeKpis(records)
		if kpisOpts.asJSON {
			return report.WriteKpiJSON(cmd.OutOrStdout(), summary)
		}
		cmd.Println(report.RenderKpiCards(summary))
		return nil
	},
}

func init() {
	kpisCmd.Flags().StringVar(&kpisOpts.inputPath, "input", "", "Path to the benchmark CSV (falls back to dataPath from the config)")
	kpisCmd.Flags().StringVar(&kpisOpts.model, "model", "", "Restrict the summary to a single model")
	kpisCmd.Flags().BoolVar(&kpisOpts.asJSON, "json", false, "Emit the summary as JSON instead of cards")

	rootCmd.AddCommand(kpisCmd)
}
