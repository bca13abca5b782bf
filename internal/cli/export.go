// internal/cli/export.go
package benchlens

import (
	"bytes"
	"fmt"

	"github.com/benchlens/benchlens/internal/report"
	"github.com/benchlens/benchlens/internal/util"
	"github.com/spf13/cobra"
)

type exportOptions struct {
	inputPath  string
	outputPath string
	format     string
}

var exportOpts exportOptions

// exportCmd writes the enriched long relation to a file for downstream tools.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the normalized long-format relation to CSV or JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		records, err := loadRelation(exportOpts.inputPath, cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		outputPath := exportOpts.outputPath
		if outputPath == "" {
			outputPath = cfg.ExportPath
		}
		if outputPath == "" {
			return fmt.Errorf("output path is required (pass --output or set export in the config)")
		}

		var buf bytes.Buffer
		switch exportOpts.format {
		case "csv":
			err = report.WriteLongCSV(&buf, records)
		case "json":
			err = report.WriteLongJSON(&buf, records)
		default:
			return fmt.Errorf("unknown format %q (use csv or json)", exportOpts.format)
		}
		if err != nil {
			return err
		}

		if err := util.WriteFile(outputPath, buf.Bytes()); err != nil {
			return fmt.Errorf("unable to write export %s: %w", outputPath, err)
		}
		cmd.Printf("Exported %d records to %s\n", len(records), outputPath)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOpts.inputPath, "input", "", "Path to the benchmark CSV (falls back to dataPath from the config)")
	exportCmd.Flags().StringVar(&exportOpts.outputPath, "output", "", "Destination file (falls back to export from the config)")
	exportCmd.Flags().StringVar(&exportOpts.format, "format", "csv", "Export format: csv or json")

	rootCmd.AddCommand(exportCmd)
}
