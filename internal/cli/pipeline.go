// internal/cli/pipeline.go
package benchlens

import (
	"fmt"
	"io"

	"github.com/benchlens/benchlens/internal/appconfig"
	"github.com/benchlens/benchlens/internal/ingest"
	"github.com/benchlens/benchlens/internal/logging"
	"github.com/benchlens/benchlens/internal/metrics"
	"github.com/fatih/color"
)

var warnSprint = color.New(color.FgYellow).SprintFunc()

// diagObserver surfaces reshaping diagnostics on the command's error
// stream and mirrors them into the application log.
type diagObserver struct {
	out io.Writer
}

func (d *diagObserver) LabelSkipped(label string) {
	logging.LogSkip("reshape", fmt.Sprintf("unparseable label %q", label))
	fmt.Fprintln(d.out, warnSprint(fmt.Sprintf("warning: skipped unparseable row label %q", label)))
}

// loadRelation runs the shared front half of every command pipeline: read
// the wide CSV, reshape it into the long relation, and enrich it with
// derived environmental metrics using the configured factors.
func loadRelation(inputPath string, cfg *appconfig.Config, diagOut io.Writer) ([]metrics.LongRecord, error) {
	if inputPath == "" {
		inputPath = cfg.DataPath
	}
	if inputPath == "" {
		return nil, fmt.Errorf("benchmark CSV is required (pass --input or set dataPath in the config)")
	}

	rows, err := ingest.ReadMatrixCSV(inputPath)
	if err != nil {
		return nil, err
	}

	records := metrics.Reshape(rows, &diagObserver{out: diagOut})
	records = metrics.AddDerived(records, cfg.Factors, cfg.Override)
	logging.LogEvent("[PIPELINE] %s: %d rows -> %d records", inputPath, len(rows), len(records))
	return records, nil
}
