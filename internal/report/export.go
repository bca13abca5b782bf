// internal/report/export.go
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/benchlens/benchlens/internal/metrics"
)

// WriteLongCSV writes the long relation as CSV with a fixed
// model,prompt,metric,value header.
func WriteLongCSV(w io.Writer, records []metrics.LongRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"model", "prompt", "metric", "value"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{r.Model, r.Prompt, string(r.Metric), strconv.FormatFloat(r.Value, 'f', -1, 64)}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteLongJSON writes the long relation as an indented JSON array.
func WriteLongJSON(w io.Writer, records []metrics.LongRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// WriteKpiJSON writes a KPI summary as indented JSON. Missing summary
// fields marshal as null.
func WriteKpiJSON(w io.Writer, summary metrics.KpiSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
