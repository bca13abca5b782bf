// internal/ingest/csv.go
// Package ingest reads wide-format benchmark CSV files into raw matrix rows.
// The first header column is the row label; every other header cell is a
// prompt id. Cell values are coerced to number-or-null here so the metrics
// engine never sees raw strings.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/benchlens/benchlens/internal/metrics"
)

// ReadMatrixCSV reads and parses the wide-format CSV at path.
func ReadMatrixCSV(path string) ([]metrics.RawMatrixRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open benchmark CSV %s: %w", path, err)
	}
	defer file.Close()

	rows, err := ParseMatrixCSV(file)
	if err != nil {
		return nil, fmt.Errorf("unable to parse benchmark CSV %s: %w", path, err)
	}
	return rows, nil
}

// ParseMatrixCSV parses wide-format CSV data from r. Rows shorter than the
// header simply omit the trailing prompts; rows longer than the header have
// their extra cells ignored. Blank labels are skipped.
func ParseMatrixCSV(r io.Reader) ([]metrics.RawMatrixRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("csv header needs a label column and at least one prompt column")
	}

	prompts := make([]string, 0, len(header)-1)
	for _, cell := range header[1:] {
		prompts = append(prompts, strings.TrimSpace(cell))
	}

	var rows []metrics.RawMatrixRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(record) == 0 {
			continue
		}
		label := strings.TrimSpace(record[0])
		if label == "" {
			continue
		}

		values := make(map[string]*float64, len(prompts))
		for i, prompt := range prompts {
			if prompt == "" {
				continue
			}
			if i+1 >= len(record) {
				values[prompt] = nil
				continue
			}
			values[prompt] = parseCell(record[i+1])
		}
		rows = append(rows, metrics.RawMatrixRow{Label: label, Values: values})
	}
	return rows, nil
}

// parseCell coerces one CSV cell to number-or-null. Empty cells and the
// usual missing-value spellings become nil, as do values that parse to
// NaN or infinity.
func parseCell(cell string) *float64 {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return nil
	}
	switch strings.ToLower(trimmed) {
	case "na", "n/a", "nan", "null", "nil", "-":
		return nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
