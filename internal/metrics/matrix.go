// internal/metrics/matrix.go
package metrics

import "math"

// BuildMatrix projects the long relation back into a dense models×prompts
// grid for one metric. Cells without a matching record hold NaN. Duplicate
// (model, prompt, metric) triples resolve to the first match in relation
// order.
func BuildMatrix(records []LongRecord, metric MetricKind, models, prompts []string) [][]float64 {
	index := make(map[cellKey]float64, len(records))
	for _, r := range records {
		if r.Metric != metric {
			continue
		}
		k := cellKey{r.Model, r.Prompt}
		if _, ok := index[k]; !ok {
			index[k] = r.Value
		}
	}

	matrix := make([][]float64, len(models))
	for i, model := range models {
		row := make([]float64, len(prompts))
		for j, prompt := range prompts {
			if v, ok := index[cellKey{model, prompt}]; ok {
				row[j] = v
			} else {
				row[j] = math.NaN()
			}
		}
		matrix[i] = row
	}
	return matrix
}

// MinMax returns the bounds over all finite cells of a matrix. When every
// cell is NaN (or the matrix is empty) it returns the default (0, 1) so a
// color scale never sees non-finite bounds.
func MinMax(matrix [][]float64) (min, max float64) {
	found := false
	for _, row := range matrix {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if !found {
				min, max = v, v
				found = true
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	if !found {
		return 0, 1
	}
	return min, max
}
