// internal/metrics/reshape.go
package metrics

import (
	"math"
	"sort"
)

// Reshape pivots wide matrix rows into the normalized long relation. Rows
// whose label fails to parse are dropped and reported through obs; cells
// whose value is nil, NaN, or infinite are dropped silently (absence of a
// measurement is a normal state, not an error). Output order within a row
// is not guaranteed; consumers sort independently when they need ordering.
func Reshape(rows []RawMatrixRow, obs Observer) []LongRecord {
	records := make([]LongRecord, 0, len(rows))
	for _, row := range rows {
		model, kind, ok := ParseLabel(row.Label)
		if !ok {
			if obs != nil {
				obs.LabelSkipped(row.Label)
			}
			continue
		}
		for prompt, value := range row.Values {
			if value == nil || math.IsNaN(*value) || math.IsInf(*value, 0) {
				continue
			}
			records = append(records, LongRecord{
				Model:  model,
				Prompt: prompt,
				Metric: kind,
				Value:  *value,
			})
		}
	}
	return records
}

// Models returns the distinct model identifiers in the relation, sorted.
func Models(records []LongRecord) []string {
	return distinct(records, func(r LongRecord) string { return r.Model })
}

// Prompts returns the distinct prompt ids in the relation, sorted.
func Prompts(records []LongRecord) []string {
	return distinct(records, func(r LongRecord) string { return r.Prompt })
}

func distinct(records []LongRecord, key func(LongRecord) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// FilterModel returns the records belonging to a single model. An empty
// model selects everything. The input is never modified.
func FilterModel(records []LongRecord, model string) []LongRecord {
	if model == "" {
		return records
	}
	var out []LongRecord
	for _, r := range records {
		if r.Model == model {
			out = append(out, r)
		}
	}
	return out
}
