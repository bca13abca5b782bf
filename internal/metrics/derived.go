// internal/metrics/derived.go
package metrics

import "math"

// cellKey addresses one (model, prompt) cell of the matrix.
type cellKey struct {
	model  string
	prompt string
}

type tripleKey struct {
	model  string
	prompt string
	metric MetricKind
}

// AddDerived returns a new relation enriched with environmental metrics
// computed from each (model, prompt) energy reading:
//
//	co2_g           = (e / 1000) * GridIntensityGCO2PerKWh
//	led_hours       = (e / LEDBulbWatts) * 60   (minutes; see MetricLEDHours)
//	onlinevideo_min = e / OnlineVideoWhPerMin
//
// Cells without an energy reading produce no derived records. Computed
// values are rounded to 3 decimal places; values that come out NaN or
// infinite (misconfigured factors) are dropped rather than propagated.
//
// When a derived metric is already present in the input for the same
// (model, prompt, metric) triple it is kept untouched unless override is
// true, in which case the pre-existing record is replaced by the computed
// one. The input slice and its records are never mutated.
func AddDerived(records []LongRecord, factors Factors, override bool) []LongRecord {
	energy := make(map[cellKey]float64)
	var cells []cellKey
	existing := make(map[tripleKey]struct{})
	for _, r := range records {
		if r.Metric == MetricEnergy {
			k := cellKey{r.Model, r.Prompt}
			if _, ok := energy[k]; !ok {
				// Duplicate energy triples resolve to the first match.
				energy[k] = r.Value
				cells = append(cells, k)
			}
			continue
		}
		existing[tripleKey{r.Model, r.Prompt, r.Metric}] = struct{}{}
	}

	fresh := make([]LongRecord, 0, len(cells)*3)
	superseded := make(map[tripleKey]struct{})
	for _, cell := range cells {
		e := energy[cell]
		computed := []LongRecord{
			{cell.model, cell.prompt, MetricCO2, (e / 1000) * factors.GridIntensityGCO2PerKWh},
			{cell.model, cell.prompt, MetricLEDHours, (e / factors.LEDBulbWatts) * 60},
			{cell.model, cell.prompt, MetricVideoMin, e / factors.OnlineVideoWhPerMin},
		}
		for _, rec := range computed {
			rec.Value = roundTo(rec.Value, 3)
			if math.IsNaN(rec.Value) || math.IsInf(rec.Value, 0) {
				continue
			}
			triple := tripleKey{rec.Model, rec.Prompt, rec.Metric}
			if _, ok := existing[triple]; ok {
				if !override {
					continue
				}
				superseded[triple] = struct{}{}
			}
			fresh = append(fresh, rec)
		}
	}

	out := make([]LongRecord, 0, len(records)+len(fresh))
	for _, r := range records {
		if _, ok := superseded[tripleKey{r.Model, r.Prompt, r.Metric}]; ok {
			continue
		}
		out = append(out, r)
	}
	return append(out, fresh...)
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
