// internal/metrics/kpis.go
package metrics

import (
	"math"
	"sort"
)

// ComputeKpis computes the summary KPIs for a slice of the long relation.
//
// When more than one distinct model is present the quality, latency, and
// energy means are macro-averaged: each model's own mean is computed first
// and those per-model means are averaged unweighted, so a model with few
// prompts counts as much as one with many. With a single model the mean is
// taken directly over its records. P95 latency and total energy are always
// computed over all individual records in scope, with no per-model grouping.
//
// Rounding happens only here at the summary boundary: quality and
// quality-per-Wh to 2 decimals, latencies to 3, energies to 4. A metric
// with no contributing values yields a nil field, never 0 or NaN.
func ComputeKpis(records []LongRecord) KpiSummary {
	models := Models(records)
	macro := len(models) > 1

	meanQuality := meanForKind(records, MetricQuality, macro)
	meanLatency := meanForKind(records, MetricLatency, macro)
	meanEnergy := meanForKind(records, MetricEnergy, macro)

	latencies := valuesForKind(records, MetricLatency)
	var p95 *float64
	if len(latencies) > 0 {
		v := percentile95(latencies)
		p95 = &v
	}

	energies := valuesForKind(records, MetricEnergy)
	var total *float64
	if len(energies) > 0 {
		var sum float64
		for _, e := range energies {
			sum += e
		}
		total = &sum
	}

	var qualityPerWh *float64
	if meanQuality != nil && meanEnergy != nil && *meanEnergy > 0 {
		v := *meanQuality / *meanEnergy
		qualityPerWh = &v
	}

	return KpiSummary{
		MeanQuality:  roundPtr(meanQuality, 2),
		MeanLatency:  roundPtr(meanLatency, 3),
		P95Latency:   roundPtr(p95, 3),
		MeanEnergy:   roundPtr(meanEnergy, 4),
		TotalEnergy:  roundPtr(total, 4),
		QualityPerWh: roundPtr(qualityPerWh, 2),
	}
}

// meanForKind returns the (macro or micro) mean for one metric kind, or nil
// when no record of that kind is present.
func meanForKind(records []LongRecord, kind MetricKind, macro bool) *float64 {
	if !macro {
		values := valuesForKind(records, kind)
		if len(values) == 0 {
			return nil
		}
		v := mean(values)
		return &v
	}

	byModel := make(map[string][]float64)
	for _, r := range records {
		if r.Metric == kind {
			byModel[r.Model] = append(byModel[r.Model], r.Value)
		}
	}
	if len(byModel) == 0 {
		return nil
	}
	modelMeans := make([]float64, 0, len(byModel))
	for _, values := range byModel {
		modelMeans = append(modelMeans, mean(values))
	}
	v := mean(modelMeans)
	return &v
}

func valuesForKind(records []LongRecord, kind MetricKind) []float64 {
	var out []float64
	for _, r := range records {
		if r.Metric == kind {
			out = append(out, r.Value)
		}
	}
	return out
}

// percentile95 uses nearest-rank selection: sort ascending and take the
// element at ceil(n*0.95)-1, clamped to the valid index range.
func percentile95(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	idx := int(math.Ceil(float64(len(sorted))*0.95)) - 1
	if idx < 0 {
		idx = 0
	}
	if idx > len(sorted)-1 {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func roundPtr(v *float64, places int) *float64 {
	if v == nil {
		return nil
	}
	r := roundTo(*v, places)
	return &r
}
