// internal/metrics/reshape_test.go
package metrics

import (
	"math"
	"sort"
	"testing"
)

func ptr(v float64) *float64 { return &v }

type captureObserver struct {
	skipped []string
}

func (c *captureObserver) LabelSkipped(label string) {
	c.skipped = append(c.skipped, label)
}

func sortRecords(records []LongRecord) {
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Model != b.Model {
			return a.Model < b.Model
		}
		if a.Prompt != b.Prompt {
			return a.Prompt < b.Prompt
		}
		return a.Metric < b.Metric
	})
}

func TestReshapeSingleRow(t *testing.T) {
	rows := []RawMatrixRow{
		{Label: "gpt4o_quality", Values: map[string]*float64{"p01": ptr(4.5), "p02": nil}},
	}

	records := Reshape(rows, nil)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	want := LongRecord{Model: "gpt4o", Prompt: "p01", Metric: MetricQuality, Value: 4.5}
	if records[0] != want {
		t.Fatalf("got %+v, want %+v", records[0], want)
	}
}

func TestReshapeDropsInvalidCells(t *testing.T) {
	rows := []RawMatrixRow{
		{Label: "m1_latency_s", Values: map[string]*float64{
			"p01": ptr(1.2),
			"p02": nil,
			"p03": ptr(math.NaN()),
			"p04": ptr(math.Inf(1)),
			"p05": ptr(0),
		}},
	}

	records := Reshape(rows, nil)
	sortRecords(records)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(records), records)
	}
	if records[0].Prompt != "p01" || records[1].Prompt != "p05" {
		t.Fatalf("unexpected prompts: %+v", records)
	}
	if records[1].Value != 0 {
		t.Fatalf("zero is a valid measurement, got %v", records[1].Value)
	}
}

func TestReshapeReportsSkippedLabels(t *testing.T) {
	rows := []RawMatrixRow{
		{Label: "m1_quality", Values: map[string]*float64{"p01": ptr(1)}},
		{Label: "bogus", Values: map[string]*float64{"p01": ptr(2)}},
		{Label: "_quality", Values: map[string]*float64{"p01": ptr(3)}},
	}

	obs := &captureObserver{}
	records := Reshape(rows, obs)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if len(obs.skipped) != 2 {
		t.Fatalf("expected 2 skipped labels, got %v", obs.skipped)
	}
	if obs.skipped[0] != "bogus" || obs.skipped[1] != "_quality" {
		t.Fatalf("unexpected skipped labels: %v", obs.skipped)
	}
}

func TestReshapeRoundTripsThroughMatrix(t *testing.T) {
	rows := []RawMatrixRow{
		{Label: "m1_quality", Values: map[string]*float64{"p01": ptr(4), "p02": ptr(3)}},
		{Label: "m2_quality", Values: map[string]*float64{"p01": ptr(2)}},
	}
	records := Reshape(rows, nil)

	models := Models(records)
	prompts := Prompts(records)
	matrix := BuildMatrix(records, MetricQuality, models, prompts)

	// Rebuild rows from the dense matrix and reshape again; the relation
	// must come back identical up to ordering.
	rebuilt := make([]RawMatrixRow, 0, len(models))
	for i, model := range models {
		values := make(map[string]*float64, len(prompts))
		for j, prompt := range prompts {
			if v := matrix[i][j]; !math.IsNaN(v) {
				values[prompt] = ptr(v)
			}
		}
		rebuilt = append(rebuilt, RawMatrixRow{Label: model + "_quality", Values: values})
	}

	again := Reshape(rebuilt, nil)
	sortRecords(records)
	sortRecords(again)
	if len(records) != len(again) {
		t.Fatalf("round trip changed record count: %d vs %d", len(records), len(again))
	}
	for i := range records {
		if records[i] != again[i] {
			t.Fatalf("round trip mismatch at %d: %+v vs %+v", i, records[i], again[i])
		}
	}
}

func TestModelsPromptsAndFilter(t *testing.T) {
	records := []LongRecord{
		{"m2", "p02", MetricQuality, 1},
		{"m1", "p01", MetricQuality, 2},
		{"m2", "p01", MetricLatency, 3},
	}

	models := Models(records)
	if len(models) != 2 || models[0] != "m1" || models[1] != "m2" {
		t.Fatalf("unexpected models: %v", models)
	}
	prompts := Prompts(records)
	if len(prompts) != 2 || prompts[0] != "p01" || prompts[1] != "p02" {
		t.Fatalf("unexpected prompts: %v", prompts)
	}

	only := FilterModel(records, "m2")
	if len(only) != 2 {
		t.Fatalf("expected 2 records for m2, got %d", len(only))
	}
	if got := FilterModel(records, ""); len(got) != len(records) {
		t.Fatalf("empty filter should select everything, got %d", len(got))
	}
}
