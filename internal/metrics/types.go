// internal/metrics/types.go
// Package metrics is the data reshaping and statistics engine for benchmark
// matrices. It turns wide-format rows (one row per model+metric, one column
// per prompt) into a normalized long-format relation, synthesizes derived
// environmental metrics from energy readings, and computes summary KPIs.
// Every function is a pure transformation: inputs are never mutated, outputs
// never outlive the caller.
package metrics

// MetricKind identifies one of the closed set of benchmark measurements.
type MetricKind string

const (
	// MetricQuality is a unitless response-quality score.
	MetricQuality MetricKind = "quality"
	// MetricLatency is response latency in seconds.
	MetricLatency MetricKind = "latency_s"
	// MetricEnergy is energy consumed per response in watt-hours.
	MetricEnergy MetricKind = "energy_wh"
	// MetricCO2 is the CO2-equivalent of the energy reading in grams.
	MetricCO2 MetricKind = "co2_g"
	// MetricLEDHours is the LED-bulb runtime equivalent of the energy
	// reading. Despite the key, the value is expressed in minutes; the key
	// is kept as-is because it is the shared vocabulary with consumers.
	MetricLEDHours MetricKind = "led_hours"
	// MetricVideoMin is the online-video streaming-time equivalent in minutes.
	MetricVideoMin MetricKind = "onlinevideo_min"
)

// AllMetricKinds lists every known metric kind. The order is load-bearing:
// label parsing tries suffixes in this order and the first match wins.
var AllMetricKinds = []MetricKind{
	MetricQuality,
	MetricLatency,
	MetricEnergy,
	MetricCO2,
	MetricLEDHours,
	MetricVideoMin,
}

var metricLabels = map[MetricKind]string{
	MetricQuality:  "Quality",
	MetricLatency:  "Latency",
	MetricEnergy:   "Energy",
	MetricCO2:      "CO2",
	MetricLEDHours: "LED bulb time",
	MetricVideoMin: "Online video time",
}

var metricUnits = map[MetricKind]string{
	MetricQuality:  "",
	MetricLatency:  "s",
	MetricEnergy:   "Wh",
	MetricCO2:      "g",
	MetricLEDHours: "min",
	MetricVideoMin: "min",
}

// Label returns the human-readable display name for the metric kind.
func (k MetricKind) Label() string {
	return metricLabels[k]
}

// Unit returns the unit-of-measure string for the metric kind.
func (k MetricKind) Unit() string {
	return metricUnits[k]
}

// Known reports whether k is part of the closed enumeration.
func (k MetricKind) Known() bool {
	_, ok := metricLabels[k]
	return ok
}

// RawMatrixRow is one wide-format row as produced by CSV ingestion: a
// composite model+metric label and one nullable value per prompt id.
// A nil pointer means "no measurement", which is distinct from zero.
type RawMatrixRow struct {
	Label  string              `json:"label"`
	Values map[string]*float64 `json:"values"`
}

// LongRecord is the canonical normalized unit: one finite measurement for a
// (model, prompt, metric) triple. Duplicate triples may coexist in a
// relation; consumers resolve them by taking the first match in relation
// order.
type LongRecord struct {
	Model  string     `json:"model"`
	Prompt string     `json:"prompt"`
	Metric MetricKind `json:"metric"`
	Value  float64    `json:"value"`
}

// Factors holds the conversion factors used to derive environmental metrics
// from energy readings. It is passed by value and never mutated or cached by
// the engine. All fields must be positive; validation happens at the
// configuration boundary.
type Factors struct {
	LEDBulbWatts            float64 `json:"ledBulbWatts"`
	GridIntensityGCO2PerKWh float64 `json:"gridIntensityGCO2PerKwh"`
	OnlineVideoWhPerMin     float64 `json:"onlineVideoWhPerMin"`
}

// KpiSummary holds the aggregate KPIs for a slice of the long relation.
// A nil field means "no valid input data", which is distinct from zero.
type KpiSummary struct {
	MeanQuality  *float64 `json:"meanQuality"`
	MeanLatency  *float64 `json:"meanLatency"`
	P95Latency   *float64 `json:"p95Latency"`
	MeanEnergy   *float64 `json:"meanEnergy"`
	TotalEnergy  *float64 `json:"totalEnergy"`
	QualityPerWh *float64 `json:"qualityPerWh"`
}

// Observer receives non-fatal diagnostics emitted while reshaping. A nil
// Observer is valid and silences diagnostics.
type Observer interface {
	// LabelSkipped is called once per row whose label could not be parsed.
	LabelSkipped(label string)
}
