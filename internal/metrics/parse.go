// internal/metrics/parse.go
package metrics

import "strings"

// labelSeparators are the characters accepted between the model identifier
// and the metric suffix in a row label.
var labelSeparators = []string{"_", "-"}

// ParseLabel splits a raw row label such as "gpt4o_quality" into its model
// identifier and metric kind. The label is lower-cased and trimmed first.
// Metric suffixes are tried in AllMetricKinds order and the first match
// wins; a label whose model part is empty (e.g. "_quality") is rejected.
// ok is false for anything that does not match a known metric suffix.
func ParseLabel(label string) (model string, metric MetricKind, ok bool) {
	trimmed := strings.ToLower(strings.TrimSpace(label))
	for _, kind := range AllMetricKinds {
		for _, sep := range labelSeparators {
			suffix := sep + string(kind)
			if !strings.HasSuffix(trimmed, suffix) {
				continue
			}
			model = strings.TrimSuffix(trimmed, suffix)
			if model == "" {
				return "", "", false
			}
			return model, kind, true
		}
	}
	return "", "", false
}
