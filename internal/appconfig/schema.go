// internal/appconfig/schema.go
package appconfig

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// configSchema constrains the config file shape before unmarshalling.
// Factor bounds use exclusiveMinimum so zero and negative values are caught
// with a schema-level message instead of surfacing later as bad arithmetic.
const configSchema = `{
  "type": "object",
  "properties": {
    "factors": {
      "type": "object",
      "properties": {
        "ledBulbWatts": {"type": "number", "exclusiveMinimum": 0},
        "gridIntensityGCO2PerKwh": {"type": "number", "exclusiveMinimum": 0},
        "onlineVideoWhPerMin": {"type": "number", "exclusiveMinimum": 0}
      },
      "additionalProperties": false
    },
    "override": {"type": "boolean"},
    "dataPath": {"type": "string"},
    "export": {"type": "string"},
    "logFile": {"type": "string"},
    "debug": {"type": "boolean"}
  },
  "additionalProperties": false
}`

// validateSchema checks raw config JSON against the embedded schema.
func validateSchema(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(configSchema)
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}
	var details []string
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return fmt.Errorf("config failed validation: %s", strings.Join(details, "; "))
}
