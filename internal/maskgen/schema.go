package maskgen

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed config.schema.json
var configSchema []byte

var schemaLoader = gojsonschema.NewBytesLoader(configSchema)

// validateDocument checks a decoded config document (JSON or YAML, as generic
// maps and slices) against the embedded schema and reports every violation.
func validateDocument(doc interface{}) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return fmt.Errorf("config does not match schema: %s", strings.Join(msgs, "; "))
}
