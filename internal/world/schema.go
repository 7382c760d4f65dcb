package world

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const layoutSchemaURL = "layout.schema.json"

// layoutSchema checks the shape of a layout document. Kind names and per-kind rules
// are checked by ParseLayout.
const layoutSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "ground_size": {"type": "number", "minimum": 0},
    "spawn": {"$ref": "#/definitions/vec3"},
    "shapes": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["kind", "position"],
        "properties": {
          "kind": {"type": "string"},
          "position": {"$ref": "#/definitions/vec3"},
          "size": {"$ref": "#/definitions/vec3"}
        }
      }
    }
  },
  "definitions": {
    "vec3": {"type": "array", "items": {"type": "number"}, "minItems": 3, "maxItems": 3}
  }
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(layoutSchemaURL, strings.NewReader(layoutSchema)); err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = c.Compile(layoutSchemaURL)
	})
	return schema, schemaErr
}

// validateLayout checks raw YAML against the layout schema. The document goes through
// JSON so the validator sees plain JSON values.
func validateLayout(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc == nil {
		doc = map[string]any{}
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return s.Validate(v)
}
