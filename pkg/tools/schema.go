package tools

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// InferSchema derives a JSON schema from a response example. Inference is
// structural: objects map to object schemas with all keys as properties,
// arrays take their item schema from the first element, scalars map to their
// JSON type. Applying the inferred schema back to the example validates.
func InferSchema(example any) *openapi3.Schema {
	switch v := example.(type) {
	case map[string]any:
		schema := openapi3.NewObjectSchema()
		for key, inner := range v {
			schema.Properties[key] = openapi3.NewSchemaRef("", InferSchema(inner))
		}
		return schema
	case []any:
		schema := openapi3.NewArraySchema()
		if len(v) > 0 {
			schema.Items = openapi3.NewSchemaRef("", InferSchema(v[0]))
		} else {
			schema.Items = openapi3.NewSchemaRef("", openapi3.NewSchema())
		}
		return schema
	case string:
		return openapi3.NewStringSchema()
	case bool:
		return openapi3.NewBoolSchema()
	case float64, float32, int, int32, int64:
		return openapi3.NewFloat64Schema()
	case nil:
		return openapi3.NewSchema().WithNullable()
	default:
		return openapi3.NewSchema()
	}
}

// ValidateAgainstExample validates data against the schema inferred from
// example. A nil example accepts anything.
func ValidateAgainstExample(example map[string]any, data any) error {
	if example == nil {
		return nil
	}
	schema := InferSchema(map[string]any(example))
	if err := schema.VisitJSON(data); err != nil {
		return fmt.Errorf("extraction does not match response schema: %w", err)
	}
	return nil
}
