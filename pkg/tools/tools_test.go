package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferSchemaValidatesItsOwnExample(t *testing.T) {
	example := map[string]any{
		"balance":  "42.50",
		"verified": true,
		"count":    float64(3),
		"lines": []any{
			map[string]any{"id": "a", "amount": float64(1)},
		},
		"note": nil,
	}

	schema := InferSchema(example)
	require.NoError(t, schema.VisitJSON(example))
}

func TestInferSchemaEmptyArray(t *testing.T) {
	schema := InferSchema(map[string]any{"items": []any{}})
	require.NoError(t, schema.VisitJSON(map[string]any{"items": []any{"anything"}}))
}

func TestValidateAgainstExampleRejectsShapeMismatch(t *testing.T) {
	example := map[string]any{"sum": float64(0)}

	require.NoError(t, ValidateAgainstExample(example, map[string]any{"sum": float64(5)}))

	err := ValidateAgainstExample(example, map[string]any{"sum": "five"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match response schema")
}

func TestValidateAgainstExampleNilAcceptsAnything(t *testing.T) {
	require.NoError(t, ValidateAgainstExample(nil, map[string]any{"whatever": true}))
}

func TestValidateInputMissingParameters(t *testing.T) {
	spec := Spec{Name: "computer", Required: []string{"action", "coordinate"}}

	msg := ValidateInput(spec, map[string]any{"action": "screenshot"})
	assert.Equal(t,
		"The tool computer failed! Reason: missing required parameters: coordinate. Please fix the input and try again.",
		msg)

	// nil values count as missing
	msg = ValidateInput(spec, map[string]any{"action": nil, "coordinate": nil})
	assert.Contains(t, msg, "action, coordinate")

	assert.Empty(t, ValidateInput(spec, map[string]any{"action": "key", "coordinate": []any{1, 2}}))
}

type staticTool struct{ name string }

func (s staticTool) Spec() Spec { return Spec{Name: s.name} }
func (s staticTool) Execute(context.Context, map[string]any) (*Result, error) {
	return &Result{Output: s.name}, nil
}

func TestRegistryPreservesOrderAndDedupes(t *testing.T) {
	r := NewRegistry(staticTool{"computer"}, staticTool{"extraction"}, staticTool{"computer"})

	specs := r.Specs()
	require.Len(t, specs, 2)
	assert.Equal(t, "computer", specs[0].Name)
	assert.Equal(t, "extraction", specs[1].Name)

	_, ok := r.Get("extraction")
	assert.True(t, ok)
	_, ok = r.Get("unknown")
	assert.False(t, ok)
}

func TestExtractionExecuteValidatesPayload(t *testing.T) {
	tool := NewExtractionTool(map[string]any{"sum": float64(0)})

	res, err := tool.Execute(context.Background(), map[string]any{
		"data": map[string]any{"result": map[string]any{"sum": float64(5)}},
	})
	require.NoError(t, err)
	assert.Empty(t, res.Error)
	assert.Equal(t, "Extraction recorded.", res.Output)

	res, err = tool.Execute(context.Background(), map[string]any{
		"data": map[string]any{"result": map[string]any{"sum": "five"}},
	})
	require.NoError(t, err)
	assert.Contains(t, res.Error, "does not match response schema")

	res, err = tool.Execute(context.Background(), map[string]any{"data": "not an object"})
	require.NoError(t, err)
	assert.Contains(t, res.Error, "'data' object")
}

func TestExtractionPayloadPrefersResultField(t *testing.T) {
	assert.Equal(t, "x", ExtractionPayload(map[string]any{"result": "x", "other": "y"}))
	assert.Equal(t, map[string]any{"other": "y"}, ExtractionPayload(map[string]any{"other": "y"}))
}

func TestExtractionPreamble(t *testing.T) {
	preamble := ExtractionPreamble("read_balance",
		map[string]any{"balance": "0.00"},
		"log out of the application")

	assert.True(t, strings.HasPrefix(preamble, ExtractionPreambleMarker))
	assert.Contains(t, preamble, `"read_balance" request`)
	assert.Contains(t, preamble, "must match this JSON schema")
	assert.Contains(t, preamble,
		"please perform these steps to return the system to its original state: log out of the application")
}

func TestExtractionPreambleWithoutExampleOrCleanup(t *testing.T) {
	preamble := ExtractionPreamble("read_balance", nil, "")
	assert.NotContains(t, preamble, "JSON schema")
	assert.NotContains(t, preamble, "original state")
}
