package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractionPreambleMarker opens the extraction contract preamble appended to
// every initial prompt. Handlers that rebuild the original task instruction
// split the prompt on this exact string.
const ExtractionPreambleMarker = "IMPORTANT INSTRUCTIONS FOR RETURNING RESULTS:"

// ExtractionPreamble renders the contract appended after the API prompt: the
// expected result schema inferred from the response example, the API name,
// and the cleanup instruction.
func ExtractionPreamble(apiName string, responseExample map[string]any, promptCleanup string) string {
	var b strings.Builder
	b.WriteString(ExtractionPreambleMarker)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf(
		"When you have gathered all data for the %q request, call the %s tool exactly once.\n",
		apiName, NameExtraction))

	if responseExample != nil {
		schema := InferSchema(map[string]any(responseExample))
		if encoded, err := json.MarshalIndent(schema, "", "  "); err == nil {
			b.WriteString("The extracted data must match this JSON schema:\n")
			b.Write(encoded)
			b.WriteString("\n")
		}
	}

	if promptCleanup != "" {
		b.WriteString("After you've completed the extraction, please perform these steps to return the system to its original state: ")
		b.WriteString(promptCleanup)
	}
	return b.String()
}

// ExtractionTool is the only way a model reports a successful result. It
// validates the extracted payload against the schema inferred from the API
// version's response example; the loop reads the validated result from the
// tool_use input and terminates the job on the following end_turn.
type ExtractionTool struct {
	responseExample map[string]any
}

// NewExtractionTool creates an extraction tool bound to one API version's
// response example. A nil example accepts any payload.
func NewExtractionTool(responseExample map[string]any) *ExtractionTool {
	return &ExtractionTool{responseExample: responseExample}
}

// Spec implements Tool.
func (t *ExtractionTool) Spec() Spec {
	return Spec{
		Name: NameExtraction,
		Description: "Report the extracted result of the workflow. Call this exactly once, " +
			"with the data matching the documented response schema, before ending your turn.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"data": map[string]any{
					"type":        "object",
					"description": "The extracted result payload.",
				},
			},
			"required": []string{"data"},
		},
		Required: []string{"data"},
	}
}

// Execute implements Tool: validates the payload and echoes the outcome to
// the model. The preferred shape is {"data": {"result": ...}}; a bare data
// object is validated directly.
func (t *ExtractionTool) Execute(_ context.Context, input map[string]any) (*Result, error) {
	data, ok := input["data"].(map[string]any)
	if !ok {
		return &Result{Error: "extraction input must contain a 'data' object"}, nil
	}

	payload := ExtractionPayload(data)
	if err := ValidateAgainstExample(t.responseExample, payload); err != nil {
		return &Result{Error: err.Error()}, nil
	}
	return &Result{Output: "Extraction recorded."}, nil
}

// ExtractionPayload picks the result field out of an extraction data object,
// falling back to the whole object when no result field is present.
func ExtractionPayload(data map[string]any) any {
	if result, ok := data["result"]; ok {
		return result
	}
	return map[string]any(data)
}
