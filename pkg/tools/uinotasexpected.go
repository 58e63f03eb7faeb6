package tools

import "context"

// UINotAsExpectedTool signals an intentional pause when the interface does
// not match the workflow's expectations. Execution is a no-op; the loop
// terminates the job as paused with the model's reasoning.
type UINotAsExpectedTool struct{}

// NewUINotAsExpectedTool creates the tool.
func NewUINotAsExpectedTool() *UINotAsExpectedTool {
	return &UINotAsExpectedTool{}
}

// Spec implements Tool.
func (t *UINotAsExpectedTool) Spec() Spec {
	return Spec{
		Name: NameUINotAsExpected,
		Description: "Call this when the user interface does not look the way the task " +
			"description expects and you cannot safely continue. Explain what you " +
			"expected and what you see instead.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"reasoning": map[string]any{
					"type":        "string",
					"description": "Why the UI does not match expectations.",
				},
			},
			"required": []string{"reasoning"},
		},
		Required: []string{"reasoning"},
	}
}

// Execute implements Tool. The pause itself is applied by the loop.
func (t *UINotAsExpectedTool) Execute(_ context.Context, input map[string]any) (*Result, error) {
	reasoning, _ := input["reasoning"].(string)
	return &Result{Output: reasoning}, nil
}
