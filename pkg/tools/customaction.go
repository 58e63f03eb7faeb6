package tools

import (
	"context"
	"fmt"
	"strings"
)

// RecordedStep is one pre-recorded computer action in a custom action.
type RecordedStep struct {
	Action string         `json:"action"`
	Params map[string]any `json:"params,omitempty"`
}

// CustomActionTool replays a named, pre-recorded sequence of computer actions
// against the current session, short-circuiting the model for deterministic
// steps (login sequences, menu navigation).
type CustomActionTool struct {
	actions  map[string][]RecordedStep
	computer *ComputerTool
}

// NewCustomActionTool creates the tool over a set of named recordings.
func NewCustomActionTool(actions map[string][]RecordedStep, computer *ComputerTool) *CustomActionTool {
	return &CustomActionTool{actions: actions, computer: computer}
}

// Spec implements Tool.
func (t *CustomActionTool) Spec() Spec {
	names := make([]string, 0, len(t.actions))
	for name := range t.actions {
		names = append(names, name)
	}
	return Spec{
		Name: NameCustomAction,
		Description: "Run a pre-recorded sequence of computer actions. Available actions: " +
			strings.Join(names, ", ") + ".",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name": map[string]any{
					"type": "string",
					"enum": names,
				},
			},
			"required": []string{"name"},
		},
		Required: []string{"name"},
	}
}

// Execute implements Tool: replays the recording serially, stopping at the
// first failing step. The final step's screenshot (if any) is returned.
func (t *CustomActionTool) Execute(ctx context.Context, input map[string]any) (*Result, error) {
	name, _ := input["name"].(string)
	steps, ok := t.actions[name]
	if !ok {
		return &Result{Error: fmt.Sprintf("unknown custom action %q", name)}, nil
	}

	var last *Result
	for i, step := range steps {
		stepInput := map[string]any{"action": step.Action}
		for k, v := range step.Params {
			stepInput[k] = v
		}
		res, err := t.computer.Execute(ctx, stepInput)
		if err != nil {
			return nil, fmt.Errorf("custom action %q step %d: %w", name, i+1, err)
		}
		if res.Error != "" {
			return &Result{Error: fmt.Sprintf("custom action %q failed at step %d (%s): %s",
				name, i+1, step.Action, res.Error)}, nil
		}
		last = res
	}

	out := &Result{Output: fmt.Sprintf("Custom action %q completed (%d steps).", name, len(steps))}
	if last != nil {
		out.Base64Image = last.Base64Image
	}
	return out, nil
}
