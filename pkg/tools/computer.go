package tools

import (
	"context"
	"fmt"
)

// Computer tool wire versions.
const (
	VersionComputer20241022 = "computer_20241022"
	VersionComputer20250124 = "computer_20250124"
)

// computerActions20241022 is the action vocabulary of the 20241022 wire
// version.
var computerActions20241022 = []string{
	"screenshot", "left_click", "right_click", "middle_click", "double_click",
	"mouse_move", "left_click_drag", "key", "type", "cursor_position",
}

// computerActions20250124 extends the vocabulary with the 20250124 additions.
var computerActions20250124 = []string{
	"screenshot", "left_click", "right_click", "middle_click", "double_click",
	"triple_click", "mouse_move", "left_click_drag", "left_mouse_down",
	"left_mouse_up", "key", "hold_key", "type", "scroll", "wait",
}

// ComputerActions returns the action vocabulary for a wire version.
func ComputerActions(version string) []string {
	if version == VersionComputer20241022 {
		return computerActions20241022
	}
	return computerActions20250124
}

// SandboxCaller forwards a tool action to the session's sandbox facade.
// Implemented by sandbox.FacadeClient.
type SandboxCaller interface {
	ToolUse(ctx context.Context, action string, payload map[string]any) (*SandboxResponse, error)
}

// SandboxResponse is the sandbox facade's tool_use reply.
type SandboxResponse struct {
	Output      string `json:"output,omitempty"`
	Error       string `json:"error,omitempty"`
	Base64Image string `json:"base64_image,omitempty"`
}

// computerParams are the forwarded parameter names; non-nil values are sent
// to the sandbox as-is.
var computerParams = []string{
	"coordinate", "to", "text", "duration", "scroll_direction", "scroll_amount",
	"start_coordinate",
}

// ComputerTool drives the remote desktop through the sandbox HTTP facade.
type ComputerTool struct {
	version string
	width   int
	height  int
	sandbox SandboxCaller
}

// NewComputerTool creates a computer tool for the given wire version and
// display size.
func NewComputerTool(version string, width, height int, sandbox SandboxCaller) *ComputerTool {
	return &ComputerTool{version: version, width: width, height: height, sandbox: sandbox}
}

// Spec implements Tool. The computer tool is provider-native: handlers that
// understand the Anthropic computer-use beta send InternalSpec; the rest
// flatten InputSchema into per-action functions.
func (t *ComputerTool) Spec() Spec {
	toolType := "computer_20250124"
	if t.version == VersionComputer20241022 {
		toolType = "computer_20241022"
	}
	return Spec{
		Name: NameComputer,
		InternalSpec: map[string]any{
			"type":              toolType,
			"name":              NameComputer,
			"display_width_px":  t.width,
			"display_height_px": t.height,
		},
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"action": map[string]any{
					"type": "string",
					"enum": ComputerActions(t.version),
				},
				"coordinate":       map[string]any{"type": "array", "items": map[string]any{"type": "integer"}},
				"to":               map[string]any{"type": "array", "items": map[string]any{"type": "integer"}},
				"text":             map[string]any{"type": "string"},
				"duration":         map[string]any{"type": "number"},
				"scroll_direction": map[string]any{"type": "string", "enum": []string{"up", "down", "left", "right"}},
				"scroll_amount":    map[string]any{"type": "integer"},
			},
			"required": []string{"action"},
		},
		Required: []string{"action"},
	}
}

// Execute implements Tool: builds a payload of the non-nil parameters and
// forwards the action to the sandbox.
func (t *ComputerTool) Execute(ctx context.Context, input map[string]any) (*Result, error) {
	action, _ := input["action"].(string)
	if action == "" {
		return &Result{Error: "missing action"}, nil
	}

	payload := map[string]any{"api_type": t.version}
	for _, param := range computerParams {
		if v, ok := input[param]; ok && v != nil {
			payload[param] = v
		}
	}

	resp, err := t.sandbox.ToolUse(ctx, action, payload)
	if err != nil {
		return nil, fmt.Errorf("forwarding %s to sandbox: %w", action, err)
	}
	return &Result{
		Output:      resp.Output,
		Base64Image: resp.Base64Image,
		Error:       resp.Error,
	}, nil
}
