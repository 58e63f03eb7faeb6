package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legacyuse/orchestrator/pkg/models"
	"github.com/legacyuse/orchestrator/pkg/tools"
)

func testActionSet() map[string]bool {
	return computerActionSet(tools.VersionComputer20250124)
}

func TestToChatMessagesToolResultFollowsAssistant(t *testing.T) {
	history := []models.Message{
		{Role: models.RoleUser, Content: []models.ContentBlock{models.TextBlock("do the thing")}},
		{Role: models.RoleAssistant, Content: []models.ContentBlock{
			models.TextBlock("clicking"),
			models.ToolUseBlock("call_1", tools.NameComputer, map[string]any{
				"action": "left_click", "coordinate": []any{10, 20},
			}),
		}},
		{Role: models.RoleUser, Content: []models.ContentBlock{
			models.ToolResultBlock("call_1", []models.ContentBlock{
				models.TextBlock("clicked"),
				models.ImageBlock("aGVsbG8="),
			}, false),
		}},
	}

	out := ToChatMessages("sys", history, testActionSet())
	require.Len(t, out, 5)

	assert.Equal(t, "system", out[0]["role"])
	assert.Equal(t, "user", out[1]["role"])
	assert.Equal(t, "assistant", out[2]["role"])
	assert.Equal(t, "tool", out[3]["role"])
	assert.Equal(t, "call_1", out[3]["tool_call_id"])
	// screenshot rides in a trailing user message, after the tool reply
	assert.Equal(t, "user", out[4]["role"])

	calls := out[2]["tool_calls"].([]map[string]any)
	require.Len(t, calls, 1)
	fn := calls[0]["function"].(map[string]any)
	assert.Equal(t, "left_click", fn["name"], "computer tool_use flattens to the action name")
	assert.NotContains(t, fn["arguments"], "left_click")
}

func TestFromChatMessageRecollapsesComputerCall(t *testing.T) {
	call := chatToolCall{ID: "call_9", Type: "function"}
	call.Function.Name = "left_click"
	call.Function.Arguments = `{"x": 100, "y": 250}`

	blocks, hadCalls := FromChatMessage("clicking the button", []chatToolCall{call}, testActionSet())
	assert.True(t, hadCalls)
	require.Len(t, blocks, 2)

	assert.Equal(t, models.BlockTypeText, blocks[0].Type)
	use := blocks[1]
	assert.Equal(t, models.BlockTypeToolUse, use.Type)
	assert.Equal(t, tools.NameComputer, use.Name)
	assert.Equal(t, "call_9", use.ID)
	assert.Equal(t, "left_click", use.Input["action"])
	assert.Equal(t, []any{float64(100), float64(250)}, use.Input["coordinate"])
	assert.NotContains(t, use.Input, "x")
}

func TestFromChatMessageNormalizesKeyCombos(t *testing.T) {
	call := chatToolCall{ID: "call_2", Type: "function"}
	call.Function.Name = "key"
	call.Function.Arguments = `{"text": "ctrl + esc"}`

	blocks, _ := FromChatMessage("", []chatToolCall{call}, testActionSet())
	require.Len(t, blocks, 1)
	assert.Equal(t, "ctrl+Escape", blocks[0].Input["text"])
}

func TestFromChatMessageKeepsNonComputerTools(t *testing.T) {
	call := chatToolCall{ID: "call_3", Type: "function"}
	call.Function.Name = tools.NameExtraction
	call.Function.Arguments = `{"data": {"result": 42}}`

	blocks, _ := FromChatMessage("", []chatToolCall{call}, testActionSet())
	require.Len(t, blocks, 1)
	assert.Equal(t, tools.NameExtraction, blocks[0].Name)
}

func TestMapFinishReason(t *testing.T) {
	assert.Equal(t, models.StopReasonEndTurn, mapFinishReason("stop", false))
	assert.Equal(t, models.StopReasonToolUse, mapFinishReason("stop", true))
	assert.Equal(t, models.StopReasonToolUse, mapFinishReason("tool_calls", true))
	assert.Equal(t, models.StopReasonMaxTokens, mapFinishReason("length", false))
}

func TestFlattenToolSpecsOnePerAction(t *testing.T) {
	computer := tools.NewComputerTool(tools.VersionComputer20250124, 1024, 768, nil)
	specs := flattenToolSpecs([]tools.Spec{computer.Spec()}, tools.VersionComputer20250124)

	actions := tools.ComputerActions(tools.VersionComputer20250124)
	require.Len(t, specs, len(actions))
	for i, action := range actions {
		fn := specs[i]["function"].(map[string]any)
		assert.Equal(t, action, fn["name"])
	}
}

func TestConversionRoundTrip(t *testing.T) {
	// assistant history converted out and a matching reply converted back
	// land on the same canonical shape
	original := models.ToolUseBlock("call_7", tools.NameComputer, map[string]any{
		"action": "scroll", "coordinate": []any{5, 6},
		"scroll_direction": "down", "scroll_amount": 3,
	})
	flat := flattenToolCall(original, testActionSet())
	fn := flat["function"].(map[string]any)

	call := chatToolCall{ID: "call_7", Type: "function"}
	call.Function.Name = fn["name"].(string)
	call.Function.Arguments = fn["arguments"].(string)

	blocks, _ := FromChatMessage("", []chatToolCall{call}, testActionSet())
	require.Len(t, blocks, 1)
	back := blocks[0]
	assert.Equal(t, tools.NameComputer, back.Name)
	assert.Equal(t, "scroll", back.Input["action"])
	assert.Equal(t, "down", back.Input["scroll_direction"])
}
