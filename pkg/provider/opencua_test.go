package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legacyuse/orchestrator/pkg/models"
	"github.com/legacyuse/orchestrator/pkg/tools"
)

func TestTaskInstructionStripsPreamble(t *testing.T) {
	prompt := "Log into the terminal and read the balance for account {number}.\n\n" +
		tools.ExtractionPreambleMarker + "\nWhen you have gathered all data..."
	assert.Equal(t,
		"Log into the terminal and read the balance for account {number}.",
		TaskInstruction(prompt))

	// prompts without the marker pass through trimmed
	assert.Equal(t, "plain task", TaskInstruction("  plain task\n"))
}

func TestParseOutputClick(t *testing.T) {
	h := NewOpenCUAHandler(nil)
	raw := "Thought:\nThe login button is visible.\n\nAction:\nClick the login button.\n\nCode:\n```python\npyautogui.click(x=412, y=331)\n```"

	blocks, stop := h.parseOutput(raw)
	assert.Equal(t, models.StopReasonToolUse, stop)
	require.Len(t, blocks, 2)
	assert.Equal(t, models.BlockTypeText, blocks[0].Type)

	use := blocks[1]
	assert.Equal(t, tools.NameComputer, use.Name)
	assert.Equal(t, "left_click", use.Input["action"])
	assert.Equal(t, []any{412, 331}, use.Input["coordinate"])
}

func TestParseOutputHotkeyAndWrite(t *testing.T) {
	h := NewOpenCUAHandler(nil)

	blocks, _ := h.parseOutput("```python\npyautogui.hotkey('ctrl', 'c')\n```")
	require.Len(t, blocks, 1)
	assert.Equal(t, "key", blocks[0].Input["action"])
	assert.Equal(t, "ctrl+c", blocks[0].Input["text"])

	blocks, _ = h.parseOutput("```python\npyautogui.write(message='hello, world')\n```")
	require.Len(t, blocks, 1)
	assert.Equal(t, "type", blocks[0].Input["action"])
	assert.Equal(t, "hello, world", blocks[0].Input["text"])

	blocks, _ = h.parseOutput("```python\npyautogui.press('esc')\n```")
	require.Len(t, blocks, 1)
	assert.Equal(t, "Escape", blocks[0].Input["text"])
}

func TestParseOutputTerminateBecomesExtraction(t *testing.T) {
	h := NewOpenCUAHandler(nil)
	blocks, stop := h.parseOutput("```python\nterminate(status='success', data='42.50')\n```")

	assert.Equal(t, models.StopReasonEndTurn, stop)
	require.Len(t, blocks, 1)
	use := blocks[0]
	assert.Equal(t, tools.NameExtraction, use.Name)
	data := use.Input["data"].(map[string]any)
	assert.Equal(t, "42.50", data["result"])
}

func TestParseOutputMockScreenshotBounded(t *testing.T) {
	h := NewOpenCUAHandler(nil)

	for i := 0; i < maxMockScreenshots; i++ {
		blocks, stop := h.parseOutput("I am not sure what to do.")
		assert.Equal(t, models.StopReasonToolUse, stop)
		require.NotEmpty(t, blocks)
		last := blocks[len(blocks)-1]
		assert.Equal(t, tools.NameComputer, last.Name)
		assert.Equal(t, "screenshot", last.Input["action"])
	}

	// budget exhausted: the turn ends instead of looping forever
	_, stop := h.parseOutput("Still unsure.")
	assert.Equal(t, models.StopReasonEndTurn, stop)

	// a parsed action resets the counter
	_, stop = h.parseOutput("```python\npyautogui.click(x=1, y=2)\n```")
	assert.Equal(t, models.StopReasonToolUse, stop)
	_, stop = h.parseOutput("Unsure again.")
	assert.Equal(t, models.StopReasonToolUse, stop)
}

func TestParseOutputScroll(t *testing.T) {
	h := NewOpenCUAHandler(nil)
	blocks, _ := h.parseOutput("```python\npyautogui.scroll(-5)\n```")
	require.Len(t, blocks, 1)
	assert.Equal(t, "scroll", blocks[0].Input["action"])
	assert.Equal(t, "down", blocks[0].Input["scroll_direction"])
	assert.Equal(t, 5, blocks[0].Input["scroll_amount"])
}
