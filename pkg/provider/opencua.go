package provider

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/legacyuse/orchestrator/pkg/models"
	"github.com/legacyuse/orchestrator/pkg/services"
	"github.com/legacyuse/orchestrator/pkg/tools"
)

// opencuaSystemPrompt replaces the capability prompt entirely. OpenCUA models
// are trained on a fixed Thought/Action/Code transcript format and ignore
// free-form instructions.
const opencuaSystemPrompt = `You are a GUI agent. You are given a task and a screenshot of the screen. You need to perform a series of pyautogui actions to complete the task.

For each step, provide your response in this format:

Thought:
  Describe what you observe on the screen and what needs to happen next.

Action:
  One sentence describing the single next action.

Code:
` + "```python" + `
pyautogui.click(x=..., y=...)
` + "```" + `

Use only these calls: pyautogui.click, pyautogui.doubleClick, pyautogui.rightClick, pyautogui.moveTo, pyautogui.write, pyautogui.press, pyautogui.hotkey, pyautogui.scroll, screenshot(), terminate(status='success', data=...).
Emit exactly one call per step.`

// maxMockScreenshots bounds the synthesized screenshot retries when the model
// keeps answering without any parseable action.
const maxMockScreenshots = 3

// OpenCUAHandler drives an OpenCUA-style model behind an OpenAI-compatible
// serving endpoint. Model output is PyAutoGUI-like source parsed back into
// canonical computer tool_use blocks.
type OpenCUAHandler struct {
	settings Settings
	http     *http.Client

	mockScreenshots int
}

// NewOpenCUAHandler creates the handler.
func NewOpenCUAHandler(settings Settings) *OpenCUAHandler {
	return &OpenCUAHandler{
		settings: settings,
		http:     &http.Client{Timeout: 5 * time.Minute},
	}
}

// Name implements Handler.
func (h *OpenCUAHandler) Name() string { return NameOpenCUA }

// Execute implements Handler.
func (h *OpenCUAHandler) Execute(ctx context.Context, req *Request) (*Response, error) {
	base, err := h.settings.Get(ctx, services.SettingOpenAIBaseURL)
	if err != nil {
		return nil, err
	}
	key, err := h.settings.Get(ctx, services.SettingOpenAIAPIKey)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"model":       req.Model,
		"max_tokens":  req.MaxTokens,
		"temperature": req.Temperature,
		"messages":    h.toMessages(req.Messages),
	}

	headers := map[string]string{}
	if key != "" {
		headers["Authorization"] = "Bearer " + key
	}
	var wire chatCompletion
	url := strings.TrimSuffix(base, "/") + "/chat/completions"
	if err := postJSON(ctx, h.http, url, headers, body, &wire); err != nil {
		return nil, err
	}
	if wire.Error != nil {
		return nil, fmt.Errorf("opencua error %s: %s", wire.Error.Type, wire.Error.Message)
	}
	if len(wire.Choices) == 0 {
		return nil, fmt.Errorf("opencua returned no choices")
	}

	raw := wire.Choices[0].Message.Content
	content, stop := h.parseOutput(raw)

	return &Response{
		Content:    content,
		StopReason: stop,
		Usage: models.Usage{
			InputTokens:  wire.Usage.PromptTokens,
			OutputTokens: wire.Usage.CompletionTokens,
		},
		RawRequest:  asMap(body),
		RawResponse: asMap(wire),
	}, nil
}

// toMessages renders the canonical history for the fixed transcript format:
// the first user message is reduced to the original task instruction, tool
// results contribute only their screenshots, and assistant turns keep their
// text verbatim (the model expects to see its own Thought/Action/Code back).
func (h *OpenCUAHandler) toMessages(history []models.Message) []map[string]any {
	out := []map[string]any{{"role": "system", "content": opencuaSystemPrompt}}

	first := true
	for _, msg := range history {
		if msg.Role == models.RoleAssistant {
			var text strings.Builder
			for _, block := range msg.Content {
				if block.Type == models.BlockTypeText {
					text.WriteString(block.Text)
				}
			}
			out = append(out, map[string]any{"role": "assistant", "content": text.String()})
			continue
		}

		var parts []map[string]any
		for _, block := range msg.Content {
			switch block.Type {
			case models.BlockTypeText:
				text := block.Text
				if first {
					text = TaskInstruction(text)
					first = false
				}
				parts = append(parts, map[string]any{"type": "text", "text": text})
			case models.BlockTypeImage:
				parts = append(parts, imageURLPart(block))
			case models.BlockTypeToolResult:
				for _, inner := range block.Content {
					if inner.Type == models.BlockTypeImage {
						parts = append(parts, imageURLPart(inner))
					}
				}
			}
		}
		if len(parts) > 0 {
			out = append(out, map[string]any{"role": "user", "content": parts})
		}
	}
	return out
}

var preambleSplit = regexp.MustCompile(`(?s)^(.*?)\n*` + regexp.QuoteMeta(tools.ExtractionPreambleMarker))

// TaskInstruction recovers the original API prompt from an initial message by
// cutting the extraction contract preamble off.
func TaskInstruction(prompt string) string {
	if m := preambleSplit.FindStringSubmatch(prompt); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(prompt)
}

// PyAutoGUI call patterns. Arguments stay as raw source; parseCall splits
// them.
var (
	codeFence   = regexp.MustCompile("(?s)```(?:python)?\\s*(.*?)```")
	callPattern = regexp.MustCompile(`(?m)^\s*(?:pyautogui\.)?(\w+)\((.*)\)\s*$`)
	kwargSplit  = regexp.MustCompile(`(\w+)\s*=\s*`)
)

// parseOutput converts model text into canonical blocks. The Thought/Action
// commentary is kept as a text block; the Code section becomes tool_use
// blocks. With nothing parseable, a mock screenshot is synthesized up to
// maxMockScreenshots times, then the turn ends.
func (h *OpenCUAHandler) parseOutput(raw string) ([]models.ContentBlock, string) {
	var blocks []models.ContentBlock
	if text := strings.TrimSpace(codeFence.ReplaceAllString(raw, "")); text != "" {
		blocks = append(blocks, models.TextBlock(text))
	}

	source := raw
	if m := codeFence.FindStringSubmatch(raw); m != nil {
		source = m[1]
	}

	sawToolUse := false
	terminal := false
	for _, m := range callPattern.FindAllStringSubmatch(source, -1) {
		name, args := m[1], m[2]
		block, isTerminate, ok := translateCall(name, args)
		if !ok {
			continue
		}
		blocks = append(blocks, block)
		sawToolUse = true
		if isTerminate {
			terminal = true
			break
		}
	}

	if sawToolUse {
		h.mockScreenshots = 0
		if terminal {
			return blocks, models.StopReasonEndTurn
		}
		return blocks, models.StopReasonToolUse
	}

	if h.mockScreenshots < maxMockScreenshots {
		h.mockScreenshots++
		blocks = append(blocks, computerUse(map[string]any{"action": "screenshot"}))
		return blocks, models.StopReasonToolUse
	}
	return blocks, models.StopReasonEndTurn
}

// translateCall maps one parsed call to a canonical block. terminate with a
// success status becomes an extraction tool_use so the loop records a result.
func translateCall(name, args string) (models.ContentBlock, bool, bool) {
	kwargs, positional := parseArgs(args)

	switch name {
	case "click", "doubleClick", "rightClick", "moveTo", "middleClick", "tripleClick":
		action := map[string]string{
			"click":       "left_click",
			"doubleClick": "double_click",
			"rightClick":  "right_click",
			"middleClick": "middle_click",
			"tripleClick": "triple_click",
			"moveTo":      "mouse_move",
		}[name]
		input := map[string]any{"action": action}
		if x, okX := intArg(kwargs, positional, "x", 0); okX {
			if y, okY := intArg(kwargs, positional, "y", 1); okY {
				input["coordinate"] = []any{x, y}
			}
		}
		return computerUse(input), false, true

	case "write", "typewrite":
		text := stringArg(kwargs, positional, "message", 0)
		if text == "" {
			text = stringArg(kwargs, positional, "text", 0)
		}
		return computerUse(map[string]any{"action": "type", "text": text}), false, true

	case "press":
		key := NormalizeKey(stringArg(kwargs, positional, "keys", 0))
		return computerUse(map[string]any{"action": "key", "text": key}), false, true

	case "hotkey":
		keys := listArgs(args)
		for i, k := range keys {
			keys[i] = NormalizeKey(k)
		}
		return computerUse(map[string]any{"action": "key", "text": strings.Join(keys, "+")}), false, true

	case "scroll":
		amount := 3
		direction := "down"
		if v, ok := intArg(kwargs, positional, "clicks", 0); ok {
			if v > 0 {
				direction = "up"
				amount = v
			} else {
				amount = -v
			}
		}
		input := map[string]any{"action": "scroll", "scroll_direction": direction, "scroll_amount": amount}
		if x, okX := intArg(kwargs, positional, "x", -1); okX {
			if y, okY := intArg(kwargs, positional, "y", -1); okY {
				input["coordinate"] = []any{x, y}
			}
		}
		return computerUse(input), false, true

	case "screenshot":
		return computerUse(map[string]any{"action": "screenshot"}), false, true

	case "terminate":
		status := kwargs["status"]
		data := map[string]any{"result": kwargs["data"]}
		if status != "success" {
			return models.TextBlock("terminated with status " + status), true, true
		}
		return models.ToolUseBlock("toolu_"+uuid.NewString(), tools.NameExtraction,
			map[string]any{"data": data}), true, true
	}

	return models.ContentBlock{}, false, false
}

func computerUse(input map[string]any) models.ContentBlock {
	return models.ToolUseBlock("toolu_"+uuid.NewString(), tools.NameComputer, input)
}

// parseArgs splits a raw argument list into keyword and positional values.
// Values are unquoted strings; numeric conversion happens at the call sites.
func parseArgs(args string) (map[string]string, []string) {
	kwargs := map[string]string{}
	var positional []string

	for _, part := range splitTopLevel(args) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if m := kwargSplit.FindStringSubmatchIndex(part); m != nil && m[0] == 0 {
			key := part[m[2]:m[3]]
			kwargs[key] = unquote(part[m[1]:])
			continue
		}
		positional = append(positional, unquote(part))
	}
	return kwargs, positional
}

// splitTopLevel splits on commas outside quotes and brackets.
func splitTopLevel(s string) []string {
	var (
		parts []string
		depth int
		quote byte
		start int
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case c == ',' && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

var quotedString = regexp.MustCompile(`['"]([^'"]+)['"]`)

// listArgs extracts all quoted strings from an argument list, covering both
// hotkey('ctrl', 'c') and hotkey(['ctrl', 'c']).
func listArgs(args string) []string {
	var out []string
	for _, m := range quotedString.FindAllStringSubmatch(args, -1) {
		out = append(out, m[1])
	}
	return out
}

func stringArg(kwargs map[string]string, positional []string, key string, pos int) string {
	if v, ok := kwargs[key]; ok {
		return v
	}
	if pos >= 0 && pos < len(positional) {
		return positional[pos]
	}
	return ""
}

func intArg(kwargs map[string]string, positional []string, key string, pos int) (int, bool) {
	raw := stringArg(kwargs, positional, key, pos)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		f, ferr := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if ferr != nil {
			return 0, false
		}
		return int(f), true
	}
	return v, true
}
