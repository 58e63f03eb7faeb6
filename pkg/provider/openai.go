package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/legacyuse/orchestrator/pkg/models"
	"github.com/legacyuse/orchestrator/pkg/services"
	"github.com/legacyuse/orchestrator/pkg/tools"
)

// OpenAIHandler speaks the chat-completions protocol. Canonical block history
// is converted so every tool message immediately follows the assistant
// message whose tool_calls produced it; the computer tool is flattened into
// one function per action and recollapsed on the way back.
type OpenAIHandler struct {
	settings Settings
	http     *http.Client
}

// NewOpenAIHandler creates the handler.
func NewOpenAIHandler(settings Settings) *OpenAIHandler {
	return &OpenAIHandler{
		settings: settings,
		http:     &http.Client{Timeout: 5 * time.Minute},
	}
}

// Name implements Handler.
func (h *OpenAIHandler) Name() string { return NameOpenAI }

type chatToolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

type chatCompletion struct {
	Choices []struct {
		Message struct {
			Content   string         `json:"content"`
			ToolCalls []chatToolCall `json:"tool_calls"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens        int `json:"prompt_tokens"`
		CompletionTokens    int `json:"completion_tokens"`
		PromptTokensDetails struct {
			CachedTokens int `json:"cached_tokens"`
		} `json:"prompt_tokens_details"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Execute implements Handler.
func (h *OpenAIHandler) Execute(ctx context.Context, req *Request) (*Response, error) {
	base, err := h.settings.Get(ctx, services.SettingOpenAIBaseURL)
	if err != nil {
		return nil, err
	}
	key, err := h.settings.Get(ctx, services.SettingOpenAIAPIKey)
	if err != nil {
		return nil, err
	}
	if key == "" {
		if key, err = h.settings.Get(ctx, services.SettingAPIKey); err != nil {
			return nil, err
		}
	}
	if key == "" {
		return nil, fmt.Errorf("no API key configured (set %s)", services.SettingOpenAIAPIKey)
	}

	actionSet := computerActionSet(req.ToolVersion)
	body := map[string]any{
		"model":       req.Model,
		"max_tokens":  req.MaxTokens,
		"temperature": req.Temperature,
		"messages":    ToChatMessages(req.System, req.Messages, actionSet),
	}
	if fns := flattenToolSpecs(req.Tools, req.ToolVersion); len(fns) > 0 {
		body["tools"] = fns
	}

	headers := map[string]string{"Authorization": "Bearer " + key}
	var wire chatCompletion
	url := strings.TrimSuffix(base, "/") + "/chat/completions"
	if err := postJSON(ctx, h.http, url, headers, body, &wire); err != nil {
		return nil, err
	}
	if wire.Error != nil {
		return nil, fmt.Errorf("openai error %s: %s", wire.Error.Type, wire.Error.Message)
	}
	if len(wire.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices")
	}

	choice := wire.Choices[0]
	content, hadToolCalls := FromChatMessage(choice.Message.Content, choice.Message.ToolCalls, actionSet)

	return &Response{
		Content:    content,
		StopReason: mapFinishReason(choice.FinishReason, hadToolCalls),
		Usage: models.Usage{
			InputTokens:          wire.Usage.PromptTokens - wire.Usage.PromptTokensDetails.CachedTokens,
			OutputTokens:         wire.Usage.CompletionTokens,
			CacheReadInputTokens: wire.Usage.PromptTokensDetails.CachedTokens,
		},
		RawRequest:  asMap(body),
		RawResponse: asMap(wire),
	}, nil
}

// mapFinishReason translates finish_reason into the canonical stop reason.
func mapFinishReason(reason string, hadToolCalls bool) string {
	switch reason {
	case "tool_calls":
		return models.StopReasonToolUse
	case "length":
		return models.StopReasonMaxTokens
	case "stop":
		if hadToolCalls {
			return models.StopReasonToolUse
		}
		return models.StopReasonEndTurn
	default:
		return models.StopReasonEndTurn
	}
}

func computerActionSet(toolVersion string) map[string]bool {
	return lo.SliceToMap(tools.ComputerActions(toolVersion), func(a string) (string, bool) {
		return a, true
	})
}

// ToChatMessages converts canonical history into chat-completions messages.
// tool_result blocks become role=tool messages keyed by tool_call_id; images
// inside a tool_result are carried in a trailing user message because the
// tool role is text-only.
func ToChatMessages(system string, history []models.Message, actionSet map[string]bool) []map[string]any {
	out := []map[string]any{{"role": "system", "content": system}}

	for _, msg := range history {
		if msg.Role == models.RoleAssistant {
			out = append(out, assistantChatMessage(msg, actionSet))
			continue
		}

		var (
			userParts  []map[string]any
			imageParts []map[string]any
		)
		for _, block := range msg.Content {
			switch block.Type {
			case models.BlockTypeToolResult:
				text, images := splitToolResult(block)
				out = append(out, map[string]any{
					"role":         "tool",
					"tool_call_id": block.ToolUseID,
					"content":      text,
				})
				imageParts = append(imageParts, images...)
			case models.BlockTypeText:
				userParts = append(userParts, map[string]any{"type": "text", "text": block.Text})
			case models.BlockTypeImage:
				userParts = append(userParts, imageURLPart(block))
			}
		}
		userParts = append(userParts, imageParts...)
		if len(userParts) > 0 {
			out = append(out, map[string]any{"role": "user", "content": userParts})
		}
	}
	return out
}

func assistantChatMessage(msg models.Message, actionSet map[string]bool) map[string]any {
	var (
		text      strings.Builder
		toolCalls []map[string]any
	)
	for _, block := range msg.Content {
		switch block.Type {
		case models.BlockTypeText:
			if text.Len() > 0 {
				text.WriteString("\n")
			}
			text.WriteString(block.Text)
		case models.BlockTypeToolUse:
			toolCalls = append(toolCalls, flattenToolCall(block, actionSet))
		}
	}

	out := map[string]any{"role": "assistant"}
	if text.Len() > 0 {
		out["content"] = text.String()
	}
	if len(toolCalls) > 0 {
		out["tool_calls"] = toolCalls
	}
	return out
}

// flattenToolCall renders a canonical tool_use as a chat tool call. Computer
// tool_uses are emitted under their action name so they match the flattened
// function list.
func flattenToolCall(block models.ContentBlock, actionSet map[string]bool) map[string]any {
	name := block.Name
	args := block.Input
	if name == tools.NameComputer {
		if action, _ := block.Input["action"].(string); action != "" && actionSet[action] {
			name = action
			args = lo.OmitByKeys(block.Input, []string{"action"})
		}
	}
	encoded, err := json.Marshal(args)
	if err != nil {
		encoded = []byte("{}")
	}
	return map[string]any{
		"id":   block.ID,
		"type": "function",
		"function": map[string]any{
			"name":      name,
			"arguments": string(encoded),
		},
	}
}

func splitToolResult(block models.ContentBlock) (string, []map[string]any) {
	var (
		texts  []string
		images []map[string]any
	)
	for _, inner := range block.Content {
		switch inner.Type {
		case models.BlockTypeText:
			texts = append(texts, inner.Text)
		case models.BlockTypeImage:
			texts = append(texts, "(screenshot attached below)")
			images = append(images, imageURLPart(inner))
		}
	}
	if len(texts) == 0 {
		if block.IsError {
			texts = append(texts, "tool failed")
		} else {
			texts = append(texts, "ok")
		}
	}
	return strings.Join(texts, "\n"), images
}

func imageURLPart(block models.ContentBlock) map[string]any {
	mediaType := "image/png"
	data := ""
	if block.Source != nil {
		mediaType = block.Source.MediaType
		data = block.Source.Data
	}
	return map[string]any{
		"type": "image_url",
		"image_url": map[string]any{
			"url": fmt.Sprintf("data:%s;base64,%s", mediaType, data),
		},
	}
}

// FromChatMessage recollapses a chat reply into canonical blocks. Function
// calls named after computer actions become tool_use name="computer" with the
// action restored, coordinates folded into [x, y] pairs, and key combos
// normalized.
func FromChatMessage(content string, calls []chatToolCall, actionSet map[string]bool) ([]models.ContentBlock, bool) {
	var blocks []models.ContentBlock
	if content != "" {
		blocks = append(blocks, models.TextBlock(content))
	}
	for _, call := range calls {
		var args map[string]any
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil || args == nil {
			args = map[string]any{}
		}

		id := call.ID
		if id == "" {
			id = "toolu_" + uuid.NewString()
		}

		name := call.Function.Name
		if actionSet[name] {
			blocks = append(blocks, models.ToolUseBlock(id, tools.NameComputer, recollapseComputerArgs(name, args)))
			continue
		}
		blocks = append(blocks, models.ToolUseBlock(id, name, args))
	}
	return blocks, len(calls) > 0
}

func recollapseComputerArgs(action string, args map[string]any) map[string]any {
	input := map[string]any{"action": action}
	x, hasX := args["x"]
	y, hasY := args["y"]
	for k, v := range args {
		if k == "x" || k == "y" {
			continue
		}
		input[k] = v
	}
	if hasX && hasY {
		input["coordinate"] = []any{x, y}
	}
	if action == "key" || action == "hold_key" {
		if text, ok := input["text"].(string); ok {
			input["text"] = NormalizeKeyCombo(text)
		}
	}
	return input
}

// flattenToolSpecs renders the function list: the computer tool becomes one
// function per action (the flat schema minus the action discriminator), every
// other tool maps one-to-one.
func flattenToolSpecs(specs []tools.Spec, toolVersion string) []map[string]any {
	var out []map[string]any
	for _, spec := range specs {
		if spec.Name != tools.NameComputer {
			out = append(out, map[string]any{
				"type": "function",
				"function": map[string]any{
					"name":        spec.Name,
					"description": spec.Description,
					"parameters":  spec.InputSchema,
				},
			})
			continue
		}
		for _, action := range tools.ComputerActions(toolVersion) {
			out = append(out, map[string]any{
				"type": "function",
				"function": map[string]any{
					"name":        action,
					"description": fmt.Sprintf("Perform the %q computer action on the remote desktop.", action),
					"parameters":  actionParameters(action),
				},
			})
		}
	}
	return out
}

// actionParameters builds the per-action parameter schema for the flattened
// computer functions.
func actionParameters(action string) map[string]any {
	props := map[string]any{}
	var required []string

	coordinate := func() {
		props["x"] = map[string]any{"type": "integer", "description": "X pixel coordinate."}
		props["y"] = map[string]any{"type": "integer", "description": "Y pixel coordinate."}
		required = append(required, "x", "y")
	}

	switch action {
	case "screenshot", "cursor_position":
		// no parameters
	case "left_click", "right_click", "middle_click", "double_click", "triple_click",
		"mouse_move", "left_mouse_down", "left_mouse_up":
		coordinate()
	case "left_click_drag":
		coordinate()
		props["to"] = map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "integer"},
			"description": "Destination [x, y].",
		}
		required = append(required, "to")
	case "key", "hold_key":
		props["text"] = map[string]any{"type": "string", "description": "Key or key combination, e.g. ctrl+c."}
		required = append(required, "text")
		if action == "hold_key" {
			props["duration"] = map[string]any{"type": "number", "description": "Hold duration in seconds."}
		}
	case "type":
		props["text"] = map[string]any{"type": "string", "description": "Text to type."}
		required = append(required, "text")
	case "scroll":
		coordinate()
		props["scroll_direction"] = map[string]any{
			"type": "string",
			"enum": []string{"up", "down", "left", "right"},
		}
		props["scroll_amount"] = map[string]any{"type": "integer"}
		required = append(required, "scroll_direction", "scroll_amount")
	case "wait":
		props["duration"] = map[string]any{"type": "number", "description": "Wait duration in seconds."}
		required = append(required, "duration")
	}

	schema := map[string]any{"type": "object", "properties": props}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}
