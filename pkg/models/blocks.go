// Package models defines the canonical conversation vocabulary shared by the
// sampling loop, provider handlers, and persistence. All providers convert to
// and from these block types; the database stores them verbatim as JSON.
package models

// Block type discriminators.
const (
	BlockTypeText       = "text"
	BlockTypeImage      = "image"
	BlockTypeToolUse    = "tool_use"
	BlockTypeToolResult = "tool_result"
)

// Role values for persisted job messages.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Stop reasons in the canonical vocabulary.
const (
	StopReasonEndTurn   = "end_turn"
	StopReasonToolUse   = "tool_use"
	StopReasonMaxTokens = "max_tokens"
)

// CacheControl marks a block as a prompt-cache breakpoint.
type CacheControl struct {
	Type string `json:"type"` // always "ephemeral"
}

// ImageSource carries an inline base64 image payload.
type ImageSource struct {
	Type      string `json:"type"` // always "base64"
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

// ContentBlock is one element of a message. Exactly one of the type-specific
// field groups is populated, selected by Type.
type ContentBlock struct {
	Type string `json:"type"`

	// text
	Text string `json:"text,omitempty"`

	// image
	Source *ImageSource `json:"source,omitempty"`

	// tool_use
	ID    string         `json:"id,omitempty"`
	Name  string         `json:"name,omitempty"`
	Input map[string]any `json:"input,omitempty"`

	// tool_result
	ToolUseID string         `json:"tool_use_id,omitempty"`
	Content   []ContentBlock `json:"content,omitempty"`
	IsError   bool           `json:"is_error,omitempty"`

	CacheControl *CacheControl `json:"cache_control,omitempty"`
}

// TextBlock builds a text block.
func TextBlock(text string) ContentBlock {
	return ContentBlock{Type: BlockTypeText, Text: text}
}

// ImageBlock builds a base64 PNG image block.
func ImageBlock(base64Data string) ContentBlock {
	return ContentBlock{
		Type:   BlockTypeImage,
		Source: &ImageSource{Type: "base64", MediaType: "image/png", Data: base64Data},
	}
}

// ToolUseBlock builds a tool_use block.
func ToolUseBlock(id, name string, input map[string]any) ContentBlock {
	return ContentBlock{Type: BlockTypeToolUse, ID: id, Name: name, Input: input}
}

// ToolResultBlock builds a tool_result block referencing a tool_use ID.
func ToolResultBlock(toolUseID string, content []ContentBlock, isError bool) ContentBlock {
	return ContentBlock{
		Type:      BlockTypeToolResult,
		ToolUseID: toolUseID,
		Content:   content,
		IsError:   isError,
	}
}

// HasImage reports whether a tool_result block carries at least one image.
func (b ContentBlock) HasImage() bool {
	if b.Type != BlockTypeToolResult {
		return false
	}
	for _, inner := range b.Content {
		if inner.Type == BlockTypeImage {
			return true
		}
	}
	return false
}

// Message pairs a role with its content blocks; this is the unit the sampling
// loop feeds to provider handlers and persists per sequence number.
type Message struct {
	Role    string         `json:"role"`
	Content []ContentBlock `json:"content"`
}
