package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/legacyuse/orchestrator/pkg/models"
	"github.com/legacyuse/orchestrator/pkg/services"
	"github.com/legacyuse/orchestrator/pkg/tools"
)

const (
	anthropicBaseURL = "https://api.anthropic.com"
	anthropicVersion = "2023-06-01"

	betaPromptCaching       = "prompt-caching-2024-07-31"
	betaTokenEfficientTools = "token-efficient-tools-2025-02-19"
	betaComputerUse20241022 = "computer-use-2024-10-22"
	betaComputerUse20250124 = "computer-use-2025-01-24"
)

// AnthropicHandler speaks the Anthropic messages protocol. The canonical
// block vocabulary is the Anthropic wire format, so history and tool specs
// pass through mostly verbatim; the handler adds beta flags, cache hints on
// the system prompt, and backend selection from tenant settings.
type AnthropicHandler struct {
	settings Settings
	http     *http.Client
}

// NewAnthropicHandler creates the handler.
func NewAnthropicHandler(settings Settings) *AnthropicHandler {
	return &AnthropicHandler{
		settings: settings,
		http:     &http.Client{Timeout: 5 * time.Minute},
	}
}

// Name implements Handler.
func (h *AnthropicHandler) Name() string { return NameAnthropic }

// anthropicWire mirrors the messages API response body.
type anthropicWire struct {
	Content    []models.ContentBlock `json:"content"`
	StopReason string                `json:"stop_reason"`
	Usage      models.Usage          `json:"usage"`
	Error      *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Execute implements Handler.
func (h *AnthropicHandler) Execute(ctx context.Context, req *Request) (*Response, error) {
	url, headers, err := h.endpoint(ctx, req.Model, req.ToolVersion)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"model":      req.Model,
		"max_tokens": req.MaxTokens,
		"system": []map[string]any{{
			"type":          "text",
			"text":          req.System,
			"cache_control": map[string]any{"type": "ephemeral"},
		}},
		"messages":    req.Messages,
		"temperature": req.Temperature,
	}
	if specs := anthropicToolSpecs(req.Tools); len(specs) > 0 {
		body["tools"] = specs
	}

	var wire anthropicWire
	if err := postJSON(ctx, h.http, url, headers, body, &wire); err != nil {
		return nil, err
	}
	if wire.Error != nil {
		return nil, fmt.Errorf("anthropic error %s: %s", wire.Error.Type, wire.Error.Message)
	}

	stop := wire.StopReason
	if stop == "" {
		stop = models.StopReasonEndTurn
	}
	return &Response{
		Content:     wire.Content,
		StopReason:  stop,
		Usage:       wire.Usage,
		RawRequest:  asMap(body),
		RawResponse: asMap(wire),
	}, nil
}

// endpoint resolves the backend URL and auth headers from tenant settings.
// Bedrock and Vertex need request signing this service does not carry; both
// are reached through the proxy backend, which handles signing server-side.
func (h *AnthropicHandler) endpoint(ctx context.Context, model, toolVersion string) (string, map[string]string, error) {
	backend, err := h.settings.Get(ctx, services.SettingAPIProvider)
	if err != nil {
		return "", nil, err
	}

	headers := map[string]string{
		"anthropic-version": anthropicVersion,
		"anthropic-beta":    strings.Join(h.betaFlags(toolVersion), ","),
	}

	switch backend {
	case "", "anthropic":
		key, err := h.apiKey(ctx, services.SettingAnthropicAPIKey)
		if err != nil {
			return "", nil, err
		}
		headers["x-api-key"] = key
		return anthropicBaseURL + "/v1/messages", headers, nil

	case "legacyuse-proxy", "bedrock", "vertex":
		base, err := h.settings.Get(ctx, services.SettingProxyBaseURL)
		if err != nil {
			return "", nil, err
		}
		if base == "" {
			return "", nil, fmt.Errorf("backend %q requires %s to be configured", backend, services.SettingProxyBaseURL)
		}
		key, err := h.settings.Get(ctx, services.SettingProxyAPIKey)
		if err != nil {
			return "", nil, err
		}
		headers["x-api-key"] = key
		headers["x-backend"] = backend
		return strings.TrimSuffix(base, "/") + "/v1/messages", headers, nil

	default:
		return "", nil, fmt.Errorf("unsupported anthropic backend %q", backend)
	}
}

// apiKey returns the provider-specific key, falling back to the generic one.
func (h *AnthropicHandler) apiKey(ctx context.Context, specific string) (string, error) {
	key, err := h.settings.Get(ctx, specific)
	if err != nil {
		return "", err
	}
	if key == "" {
		key, err = h.settings.Get(ctx, services.SettingAPIKey)
		if err != nil {
			return "", err
		}
	}
	if key == "" {
		return "", fmt.Errorf("no API key configured (set %s)", specific)
	}
	return key, nil
}

func (h *AnthropicHandler) betaFlags(toolVersion string) []string {
	flags := []string{betaPromptCaching, betaTokenEfficientTools}
	if toolVersion == tools.VersionComputer20241022 {
		return append(flags, betaComputerUse20241022)
	}
	return append(flags, betaComputerUse20250124)
}

// anthropicToolSpecs renders the tool list: native tools send their internal
// spec (computer-use beta typing), the rest send name/description/schema.
func anthropicToolSpecs(specs []tools.Spec) []map[string]any {
	out := make([]map[string]any, 0, len(specs))
	for _, spec := range specs {
		if spec.InternalSpec != nil {
			out = append(out, spec.InternalSpec)
			continue
		}
		out = append(out, map[string]any{
			"name":         spec.Name,
			"description":  spec.Description,
			"input_schema": spec.InputSchema,
		})
	}
	return out
}
