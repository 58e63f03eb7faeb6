package sandbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/legacyuse/orchestrator/pkg/tools"
)

// FacadeClient talks to the HTTP facade inside a sandbox container. It
// implements tools.SandboxCaller for the computer tool.
type FacadeClient struct {
	baseURL       string
	http          *http.Client
	healthTimeout time.Duration
}

// NewFacadeClient creates a client for the sandbox at ip:port.
func NewFacadeClient(ip string, port int, toolTimeout, healthTimeout time.Duration) *FacadeClient {
	return &FacadeClient{
		baseURL:       fmt.Sprintf("http://%s:%d", ip, port),
		http:          &http.Client{Timeout: toolTimeout},
		healthTimeout: healthTimeout,
	}
}

// ToolUse implements tools.SandboxCaller: POST /tool_use/<action> with the
// parameter payload, returning the facade's output/error/screenshot triple.
func (c *FacadeClient) ToolUse(ctx context.Context, action string, payload map[string]any) (*tools.SandboxResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding tool payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tool_use/"+action, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building tool request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling sandbox tool %s: %w", action, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading sandbox response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sandbox tool %s returned %d: %s", action, resp.StatusCode, string(raw))
	}

	var out tools.SandboxResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding sandbox response: %w", err)
	}
	return &out, nil
}

// Healthy probes GET /health with a short timeout. Any non-200 response or
// transport error counts as unhealthy; the reason is returned for logging.
func (c *FacadeClient) Healthy(ctx context.Context) (bool, string) {
	ctx, cancel := context.WithTimeout(ctx, c.healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false, err.Error()
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false, err.Error()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return false, fmt.Sprintf("health returned %d: %s", resp.StatusCode, string(raw))
	}
	return true, ""
}
