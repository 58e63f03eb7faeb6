// Package provider implements the model-backend handlers the sampling loop
// drives. Every handler accepts the canonical block vocabulary from
// pkg/models and returns content blocks plus a canonical stop reason; the
// wire-format differences (Anthropic messages, OpenAI chat completions,
// OpenCUA PyAutoGUI source) stay inside this package.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go"

	"github.com/legacyuse/orchestrator/pkg/models"
	"github.com/legacyuse/orchestrator/pkg/tools"
)

// Handler names accepted on jobs.
const (
	NameAnthropic = "anthropic"
	NameOpenAI    = "openai"
	NameOpenCUA   = "opencua"
)

// Settings resolves per-tenant configuration values (API keys, backend
// selection). Implemented by services.SettingsService.
type Settings interface {
	Get(ctx context.Context, key string) (string, error)
}

// Request is one sampling call in the canonical vocabulary.
type Request struct {
	Model       string
	System      string
	Messages    []models.Message
	Tools       []tools.Spec
	MaxTokens   int
	Temperature float64
	ToolVersion string
}

// Response is a handler's converted reply.
type Response struct {
	Content    []models.ContentBlock
	StopReason string
	Usage      models.Usage

	// RawRequest and RawResponse feed the http_exchange job log; bodies are
	// recorded after image trimming, never verbatim.
	RawRequest  map[string]any
	RawResponse map[string]any
}

// Handler converts canonical history to a provider call and back.
type Handler interface {
	Name() string
	Execute(ctx context.Context, req *Request) (*Response, error)
}

// New resolves a handler by name.
func New(name string, settings Settings) (Handler, error) {
	switch name {
	case NameAnthropic:
		return NewAnthropicHandler(settings), nil
	case NameOpenAI:
		return NewOpenAIHandler(settings), nil
	case NameOpenCUA:
		return NewOpenCUAHandler(settings), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", name)
	}
}

const (
	httpRetryAttempts = 3
	httpRetryDelay    = 2 * time.Second
)

// retryableStatus reports whether a provider HTTP status is worth retrying.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

// statusError carries a non-2xx provider reply through retry classification.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("provider returned %d: %s", e.code, e.body)
}

// postJSON sends body to url with the given headers, retrying transport
// errors and retryable statuses, and decodes the JSON reply into out.
func postJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, body, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding provider request: %w", err)
	}

	err = retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
			if err != nil {
				return err
			}
			req.Header.Set("Content-Type", "application/json")
			for k, v := range headers {
				req.Header.Set(k, v)
			}

			resp, err := client.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			raw, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				return &statusError{code: resp.StatusCode, body: truncateForError(raw)}
			}
			return json.Unmarshal(raw, out)
		},
		retry.Context(ctx),
		retry.Attempts(httpRetryAttempts),
		retry.Delay(httpRetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			if se, ok := err.(*statusError); ok {
				return retryableStatus(se.code)
			}
			return true
		}),
	)
	if err != nil {
		return fmt.Errorf("calling %s: %w", url, err)
	}
	return nil
}

func truncateForError(raw []byte) string {
	const limit = 2048
	if len(raw) > limit {
		return string(raw[:limit]) + "..."
	}
	return string(raw)
}

// asMap round-trips a value through JSON into a generic map for logging.
func asMap(v any) map[string]any {
	raw, err := json.Marshal(v)
	if err != nil {
		return map[string]any{"marshal_error": err.Error()}
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]any{"unmarshal_error": err.Error()}
	}
	return out
}
