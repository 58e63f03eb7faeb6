package config

import "time"

// LoopConfig controls the sampling loop: provider selection, token budgets,
// and conversation-history truncation.
type LoopConfig struct {
	// Provider selects the handler family: anthropic, openai, opencua.
	// Tenant settings may override per tenant.
	Provider string `yaml:"provider"`

	// Model is the default model identifier passed to the handler.
	Model string `yaml:"model"`

	// ToolVersion selects the computer tool wire version.
	ToolVersion string `yaml:"tool_version"`

	// MaxTokens caps a single provider response.
	MaxTokens int `yaml:"max_tokens"`

	// TokenLimit is the job-level weighted token budget; exceeding it
	// terminates the job with "exceeded token limit". Zero disables.
	TokenLimit int `yaml:"token_limit"`

	// OnlyNMostRecentImages keeps this many image-bearing tool results in
	// history before a provider call. Zero disables pruning.
	OnlyNMostRecentImages int `yaml:"only_n_most_recent_images"`

	// MinRemovalThreshold chunks screenshot removals to preserve prompt
	// cache prefixes across calls.
	MinRemovalThreshold int `yaml:"min_removal_threshold"`

	// Temperature for provider sampling.
	Temperature float64 `yaml:"temperature"`

	// HealthCheckTimeout bounds the sandbox health probe before each tool.
	HealthCheckTimeout time.Duration `yaml:"health_check_timeout"`

	// ToolTimeout bounds a single sandbox tool call.
	ToolTimeout time.Duration `yaml:"tool_timeout"`

	// SystemPromptSuffix is appended to the system prompt with one space.
	SystemPromptSuffix string `yaml:"system_prompt_suffix"`

	// CustomActions are named, pre-recorded computer action sequences the
	// model can replay through the custom_action tool.
	CustomActions map[string][]RecordedStep `yaml:"custom_actions"`
}

// RecordedStep is one computer action inside a recorded custom action.
type RecordedStep struct {
	Action string         `yaml:"action"`
	Params map[string]any `yaml:"params"`
}

// DefaultLoopConfig returns the built-in sampling loop defaults.
func DefaultLoopConfig() *LoopConfig {
	return &LoopConfig{
		Provider:              "anthropic",
		Model:                 "claude-sonnet-4-20250514",
		ToolVersion:           "computer_20250124",
		MaxTokens:             4096,
		TokenLimit:            0,
		OnlyNMostRecentImages: 3,
		MinRemovalThreshold:   3,
		Temperature:           0,
		HealthCheckTimeout:    5 * time.Second,
		ToolTimeout:           60 * time.Second,
	}
}
