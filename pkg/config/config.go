// Package config loads and validates orchestrator configuration. Defaults are
// compiled in; an optional YAML file overrides them, and a .env file in the
// config directory supplies process environment (database, credentials).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the umbrella configuration for one orchestrator process.
type Config struct {
	Queue     *QueueConfig     `yaml:"queue"`
	Loop      *LoopConfig      `yaml:"loop"`
	Sandbox   *SandboxConfig   `yaml:"sandbox"`
	Sessions  *SessionsConfig  `yaml:"sessions"`
	Retention *RetentionConfig `yaml:"retention"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Queue:     DefaultQueueConfig(),
		Loop:      DefaultLoopConfig(),
		Sandbox:   DefaultSandboxConfig(),
		Sessions:  DefaultSessionsConfig(),
		Retention: DefaultRetentionConfig(),
	}
}

// Load reads configDir/orchestrator.yaml over the defaults. A missing file is
// not an error; a malformed one is.
func Load(configDir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(configDir, "orchestrator.yaml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks cross-field constraints that YAML decoding cannot.
func (c *Config) Validate() error {
	if c.Queue.WorkerCount < 1 {
		return fmt.Errorf("queue.worker_count must be >= 1, got %d", c.Queue.WorkerCount)
	}
	if c.Queue.LeaseSeconds < 1 {
		return fmt.Errorf("queue.lease_seconds must be >= 1, got %d", c.Queue.LeaseSeconds)
	}
	if c.Loop.MaxTokens < 1 {
		return fmt.Errorf("loop.max_tokens must be >= 1, got %d", c.Loop.MaxTokens)
	}
	if c.Loop.MinRemovalThreshold < 1 {
		return fmt.Errorf("loop.min_removal_threshold must be >= 1, got %d", c.Loop.MinRemovalThreshold)
	}
	if c.Retention.LogRetentionDays < 1 {
		return fmt.Errorf("retention.log_retention_days must be >= 1, got %d", c.Retention.LogRetentionDays)
	}
	return nil
}
