package config

import "time"

// SandboxConfig controls how per-session sandbox containers are launched.
type SandboxConfig struct {
	// Image is the sandbox container image.
	Image string `yaml:"image"`

	// BackendContainerPattern matches a running backend container name; the
	// sandbox joins that container's compose network when found.
	BackendContainerPattern string `yaml:"backend_container_pattern"`

	// HealthPort is the sandbox HTTP facade port.
	HealthPort int `yaml:"health_port"`

	// StopTimeout is passed to the runtime when stopping a container.
	StopTimeout time.Duration `yaml:"stop_timeout"`
}

// DefaultSandboxConfig returns the built-in sandbox defaults.
func DefaultSandboxConfig() *SandboxConfig {
	return &SandboxConfig{
		Image:                   "legacyuse/sandbox:latest",
		BackendContainerPattern: `legacyuse.*backend`,
		HealthPort:              8088,
		StopTimeout:             1 * time.Second,
	}
}

// SessionsConfig controls the session lifecycle monitor.
type SessionsConfig struct {
	// InitializingInterval is the probe cadence for initializing sessions.
	InitializingInterval time.Duration `yaml:"initializing_interval"`

	// ReadyInterval is the probe cadence for ready sessions.
	ReadyInterval time.Duration `yaml:"ready_interval"`

	// IdleTimeout archives a ready session whose last job is older than this.
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// SweepInterval is how often the monitor wakes to find due sessions.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// DefaultSessionsConfig returns the built-in session monitor defaults.
func DefaultSessionsConfig() *SessionsConfig {
	return &SessionsConfig{
		InitializingInterval: 5 * time.Second,
		ReadyInterval:        60 * time.Second,
		IdleTimeout:          60 * time.Minute,
		SweepInterval:        5 * time.Second,
	}
}
