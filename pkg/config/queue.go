package config

import "time"

// QueueConfig controls how jobs are polled, claimed, and leased. One logical
// processor runs per tenant schema; multiple processes coordinate through the
// database only.
type QueueConfig struct {
	// WorkerCount is the number of job slots per tenant processor: how many
	// claimed jobs may execute concurrently inside this process.
	WorkerCount int `yaml:"worker_count"`

	// PollInterval is the base interval between claim attempts when the
	// queue is non-empty but nothing is claimable.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter randomizes PollInterval to de-synchronize replicas.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// LeaseSeconds is the lifetime stamped on a claim. The owner renews at
	// LeaseRenewInterval; an expired lease is reaped to error.
	LeaseSeconds int `yaml:"lease_seconds"`

	// LeaseRenewInterval is how often a running worker extends its lease.
	LeaseRenewInterval time.Duration `yaml:"lease_renew_interval"`

	// StaleLeaseInterval is how often the reaper scans for expired leases.
	StaleLeaseInterval time.Duration `yaml:"stale_lease_interval"`

	// GracefulShutdownTimeout is the max time to wait for running jobs
	// during shutdown before letting the lease reaper finish them.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		LeaseSeconds:            120,
		LeaseRenewInterval:      30 * time.Second,
		StaleLeaseInterval:      1 * time.Minute,
		GracefulShutdownTimeout: 5 * time.Minute,
	}
}
