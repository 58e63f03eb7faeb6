package config

// RetentionConfig controls log retention pruning (leader-guarded, daily).
type RetentionConfig struct {
	// LogRetentionDays is how many days of job logs to keep per tenant.
	LogRetentionDays int `yaml:"log_retention_days"`

	// PruneHourUTC is the UTC hour the daily prune runs at.
	PruneHourUTC int `yaml:"prune_hour_utc"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		LogRetentionDays: 30,
		PruneHourUTC:     0,
	}
}
