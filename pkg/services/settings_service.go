package services

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/legacyuse/orchestrator/ent"
	"github.com/legacyuse/orchestrator/pkg/database"
)

// Tenant setting keys. The set is closed: unknown keys are rejected on write.
const (
	SettingAPIKey             = "API_KEY"
	SettingAPIProvider        = "API_PROVIDER"
	SettingAnthropicAPIKey    = "ANTHROPIC_API_KEY"
	SettingAWSAccessKeyID     = "AWS_ACCESS_KEY_ID"
	SettingAWSSecretAccessKey = "AWS_SECRET_ACCESS_KEY"
	SettingAWSRegion          = "AWS_REGION"
	SettingVertexProject      = "VERTEX_PROJECT"
	SettingVertexRegion       = "VERTEX_REGION"
	SettingOpenAIAPIKey       = "OPENAI_API_KEY"
	SettingOpenAIBaseURL      = "OPENAI_BASE_URL"
	SettingProxyAPIKey        = "LEGACYUSE_PROXY_API_KEY"
	SettingProxyBaseURL       = "LEGACYUSE_PROXY_BASE_URL"
	SettingTokenLimit         = "TOKEN_LIMIT"
)

// settingDefaults is the fall-through table for keys without a stored value.
var settingDefaults = map[string]string{
	SettingAPIProvider:   "anthropic",
	SettingAWSRegion:     "us-west-2",
	SettingVertexRegion:  "us-central1",
	SettingOpenAIBaseURL: "https://api.openai.com/v1",
	SettingTokenLimit:    "0",
}

// knownSettingKeys is the closed key set accepted by Set.
var knownSettingKeys = map[string]bool{
	SettingAPIKey:             true,
	SettingAPIProvider:        true,
	SettingAnthropicAPIKey:    true,
	SettingAWSAccessKeyID:     true,
	SettingAWSSecretAccessKey: true,
	SettingAWSRegion:          true,
	SettingVertexProject:      true,
	SettingVertexRegion:       true,
	SettingOpenAIAPIKey:       true,
	SettingOpenAIBaseURL:      true,
	SettingProxyAPIKey:        true,
	SettingProxyBaseURL:       true,
	SettingTokenLimit:         true,
}

// SettingsService reads and writes per-tenant settings with a short TTL cache
// in front of the database. Settings are read on every provider call, so the
// cache keeps the hot path off the settings table.
type SettingsService struct {
	db    *database.Client
	cache *gocache.Cache
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(db *database.Client) *SettingsService {
	return &SettingsService{
		db:    db,
		cache: gocache.New(30*time.Second, time.Minute),
	}
}

// Get returns the value for key: stored value, else default, else "".
func (s *SettingsService) Get(ctx context.Context, key string) (string, error) {
	if cached, ok := s.cache.Get(key); ok {
		return cached.(string), nil
	}

	setting, err := s.db.TenantSetting.Get(ctx, key)
	switch {
	case err == nil:
		s.cache.SetDefault(key, setting.Value)
		return setting.Value, nil
	case ent.IsNotFound(err):
		val := settingDefaults[key]
		s.cache.SetDefault(key, val)
		return val, nil
	default:
		return "", fmt.Errorf("getting setting %q: %w", key, err)
	}
}

// Set upserts a setting. Unknown keys are rejected.
func (s *SettingsService) Set(ctx context.Context, key, value string) error {
	if !knownSettingKeys[key] {
		return NewValidationError("key", fmt.Sprintf("unknown setting %q", key))
	}
	err := s.db.TenantSetting.Create().
		SetID(key).
		SetValue(value).
		OnConflictColumns("key").
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("setting %q: %w", key, err)
	}
	s.cache.Delete(key)
	return nil
}

// Invalidate drops a key from the cache (used after external writes).
func (s *SettingsService) Invalidate(key string) {
	s.cache.Delete(key)
}
