package agent

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/legacyuse/orchestrator/ent"
	"github.com/legacyuse/orchestrator/pkg/tools"
)

func TestSubstituteParameters(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	params := map[string]any{"account": "12345", "amount": 42}

	out := SubstituteParameters(
		"Read balance for {account}, transfer {{amount}} on {now}.", params, now)

	assert.Equal(t, "Read balance for 12345, transfer 42 on 2026-03-14T09:30:00Z.", out)
}

func TestSubstituteParametersExplicitNowWins(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	out := SubstituteParameters("at {now}", map[string]any{"now": "noon"}, now)
	assert.Equal(t, "at noon", out)
}

func TestBuildInitialPrompt(t *testing.T) {
	version := &ent.APIDefinitionVersion{
		Prompt:          "Log into the terminal for {user}.",
		PromptCleanup:   "Log out and close the window.",
		ResponseExample: map[string]any{"balance": "10.00"},
	}
	out := BuildInitialPrompt("read_balance", version, map[string]any{"user": "alice"}, time.Now())

	assert.Contains(t, out, "Log into the terminal for alice.")
	assert.Contains(t, out, tools.ExtractionPreambleMarker)
	assert.Contains(t, out, "read_balance")
	assert.Contains(t, out, "After you've completed the extraction, please perform these steps to return the system to its original state: Log out and close the window.")
	// prompt comes first, contract after
	assert.Less(t,
		strings.Index(out, "Log into the terminal"),
		strings.Index(out, tools.ExtractionPreambleMarker))
}

func TestSystemPrompt(t *testing.T) {
	now := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	out := SystemPrompt(1024, 768, "", now)

	assert.True(t, len(out) > 0)
	assert.Contains(t, out, "<SYSTEM_CAPABILITY>")
	assert.Contains(t, out, "</SYSTEM_CAPABILITY>")
	assert.Contains(t, out, "1024x768")
	assert.Contains(t, out, "Monday, August 3, 2026")
	assert.Contains(t, out, "Super_L")

	withSuffix := SystemPrompt(1024, 768, "Respond in German.", now)
	assert.Contains(t, withSuffix, "</SYSTEM_CAPABILITY> Respond in German.")
}
