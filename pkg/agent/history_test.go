package agent

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legacyuse/orchestrator/pkg/models"
)

// screenshotResult builds a user message carrying one image-bearing
// tool_result.
func screenshotResult(i int) models.Message {
	return models.Message{
		Role: models.RoleUser,
		Content: []models.ContentBlock{
			models.ToolResultBlock(fmt.Sprintf("call_%d", i), []models.ContentBlock{
				models.TextBlock("screenshot taken"),
				models.ImageBlock("aW1hZ2U="),
			}, false),
		},
	}
}

func imageCount(history []models.Message) int {
	n := 0
	for _, msg := range history {
		n += countImages(msg.Content)
	}
	return n
}

func TestPruneScreenshotsKeepsMostRecent(t *testing.T) {
	history := []models.Message{
		{Role: models.RoleUser, Content: []models.ContentBlock{models.TextBlock("task")}},
	}
	for i := 0; i < 10; i++ {
		history = append(history, screenshotResult(i))
	}

	pruned := PruneScreenshots(history, 3, 1)
	assert.Equal(t, 3, imageCount(pruned))

	// oldest screenshots are the ones removed
	first := pruned[1].Content[0]
	assert.False(t, first.HasImage())
	last := pruned[len(pruned)-1].Content[0]
	assert.True(t, last.HasImage())

	// text alongside removed images survives
	require.NotEmpty(t, first.Content)
	assert.Equal(t, "screenshot taken", first.Content[0].Text)
}

func TestPruneScreenshotsChunked(t *testing.T) {
	var history []models.Message
	for i := 0; i < 7; i++ {
		history = append(history, screenshotResult(i))
	}

	// 7 images, keep 3: the raw excess is 4 but removals happen in chunks
	// of 3, so only 3 are removed
	pruned := PruneScreenshots(history, 3, 3)
	assert.Equal(t, 4, imageCount(pruned))

	// an excess below one chunk removes nothing
	pruned = PruneScreenshots(history, 5, 3)
	assert.Equal(t, 7, imageCount(pruned))
}

func TestPruneScreenshotsDisabled(t *testing.T) {
	history := []models.Message{screenshotResult(1), screenshotResult(2)}
	assert.Equal(t, 2, imageCount(PruneScreenshots(history, 0, 3)))
}

func TestPruneScreenshotsDoesNotMutateInput(t *testing.T) {
	history := []models.Message{screenshotResult(1), screenshotResult(2), screenshotResult(3)}
	PruneScreenshots(history, 1, 1)
	assert.Equal(t, 3, imageCount(history))
}

func TestApplyCacheBreakpoints(t *testing.T) {
	var history []models.Message
	for i := 0; i < 5; i++ {
		history = append(history, models.Message{
			Role:    models.RoleUser,
			Content: []models.ContentBlock{models.TextBlock(fmt.Sprintf("u%d", i))},
		})
		history = append(history, models.Message{
			Role:    models.RoleAssistant,
			Content: []models.ContentBlock{models.TextBlock(fmt.Sprintf("a%d", i))},
		})
	}

	marked := ApplyCacheBreakpoints(history)

	var hints int
	for _, msg := range marked {
		for _, block := range msg.Content {
			if block.CacheControl != nil {
				assert.Equal(t, models.RoleUser, msg.Role)
				assert.Equal(t, "ephemeral", block.CacheControl.Type)
				hints++
			}
		}
	}
	assert.Equal(t, maxCacheBreakpoints, hints)

	// the three most recent user messages carry the markers
	assert.NotNil(t, marked[8].Content[0].CacheControl)
	assert.NotNil(t, marked[6].Content[0].CacheControl)
	assert.NotNil(t, marked[4].Content[0].CacheControl)
	assert.Nil(t, marked[2].Content[0].CacheControl)
}

func TestApplyCacheBreakpointsStripsStale(t *testing.T) {
	history := []models.Message{
		{Role: models.RoleUser, Content: []models.ContentBlock{{
			Type: models.BlockTypeText, Text: "old",
			CacheControl: &models.CacheControl{Type: "ephemeral"},
		}}},
		{Role: models.RoleUser, Content: []models.ContentBlock{models.TextBlock("u1")}},
		{Role: models.RoleUser, Content: []models.ContentBlock{models.TextBlock("u2")}},
		{Role: models.RoleUser, Content: []models.ContentBlock{models.TextBlock("u3")}},
	}

	marked := ApplyCacheBreakpoints(history)
	assert.Nil(t, marked[0].Content[0].CacheControl, "stale marker beyond the window is stripped")
	for i := 1; i <= 3; i++ {
		assert.NotNil(t, marked[i].Content[0].CacheControl)
	}
}
