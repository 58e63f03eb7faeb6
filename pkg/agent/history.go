package agent

import (
	"github.com/samber/lo"

	"github.com/legacyuse/orchestrator/pkg/models"
)

// maxCacheBreakpoints is the provider-side limit on active ephemeral cache
// markers.
const maxCacheBreakpoints = 3

// PruneScreenshots keeps only the keep most recent images inside tool_result
// blocks, dropping older ones from a copy of the history. Removals happen in
// chunks of chunk so the pruned prefix stays stable across consecutive calls
// and prompt caching keeps hitting. keep <= 0 disables pruning.
func PruneScreenshots(history []models.Message, keep, chunk int) []models.Message {
	if keep <= 0 {
		return history
	}
	if chunk < 1 {
		chunk = 1
	}

	total := lo.SumBy(history, func(msg models.Message) int {
		return countImages(msg.Content)
	})
	remove := total - keep
	remove -= remove % chunk
	if remove <= 0 {
		return history
	}

	out := make([]models.Message, len(history))
	for i, msg := range history {
		out[i] = msg
		if remove == 0 {
			continue
		}
		content := make([]models.ContentBlock, len(msg.Content))
		for bi, block := range msg.Content {
			if block.Type == models.BlockTypeToolResult && remove > 0 {
				block.Content, remove = dropImages(block.Content, remove)
			}
			content[bi] = block
		}
		out[i].Content = content
	}
	return out
}

func countImages(blocks []models.ContentBlock) int {
	n := 0
	for _, block := range blocks {
		if block.Type == models.BlockTypeToolResult {
			n += lo.CountBy(block.Content, func(inner models.ContentBlock) bool {
				return inner.Type == models.BlockTypeImage
			})
		}
	}
	return n
}

func dropImages(blocks []models.ContentBlock, budget int) ([]models.ContentBlock, int) {
	out := make([]models.ContentBlock, 0, len(blocks))
	for _, block := range blocks {
		if block.Type == models.BlockTypeImage && budget > 0 {
			budget--
			continue
		}
		out = append(out, block)
	}
	return out, budget
}

// ApplyCacheBreakpoints marks the final content block of the most recent
// user messages with an ephemeral cache hint and strips older markers,
// keeping at most maxCacheBreakpoints active. Returns a copy.
func ApplyCacheBreakpoints(history []models.Message) []models.Message {
	out := make([]models.Message, len(history))
	remaining := maxCacheBreakpoints

	for i := len(history) - 1; i >= 0; i-- {
		msg := history[i]
		content := make([]models.ContentBlock, len(msg.Content))
		copy(content, msg.Content)
		for bi := range content {
			content[bi].CacheControl = nil
		}

		if msg.Role == models.RoleUser && remaining > 0 && len(content) > 0 {
			content[len(content)-1].CacheControl = &models.CacheControl{Type: "ephemeral"}
			remaining--
		}

		out[i] = models.Message{Role: msg.Role, Content: content}
	}
	return out
}
