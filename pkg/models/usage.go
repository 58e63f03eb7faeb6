package models

// Usage captures per-request token counts as reported by a provider.
type Usage struct {
	InputTokens              int `json:"input_tokens"`
	OutputTokens             int `json:"output_tokens"`
	CacheCreationInputTokens int `json:"cache_creation_input_tokens,omitempty"`
	CacheReadInputTokens     int `json:"cache_read_input_tokens,omitempty"`
}

// WeightedTotal converts a usage record into a single budget figure. Cache
// writes cost 25% extra; cache reads cost a tenth of a regular input token.
func (u Usage) WeightedTotal() int {
	return u.InputTokens +
		u.OutputTokens +
		(u.CacheCreationInputTokens*125)/100 +
		u.CacheReadInputTokens/10
}

// Add accumulates another usage record into the receiver.
func (u *Usage) Add(other Usage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.CacheCreationInputTokens += other.CacheCreationInputTokens
	u.CacheReadInputTokens += other.CacheReadInputTokens
}
