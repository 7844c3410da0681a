package parser

// TokenStats represents aggregated token statistics of a session
type TokenStats struct {
	InputTokens  int
	OutputTokens int
	CachedTokens int // cache reads plus cache creation
	TotalTokens  int // input + output + cached

	// ContextLength is the prompt size of the most recent main-chain response:
	// its input tokens plus everything read from or written to the cache
	ContextLength int
}

// Add accumulates the usage of one assistant message. Sidechain (sub-agent)
// messages count towards the totals but never define the context length.
func (s *TokenStats) Add(msg *AssistantMessage) {
	u := msg.Message.Usage
	cached := u.CacheReadInputTokens + u.CacheCreationInputTokens

	s.InputTokens += u.InputTokens
	s.OutputTokens += u.OutputTokens
	s.CachedTokens += cached
	s.TotalTokens = s.InputTokens + s.OutputTokens + s.CachedTokens

	if !msg.IsSidechain {
		s.ContextLength = u.InputTokens + cached
	}
}

// CalculateStats returns the statistics of a single assistant message
func CalculateStats(msg *AssistantMessage) TokenStats {
	var s TokenStats
	s.Add(msg)
	return s
}
