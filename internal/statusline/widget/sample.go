package widget

import "time"

// Sample values shown in preview mode, so a layout can be authored without a
// live session
var (
	sampleModel   = "Claude"
	sampleTokens  = TokenMetrics{ContextLength: 18600, InputTokens: 15200, OutputTokens: 3400, CachedTokens: 12000, TotalTokens: 30600}
	sampleGit     = GitStatus{Branch: "main", Insertions: 42, Deletions: 10}
	sampleSession = 2*time.Hour + 15*time.Minute
	sampleVersion = "1.0.80"
	sampleWidth   = 120
)

// SampleContext returns a preview context for a terminal of the given width.
// A width of 0 means width detection is unavailable.
func SampleContext(width int) *Context {
	tokens := sampleTokens
	git := sampleGit
	return &Context{
		IsPreview:               true,
		Model:                   sampleModel,
		Tokens:                  &tokens,
		Git:                     &git,
		SessionDuration:         sampleSession,
		HasSession:              true,
		Version:                 sampleVersion,
		TerminalWidth:           width,
		WidthDetectionAvailable: width > 0,
	}
}
