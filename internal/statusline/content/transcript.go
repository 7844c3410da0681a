package content

import (
	"context"
	"errors"
	"os"
	"time"

	appconfig "github.com/young1lin/claude-statusline/internal/config"
	"github.com/young1lin/claude-statusline/internal/parser"
	"github.com/young1lin/claude-statusline/internal/statusline/widget"
)

type transcriptValue struct {
	Tokens   *widget.TokenMetrics `json:"tokens,omitempty"`
	Duration time.Duration        `json:"duration"`
	Session  bool                 `json:"session"`
	Model    string               `json:"model,omitempty"`
}

// TranscriptCollector collects token metrics and the session duration from
// the session transcript. Without a transcript it falls back to the usage
// block reported on stdin.
type TranscriptCollector struct {
	*BaseCollector
}

// NewTranscriptCollector creates a new transcript collector
func NewTranscriptCollector() *TranscriptCollector {
	return &TranscriptCollector{
		BaseCollector: NewBaseCollector("transcript", 0, true),
	}
}

// Collect parses the transcript named on stdin
func (c *TranscriptCollector) Collect(_ context.Context, in *StatusLineInput) (string, error) {
	var v transcriptValue

	if in.TranscriptPath != "" {
		summary, err := parser.ParseTranscript(in.TranscriptPath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		if summary != nil {
			if summary.HasUsage() {
				v.Tokens = metricsFromStats(summary.Tokens)
				v.Model = summary.Model
			}
			if !summary.SessionStart.IsZero() {
				v.Session = true
				v.Duration = summary.Duration()
			}
		}
	}

	if v.Tokens == nil {
		v.Tokens = metricsFromInput(in)
	}
	return encode(v)
}

// Apply sets token metrics and the session clock. The transcript model only
// fills in when stdin named none.
func (c *TranscriptCollector) Apply(value string, wctx *widget.Context) error {
	var v transcriptValue
	if err := decode(value, &v); err != nil {
		return err
	}
	wctx.Tokens = v.Tokens
	wctx.HasSession = v.Session
	wctx.SessionDuration = v.Duration
	if wctx.Model == "" && v.Model != "" {
		wctx.Model = appconfig.GetModelName(v.Model)
		if wctx.ContextWindow == 0 {
			wctx.ContextWindow = appconfig.GetContextWindow(v.Model)
		}
	}
	return nil
}

func metricsFromStats(s parser.TokenStats) *widget.TokenMetrics {
	return &widget.TokenMetrics{
		ContextLength: s.ContextLength,
		InputTokens:   s.InputTokens,
		OutputTokens:  s.OutputTokens,
		CachedTokens:  s.CachedTokens,
		TotalTokens:   s.TotalTokens,
	}
}

// metricsFromInput builds metrics from context_window.current_usage, or nil
// when stdin carried no usage
func metricsFromInput(in *StatusLineInput) *widget.TokenMetrics {
	u := in.ContextWindow.CurrentUsage
	cached := u.CacheReadInputTokens + u.CacheCreationInputTokens
	if u.InputTokens+u.OutputTokens+cached == 0 {
		return nil
	}
	return &widget.TokenMetrics{
		ContextLength: u.InputTokens + cached,
		InputTokens:   u.InputTokens,
		OutputTokens:  u.OutputTokens,
		CachedTokens:  cached,
		TotalTokens:   u.InputTokens + u.OutputTokens + cached,
	}
}
