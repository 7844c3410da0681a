package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTranscript = `{"type":"user","timestamp":"2025-06-01T10:00:00.000Z","gitBranch":"main"}
{"type":"assistant","timestamp":"2025-06-01T10:00:05.000Z","message":{"model":"claude-sonnet-4-5-20250929","usage":{"input_tokens":100,"output_tokens":50,"cache_read_input_tokens":1000,"cache_creation_input_tokens":200}}}
not json at all
{"type":"assistant","isSidechain":true,"timestamp":"2025-06-01T10:30:00.000Z","message":{"model":"claude-haiku-4-5","usage":{"input_tokens":7,"output_tokens":3}}}
{"type":"assistant","timestamp":"2025-06-01T12:15:00.000Z","gitBranch":"feature/x","message":{"model":"claude-opus-4-5-20251101","usage":{"input_tokens":20,"output_tokens":10,"cache_read_input_tokens":3000}}}
`

func TestParseTranscriptReader(t *testing.T) {
	s, err := ParseTranscriptReader(strings.NewReader(sampleTranscript))
	require.NoError(t, err)

	assert.True(t, s.HasUsage())
	assert.Equal(t, 3, s.Responses)
	assert.Equal(t, "claude-opus-4-5-20251101", s.Model)
	assert.Equal(t, "feature/x", s.GitBranch)

	assert.Equal(t, 127, s.Tokens.InputTokens)
	assert.Equal(t, 63, s.Tokens.OutputTokens)
	assert.Equal(t, 4200, s.Tokens.CachedTokens)
	assert.Equal(t, 127+63+4200, s.Tokens.TotalTokens)
	assert.Equal(t, 3020, s.Tokens.ContextLength)

	assert.Equal(t, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), s.SessionStart.UTC())
	assert.Equal(t, 2*time.Hour+15*time.Minute, s.Duration())
}

func TestParseTranscriptEmpty(t *testing.T) {
	s, err := ParseTranscriptReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.False(t, s.HasUsage())
	assert.Zero(t, s.Duration())
}

func TestParseTranscriptNoTrailingNewline(t *testing.T) {
	s, err := ParseTranscriptReader(strings.NewReader(`{"type":"assistant","message":{"usage":{"input_tokens":5}}}`))
	require.NoError(t, err)
	assert.Equal(t, 5, s.Tokens.InputTokens)
}

func TestParseTranscriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(sampleTranscript), 0644))

	s, err := ParseTranscript(path)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Responses)

	_, err = ParseTranscript(filepath.Join(t.TempDir(), "missing.jsonl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseTranscriptLongLine(t *testing.T) {
	long := `{"type":"user","content":"` + strings.Repeat("x", 200*1024) + `"}` + "\n" +
		`{"type":"assistant","message":{"usage":{"input_tokens":9}}}` + "\n"

	s, err := ParseTranscriptReader(strings.NewReader(long))
	require.NoError(t, err)
	assert.Equal(t, 9, s.Tokens.InputTokens)
}
