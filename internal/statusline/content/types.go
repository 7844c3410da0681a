// Package content collects the data shown on the status line.
//
// Collectors run before a render pass. Each one produces an encoded value
// (so it can be cached between invocations) and later applies it to the
// widget.Context handed to the renderer.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/young1lin/claude-statusline/internal/statusline/widget"
)

// StatusLineInput is the JSON document the host CLI writes on stdin
type StatusLineInput struct {
	SessionID string `json:"session_id"`
	Model     struct {
		DisplayName string `json:"display_name"`
		ID          string `json:"id"`
	} `json:"model"`
	ContextWindow struct {
		TotalInputTokens  int `json:"total_input_tokens"`
		TotalOutputTokens int `json:"total_output_tokens"`
		ContextWindowSize int `json:"context_window_size"`
		CurrentUsage      struct {
			InputTokens              int `json:"input_tokens"`
			OutputTokens             int `json:"output_tokens"`
			CacheReadInputTokens     int `json:"cache_read_input_tokens"`
			CacheCreationInputTokens int `json:"cache_creation_input_tokens"`
		} `json:"current_usage"`
	} `json:"context_window"`
	TranscriptPath string `json:"transcript_path"`
	Cwd            string `json:"cwd"`
	Version        string `json:"version"`
	Workspace      struct {
		CurrentDir string `json:"current_dir"`
		ProjectDir string `json:"project_dir"`
	} `json:"workspace"`

	raw []byte
}

// ReadInput decodes the stdin document. An empty document yields an empty
// input rather than an error so the status line still prints.
func ReadInput(r io.Reader) (*StatusLineInput, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("content: read input: %w", err)
	}
	return ParseInput(data)
}

// ParseInput decodes a stdin document held in memory
func ParseInput(data []byte) (*StatusLineInput, error) {
	in := &StatusLineInput{}
	if len(data) == 0 {
		return in, nil
	}
	if err := json.Unmarshal(data, in); err != nil {
		return in, fmt.Errorf("content: decode input: %w", err)
	}
	in.raw = data
	return in, nil
}

// Raw returns the document as received, re-encoding it when the input was
// built in code
func (in *StatusLineInput) Raw() []byte {
	if in.raw != nil {
		return in.raw
	}
	data, _ := json.Marshal(in)
	return data
}

// Dir returns the working directory the session runs in
func (in *StatusLineInput) Dir() string {
	if in.Workspace.CurrentDir != "" {
		return in.Workspace.CurrentDir
	}
	return in.Cwd
}

// ProjectDir returns the project root, used to find project settings
func (in *StatusLineInput) ProjectDir() string {
	if in.Workspace.ProjectDir != "" {
		return in.Workspace.ProjectDir
	}
	return in.Dir()
}

// ContentCollector gathers one concern of the status line data
type ContentCollector interface {
	Name() string
	// CacheKey identifies the collected value in the persistent cache
	CacheKey(in *StatusLineInput) string
	// CacheTTL is how long a collected value stays valid; 0 disables caching
	CacheTTL() time.Duration
	// Optional collectors may fail without being logged as errors
	Optional() bool
	Collect(ctx context.Context, in *StatusLineInput) (string, error)
	Apply(value string, wctx *widget.Context) error
}

// Cache is the persistent store consulted before collecting
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

func encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decode(value string, v any) error {
	if value == "" {
		return nil
	}
	return json.Unmarshal([]byte(value), v)
}
