package config

import (
	"testing"
)

func TestGetModelInfo(t *testing.T) {
	tests := []struct {
		name        string
		modelID     string
		wantName    string
		wantContext int
	}{
		{
			name:        "sonnet 4.5 full ID",
			modelID:     "claude-sonnet-4-5-20250929",
			wantName:    "Sonnet 4.5",
			wantContext: 200000,
		},
		{
			name:        "opus 4.5 full ID",
			modelID:     "claude-opus-4-5-20251101",
			wantName:    "Opus 4.5",
			wantContext: 200000,
		},
		{
			name:        "sonnet short ID",
			modelID:     "claude-sonnet-4-5",
			wantName:    "Sonnet 4.5",
			wantContext: 200000,
		},
		{
			name:        "extended context suffix",
			modelID:     "claude-sonnet-4-5-20250929[1m]",
			wantName:    "Sonnet 4.5",
			wantContext: 1000000,
		},
		{
			name:        "extended suffix is case insensitive",
			modelID:     "claude-sonnet-4-5[1M]",
			wantName:    "Sonnet 4.5",
			wantContext: 1000000,
		},
		{
			name:        "prefix match with version suffix",
			modelID:     "claude-haiku-4-5-20251001-v2",
			wantName:    "Haiku 4.5",
			wantContext: 200000,
		},
		{
			name:        "unknown model keeps its id",
			modelID:     "some-local-model",
			wantName:    "some-local-model",
			wantContext: DefaultContextWindow,
		},
		{
			name:        "empty id",
			modelID:     "",
			wantName:    "",
			wantContext: DefaultContextWindow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetModelInfo(tt.modelID)
			if got.Name != tt.wantName {
				t.Errorf("GetModelInfo().Name = %v, want %v", got.Name, tt.wantName)
			}
			if got.ContextWindow != tt.wantContext {
				t.Errorf("GetModelInfo().ContextWindow = %v, want %v", got.ContextWindow, tt.wantContext)
			}
		})
	}
}

func TestGetContextWindow(t *testing.T) {
	tests := []struct {
		name    string
		modelID string
		want    int
	}{
		{"sonnet", "claude-sonnet-4-5-20250929", 200000},
		{"opus 1m", "claude-opus-4-5[1m]", 1000000},
		{"unknown", "unknown-model", 200000},
		{"empty", "", 200000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetContextWindow(tt.modelID); got != tt.want {
				t.Errorf("GetContextWindow() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetModelName(t *testing.T) {
	if got := GetModelName("claude-opus-4-1-20250805"); got != "Opus 4.1" {
		t.Errorf("GetModelName() = %v, want Opus 4.1", got)
	}
}
