package config

import "strings"

// DefaultContextWindow is used for models missing from the registry
const DefaultContextWindow = 200_000

// ExtendedContextWindow applies to model ids carrying the [1m] suffix
const ExtendedContextWindow = 1_000_000

// UsableContextRatio is the share of the window available before the host
// CLI auto-compacts the conversation
const UsableContextRatio = 0.8

// ModelInfo contains metadata about a Claude model
type ModelInfo struct {
	Name          string
	ContextWindow int
}

// ModelInfoRegistry maps model IDs to their metadata
var ModelInfoRegistry = map[string]ModelInfo{
	"claude-sonnet-4-5-20250929": {Name: "Sonnet 4.5", ContextWindow: 200000},
	"claude-opus-4-5-20251101":   {Name: "Opus 4.5", ContextWindow: 200000},
	"claude-haiku-4-5-20251001":  {Name: "Haiku 4.5", ContextWindow: 200000},
	"claude-opus-4-1-20250805":   {Name: "Opus 4.1", ContextWindow: 200000},
	"claude-sonnet-4-20250514":   {Name: "Sonnet 4", ContextWindow: 200000},
	// Add fallback for short model names
	"claude-sonnet-4-5": {Name: "Sonnet 4.5", ContextWindow: 200000},
	"claude-opus-4-5":   {Name: "Opus 4.5", ContextWindow: 200000},
	"claude-haiku-4-5":  {Name: "Haiku 4.5", ContextWindow: 200000},
}

// GetModelInfo returns model info for a given model ID. Unknown models get
// the default context window and their id as name.
func GetModelInfo(modelID string) ModelInfo {
	id, extended := splitExtended(modelID)

	info, ok := ModelInfoRegistry[id]
	if !ok && id != "" {
		// Try to find by prefix (for version variations)
		best := ""
		for k, v := range ModelInfoRegistry {
			if strings.HasPrefix(id, k) && len(k) > len(best) {
				best, info, ok = k, v, true
			}
		}
	}
	if !ok {
		info = ModelInfo{Name: id, ContextWindow: DefaultContextWindow}
	}
	if extended {
		info.ContextWindow = ExtendedContextWindow
	}
	return info
}

func splitExtended(modelID string) (string, bool) {
	lower := strings.ToLower(modelID)
	if strings.HasSuffix(lower, "[1m]") {
		return modelID[:len(modelID)-len("[1m]")], true
	}
	return modelID, false
}

// GetContextWindow returns the context window size for a given model
func GetContextWindow(modelID string) int {
	return GetModelInfo(modelID).ContextWindow
}

// GetModelName returns a human-readable model name
func GetModelName(modelID string) string {
	return GetModelInfo(modelID).Name
}
