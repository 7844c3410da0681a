package parser

import (
	"encoding/json"
	"fmt"
)

// AssistantMessage represents an assistant message entry in the JSONL file
type AssistantMessage struct {
	Type        string  `json:"type"`
	UUID        string  `json:"uuid"`
	Timestamp   string  `json:"timestamp"`
	SessionID   string  `json:"sessionId"`
	IsSidechain bool    `json:"isSidechain"`
	Message     Message `json:"message"`
}

// Message is the API message embedded in an assistant entry
type Message struct {
	Model      string `json:"model"`
	ID         string `json:"id"`
	Type       string `json:"type"`
	Role       string `json:"role"`
	StopReason string `json:"stop_reason"`
	Usage      Usage  `json:"usage"`
}

// Usage is the token usage reported for one API response
type Usage struct {
	InputTokens              int `json:"input_tokens"`
	OutputTokens             int `json:"output_tokens"`
	CacheCreationInputTokens int `json:"cache_creation_input_tokens"`
	CacheReadInputTokens     int `json:"cache_read_input_tokens"`
}

// ParseLine parses a single JSONL line and returns an AssistantMessage if applicable
func ParseLine(line []byte) (*AssistantMessage, error) {
	var msg struct {
		Type string `json:"type"`
	}

	// First check the type without full unmarshaling
	if err := json.Unmarshal(line, &msg); err != nil {
		return nil, fmt.Errorf("failed to parse message type: %w", err)
	}

	// Only care about assistant messages (which contain token usage)
	if msg.Type != "assistant" {
		return nil, nil
	}

	var assistant AssistantMessage
	if err := json.Unmarshal(line, &assistant); err != nil {
		return nil, fmt.Errorf("failed to parse assistant message: %w", err)
	}

	return &assistant, nil
}
