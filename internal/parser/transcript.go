package parser

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// TranscriptSummary contains the session information read from a transcript
type TranscriptSummary struct {
	Tokens       TokenStats
	Model        string // model of the most recent response
	GitBranch    string // branch recorded by the most recent entry
	SessionStart time.Time
	SessionEnd   time.Time
	Responses    int // assistant messages counted
}

// HasUsage reports whether any assistant message was found
func (s *TranscriptSummary) HasUsage() bool {
	return s.Responses > 0
}

// Duration returns the time between the first and the last entry
func (s *TranscriptSummary) Duration() time.Duration {
	if s.SessionStart.IsZero() || s.SessionEnd.IsZero() {
		return 0
	}
	return s.SessionEnd.Sub(s.SessionStart)
}

// entryHeader holds the fields read from every transcript line
type entryHeader struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	GitBranch string `json:"gitBranch"`
}

// ParseTranscript reads a whole transcript file
func ParseTranscript(path string) (*TranscriptSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript: %w", err)
	}
	defer f.Close()

	return ParseTranscriptReader(f)
}

// ParseTranscriptReader parses transcript JSONL from r. Lines that are not
// valid JSON are skipped; the host CLI may be in the middle of appending one.
func ParseTranscriptReader(r io.Reader) (*TranscriptSummary, error) {
	summary := &TranscriptSummary{}
	reader := bufio.NewReaderSize(r, 64*1024)

	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			summary.addLine(bytes.TrimSpace(line))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return summary, fmt.Errorf("failed to read transcript: %w", err)
		}
	}

	return summary, nil
}

func (s *TranscriptSummary) addLine(line []byte) {
	if len(line) == 0 {
		return
	}

	var header entryHeader
	if err := json.Unmarshal(line, &header); err != nil {
		return
	}

	if header.Timestamp != "" {
		if t, err := time.Parse(time.RFC3339, header.Timestamp); err == nil {
			if s.SessionStart.IsZero() || t.Before(s.SessionStart) {
				s.SessionStart = t
			}
			if s.SessionEnd.IsZero() || t.After(s.SessionEnd) {
				s.SessionEnd = t
			}
		}
	}
	if header.GitBranch != "" {
		s.GitBranch = header.GitBranch
	}

	if header.Type != "assistant" {
		return
	}
	msg, err := ParseLine(line)
	if err != nil || msg == nil {
		return
	}
	s.Tokens.Add(msg)
	s.Responses++
	if msg.Message.Model != "" {
		s.Model = msg.Message.Model
	}
}
