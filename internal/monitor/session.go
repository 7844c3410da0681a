// Package monitor locates Claude Code sessions and watches the files the
// live preview depends on.
package monitor

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SessionInfo contains information about a Claude Code session
type SessionInfo struct {
	ID       string
	FilePath string
	Project  string
	LastMod  time.Time
}

// FindCurrentSession finds the most recently modified JSONL session file
// under projectsDir
func FindCurrentSession(projectsDir string) (*SessionInfo, error) {
	return FindCurrentSessionWithFS(OSFileSystem{}, projectsDir)
}

// FindCurrentSessionWithFS finds the most recently modified JSONL session file using a custom FileSystem
func FindCurrentSessionWithFS(fs FileSystem, projectsDir string) (*SessionInfo, error) {
	if projectsDir == "" {
		return nil, ErrNoSessionsFound
	}
	if info, err := fs.Stat(projectsDir); err != nil || !info.IsDir() {
		return nil, ErrNoSessionsFound
	}

	var latest SessionInfo
	found := false

	err := fs.Walk(projectsDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors, continue walking
		}
		if info.IsDir() || !strings.HasSuffix(path, ".jsonl") {
			return nil
		}
		// Subagent transcripts live next to the session they belong to
		if strings.HasPrefix(filepath.Base(path), "agent-") {
			return nil
		}

		modTime := info.ModTime()
		if found && !modTime.After(latest.LastMod) {
			return nil
		}

		projectPath := "unknown"
		if rel, err := filepath.Rel(projectsDir, filepath.Dir(path)); err == nil && rel != "." {
			projectPath = denormalizePath(rel)
		}

		latest = SessionInfo{
			ID:       strings.TrimSuffix(filepath.Base(path), ".jsonl"),
			FilePath: path,
			Project:  projectPath,
			LastMod:  modTime,
		}
		found = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, ErrNoSessionsFound
	}
	return &latest, nil
}

// denormalizePath converts a project directory name back to a readable path.
// Claude Code replaces path separators with '-', so the result is only a
// display approximation.
func denormalizePath(path string) string {
	if strings.HasPrefix(path, "-") {
		path = "/" + strings.TrimPrefix(path, "-")
	}
	return strings.ReplaceAll(path, "-", "/")
}

// Errors
var (
	ErrNoSessionsFound = &MonitorError{Message: "no Claude Code sessions found"}
)

// MonitorError represents an error in the monitor package
type MonitorError struct {
	Message string
}

func (e *MonitorError) Error() string {
	return e.Message
}
