package tui

import (
	"github.com/young1lin/claude-statusline/internal/statusline/config"
	"github.com/young1lin/claude-statusline/internal/statusline/widget"
)

// SettingsReloadedMsg carries freshly loaded settings
type SettingsReloadedMsg struct {
	Settings *config.Settings
	Err      error
}

// SessionLoadedMsg carries data collected from the current session
type SessionLoadedMsg struct {
	Context   *widget.Context
	SessionID string
	Err       error
}

// FileChangedMsg is sent when a watched file changes on disk
type FileChangedMsg struct {
	Path string
}

// WatcherFailedMsg is sent when the file watcher fails
type WatcherFailedMsg struct {
	Err error
}
