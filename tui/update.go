package tui

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case SettingsReloadedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.settings = msg.Settings
		m.flexMode = msg.Settings.FlexMode
		m.err = nil
		if m.live {
			return m, m.loadSession()
		}
		return m, nil

	case SessionLoadedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.liveCtx = msg.Context
		m.sessionID = msg.SessionID
		m.err = nil
		return m, nil

	case FileChangedMsg:
		if m.settingsPath != "" && samePath(msg.Path, m.settingsPath) {
			return m, m.loadSettings()
		}
		if m.live {
			return m, m.loadSession()
		}
		return m, nil

	case WatcherFailedMsg:
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Flex):
		m.flexMode = m.flexMode.Next()

	case key.Matches(msg, m.keys.Data):
		m.live = !m.live
		if m.live && m.liveCtx == nil {
			return m, m.loadSession()
		}

	case key.Matches(msg, m.keys.Narrow):
		m.simWidth = clampWidth(m.Width() - widthStep)

	case key.Matches(msg, m.keys.Widen):
		m.simWidth = clampWidth(m.Width() + widthStep)

	case key.Matches(msg, m.keys.Fit):
		m.simWidth = 0

	case key.Matches(msg, m.keys.Reload):
		cmds := []tea.Cmd{m.loadSettings()}
		if m.live {
			cmds = append(cmds, m.loadSession())
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m Model) loadSettings() tea.Cmd {
	load := m.loaders.Settings
	if load == nil {
		return nil
	}
	return func() tea.Msg {
		s, err := load()
		return SettingsReloadedMsg{Settings: s, Err: err}
	}
}

func (m Model) loadSession() tea.Cmd {
	load := m.loaders.Session
	if load == nil {
		return nil
	}
	settings := m.settings
	return func() tea.Msg {
		ctx, id, err := load(settings)
		return SessionLoadedMsg{Context: ctx, SessionID: id, Err: err}
	}
}

func clampWidth(w int) int {
	if w < minWidth {
		return minWidth
	}
	if w > maxWidth {
		return maxWidth
	}
	return w
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
