// Package tui implements the live status line preview.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/claude-statusline/internal/statusline/config"
	"github.com/young1lin/claude-statusline/internal/statusline/widget"
)

const (
	// widthStep is how many columns [ and ] change the simulated width by
	widthStep = 5
	minWidth  = 20
	maxWidth  = 500
)

// Loaders fetch the data the preview shows
type Loaders struct {
	// Settings reloads the settings file
	Settings func() (*config.Settings, error)
	// Session collects live data for the given settings
	Session func(*config.Settings) (*widget.Context, string, error)
}

// Model represents the application state
type Model struct {
	settings     *config.Settings
	settingsPath string
	flexMode     config.FlexMode

	termWidth int
	simWidth  int // 0 follows the terminal

	live      bool
	liveCtx   *widget.Context
	sessionID string

	loaders  Loaders
	ready    bool
	quitting bool
	err      error

	keys   KeyMap
	help   help.Model
	styles Styles
}

// Styles contains the Lipgloss styles for the preview chrome
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Frame    lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Ruler    lipgloss.Style
}

// DefaultStyles returns the default UI styles
func DefaultStyles() Styles {
	primaryColor := lipgloss.Color("86")    // Green
	secondaryColor := lipgloss.Color("239") // Grey
	errorColor := lipgloss.Color("196")     // Red

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		// top and bottom rules only, so the frame adds no columns
		Frame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false).
			BorderForeground(secondaryColor),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Error: lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
		Ruler: lipgloss.NewStyle().
			Foreground(secondaryColor),
	}
}

// NewModel creates a preview of settings, which were loaded from
// settingsPath
func NewModel(settings *config.Settings, settingsPath string, loaders Loaders) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	return Model{
		settings:     settings,
		settingsPath: settingsPath,
		flexMode:     settings.FlexMode,
		loaders:      loaders,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		styles:       DefaultStyles(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Width returns the width the status line is rendered for
func (m Model) Width() int {
	if m.simWidth > 0 {
		return m.simWidth
	}
	return m.termWidth
}

// renderContext returns the context for the current data source and width
func (m Model) renderContext() *widget.Context {
	var ctx *widget.Context
	if m.live && m.liveCtx != nil {
		c := *m.liveCtx
		ctx = &c
	} else {
		ctx = widget.SampleContext(0)
	}
	ctx.TerminalWidth = m.Width()
	ctx.WidthDetectionAvailable = ctx.TerminalWidth > 0
	return ctx
}
