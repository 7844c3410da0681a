// Package widget turns configured status line items into display text.
//
// Every widget kind implements Widget. Widgets only format values that were
// collected beforehand and handed over in a Context; they never perform I/O,
// which keeps a render pass a pure function of its inputs.
package widget

import (
	"time"

	appconfig "github.com/young1lin/claude-statusline/internal/config"
	"github.com/young1lin/claude-statusline/internal/statusline/config"
)

// Widget renders one kind of status line item. The boolean result is false
// when the data the widget needs is unavailable; such items are dropped from
// the line entirely.
type Widget interface {
	Render(item config.WidgetItem, ctx *Context) (string, bool)
}

// TokenMetrics holds the token counts of the current session
type TokenMetrics struct {
	ContextLength int
	InputTokens   int
	OutputTokens  int
	CachedTokens  int
	TotalTokens   int
}

// GitStatus holds the state of the working directory's repository
type GitStatus struct {
	Branch     string
	Insertions int
	Deletions  int
}

// Context carries everything a render pass may show. Nil pointers and zero
// values mean the value is unavailable.
type Context struct {
	IsPreview bool

	Model         string
	ContextWindow int // tokens; 0 uses the default window
	Tokens        *TokenMetrics
	Git           *GitStatus

	SessionDuration time.Duration
	HasSession      bool

	Version string

	TerminalWidth           int
	WidthDetectionAvailable bool

	// CommandOutput holds captured custom-command output keyed by item id
	CommandOutput map[string]string
}

var registry = map[config.WidgetType]Widget{
	config.WidgetModel:                   modelWidget{},
	config.WidgetGitBranch:               gitBranchWidget{},
	config.WidgetGitChanges:              gitChangesWidget{},
	config.WidgetTokensInput:             tokenWidget{label: "In", value: func(m *TokenMetrics) int { return m.InputTokens }},
	config.WidgetTokensOutput:            tokenWidget{label: "Out", value: func(m *TokenMetrics) int { return m.OutputTokens }},
	config.WidgetTokensCached:            tokenWidget{label: "Cached", value: func(m *TokenMetrics) int { return m.CachedTokens }},
	config.WidgetTokensTotal:             tokenWidget{label: "Total", value: func(m *TokenMetrics) int { return m.TotalTokens }},
	config.WidgetContextLength:           tokenWidget{label: "Ctx", value: func(m *TokenMetrics) int { return m.ContextLength }},
	config.WidgetContextPercentage:       contextPercentWidget{label: "Ctx", ratio: 1},
	config.WidgetContextPercentageUsable: contextPercentWidget{label: "Ctx(u)", ratio: appconfig.UsableContextRatio},
	config.WidgetSessionClock:            sessionClockWidget{},
	config.WidgetTerminalWidth:           terminalWidthWidget{},
	config.WidgetVersion:                 versionWidget{},
	config.WidgetSeparator:               separatorWidget{},
	config.WidgetFlexSeparator:           flexSeparatorWidget{},
	config.WidgetCustomText:              customTextWidget{},
	config.WidgetCustomCommand:           customCommandWidget{},
}

// Lookup returns the widget implementing t
func Lookup(t config.WidgetType) (Widget, bool) {
	w, ok := registry[t]
	return w, ok
}

// Render renders item with the widget registered for its type. Unknown types
// render nothing.
func Render(item config.WidgetItem, ctx *Context) (string, bool) {
	w, ok := Lookup(item.Type)
	if !ok {
		return "", false
	}
	return w.Render(item, ctx)
}

// Types lists every known widget type in a stable order
func Types() []config.WidgetType {
	return []config.WidgetType{
		config.WidgetModel,
		config.WidgetGitBranch,
		config.WidgetGitChanges,
		config.WidgetTokensInput,
		config.WidgetTokensOutput,
		config.WidgetTokensCached,
		config.WidgetTokensTotal,
		config.WidgetContextLength,
		config.WidgetContextPercentage,
		config.WidgetContextPercentageUsable,
		config.WidgetSessionClock,
		config.WidgetTerminalWidth,
		config.WidgetVersion,
		config.WidgetSeparator,
		config.WidgetFlexSeparator,
		config.WidgetCustomText,
		config.WidgetCustomCommand,
	}
}

// labelled formats "<label>: <value>" unless the item asks for the raw value
func labelled(item config.WidgetItem, label, value string) string {
	if item.RawValue {
		return value
	}
	return label + ": " + value
}
