// Package style resolves the colours and weight applied to each rendered
// status line element and paints text with them.
package style

import (
	"strings"

	"github.com/young1lin/claude-statusline/internal/statusline/config"
)

// Style is the resolved look of one element. Empty colours mean the terminal
// default.
type Style struct {
	FG   string
	BG   string
	Bold bool
}

// IsZero reports whether s applies no styling at all
func (s Style) IsZero() bool {
	return s.FG == "" && s.BG == "" && !s.Bold
}

// dim renders as near-invisible in the host CLI's status box, so it is never
// honoured as a foreground
const dim = "dim"

var typeDefaults = map[config.WidgetType]string{
	config.WidgetModel:                   "cyan",
	config.WidgetGitBranch:               "magenta",
	config.WidgetGitChanges:              "yellow",
	config.WidgetTokensInput:             "blue",
	config.WidgetTokensOutput:            "white",
	config.WidgetTokensCached:            "cyan",
	config.WidgetTokensTotal:             "cyan",
	config.WidgetContextLength:           "brightBlack",
	config.WidgetContextPercentage:       "blue",
	config.WidgetContextPercentageUsable: "green",
	config.WidgetSessionClock:            "yellow",
	config.WidgetTerminalWidth:           "gray",
	config.WidgetVersion:                 "gray",
	config.WidgetSeparator:               "gray",
	config.WidgetFlexSeparator:           "gray",
	config.WidgetCustomText:              "white",
	config.WidgetCustomCommand:           "white",
}

// DefaultColor returns the documented foreground of a widget type, or "" for
// types without one
func DefaultColor(t config.WidgetType) string {
	return typeDefaults[t]
}

// Resolve computes the style of item.
//
// Precedence, highest first: the global override colours (unless "none"),
// the item's own colours, the type default. With inheritSeparatorColors set,
// a separator takes its colours from prev, the resolved style of the element
// rendered just before it; prev may be nil.
func Resolve(item config.WidgetItem, s *config.Settings, prev *Style) Style {
	fg, bg := item.Color, item.BackgroundColor
	if item.Type.IsSeparator() && s.InheritSeparatorColors && prev != nil {
		fg, bg = prev.FG, prev.BG
	}

	if fg == "" || strings.EqualFold(fg, dim) {
		fg = DefaultColor(item.Type)
	}

	if o := s.OverrideForeground(); o != "" {
		fg = o
	}
	if o := s.OverrideBackground(); o != "" {
		bg = o
	}

	return Style{
		FG:   fg,
		BG:   bg,
		Bold: s.GlobalBold || item.Bold,
	}
}

// ResolveDefaultSeparator styles the separator inserted between adjacent
// elements. It has no colour of its own: with inheritSeparatorColors it
// follows prev, and the global overrides apply either way.
func ResolveDefaultSeparator(s *config.Settings, prev *Style) Style {
	var st Style
	if s.InheritSeparatorColors && prev != nil {
		st.FG, st.BG = prev.FG, prev.BG
	}
	if o := s.OverrideForeground(); o != "" {
		st.FG = o
	}
	if o := s.OverrideBackground(); o != "" {
		st.BG = o
	}
	st.Bold = s.GlobalBold
	return st
}
