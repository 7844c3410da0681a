package config

// WidgetType names a kind of status line widget
type WidgetType string

const (
	WidgetModel                   WidgetType = "model"
	WidgetGitBranch               WidgetType = "git-branch"
	WidgetGitChanges              WidgetType = "git-changes"
	WidgetTokensInput             WidgetType = "tokens-input"
	WidgetTokensOutput            WidgetType = "tokens-output"
	WidgetTokensCached            WidgetType = "tokens-cached"
	WidgetTokensTotal             WidgetType = "tokens-total"
	WidgetContextLength           WidgetType = "context-length"
	WidgetContextPercentage       WidgetType = "context-percentage"
	WidgetContextPercentageUsable WidgetType = "context-percentage-usable"
	WidgetSessionClock            WidgetType = "session-clock"
	WidgetTerminalWidth           WidgetType = "terminal-width"
	WidgetVersion                 WidgetType = "version"
	WidgetSeparator               WidgetType = "separator"
	WidgetFlexSeparator           WidgetType = "flex-separator"
	WidgetCustomText              WidgetType = "custom-text"
	WidgetCustomCommand           WidgetType = "custom-command"
)

// IsSeparator reports whether t is a static or flex separator
func (t WidgetType) IsSeparator() bool {
	return t == WidgetSeparator || t == WidgetFlexSeparator
}

// WidgetItem is one configured element of a status line. Which of the
// optional fields matter depends on Type; the rest are ignored.
type WidgetItem struct {
	ID              string     `yaml:"id" json:"id" toml:"id"`
	Type            WidgetType `yaml:"type" json:"type" toml:"type"`
	RawValue        bool       `yaml:"rawValue,omitempty" json:"rawValue,omitempty" toml:"rawValue,omitempty"`
	Color           string     `yaml:"color,omitempty" json:"color,omitempty" toml:"color,omitempty"`
	BackgroundColor string     `yaml:"backgroundColor,omitempty" json:"backgroundColor,omitempty" toml:"backgroundColor,omitempty"`
	Bold            bool       `yaml:"bold,omitempty" json:"bold,omitempty" toml:"bold,omitempty"`

	// separator
	Character string `yaml:"character,omitempty" json:"character,omitempty" toml:"character,omitempty"`

	// custom-text
	CustomText string `yaml:"customText,omitempty" json:"customText,omitempty" toml:"customText,omitempty"`

	// custom-command
	CommandPath    string `yaml:"commandPath,omitempty" json:"commandPath,omitempty" toml:"commandPath,omitempty"`
	MaxWidth       int    `yaml:"maxWidth,omitempty" json:"maxWidth,omitempty" toml:"maxWidth,omitempty"`
	TimeoutMs      int    `yaml:"timeout,omitempty" json:"timeout,omitempty" toml:"timeout,omitempty"`
	PreserveColors bool   `yaml:"preserveColors,omitempty" json:"preserveColors,omitempty" toml:"preserveColors,omitempty"`
}

// Line is an ordered sequence of widgets, rendered left to right
type Line []WidgetItem

// CommandItems returns every custom-command item across all lines
func (s *Settings) CommandItems() []WidgetItem {
	var items []WidgetItem
	for _, line := range s.Lines {
		for _, item := range line {
			if item.Type == WidgetCustomCommand && item.CommandPath != "" {
				items = append(items, item)
			}
		}
	}
	return items
}

// Uses reports whether any line contains a widget of one of the given types
func (s *Settings) Uses(types ...WidgetType) bool {
	for _, line := range s.Lines {
		for _, item := range line {
			for _, t := range types {
				if item.Type == t && !s.Hidden(t) {
					return true
				}
			}
		}
	}
	return false
}
