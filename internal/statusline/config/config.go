// Package config provides the persisted status line settings: the configured
// lines of widgets plus the global style settings applied while rendering.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	appconfig "github.com/young1lin/claude-statusline/internal/config"
)

// MaxLines is the number of status lines a configuration can hold
const MaxLines = 3

// DefaultTruncateReserve is the number of visible columns kept free when a
// line is truncated: 3 for the ellipsis and 2 of slack for the host box.
const DefaultTruncateReserve = 5

// NoColor disables an override color
const NoColor = "none"

// FlexMode controls how much of the terminal width flex separators may fill
type FlexMode string

const (
	FlexFull             FlexMode = "full"
	FlexFullMinus40      FlexMode = "full-minus-40"
	FlexFullUntilCompact FlexMode = "full-until-compact"
)

// Valid reports whether m is a known flex mode
func (m FlexMode) Valid() bool {
	switch m {
	case FlexFull, FlexFullMinus40, FlexFullUntilCompact:
		return true
	}
	return false
}

// Next returns the flex mode after m, wrapping around
func (m FlexMode) Next() FlexMode {
	switch m {
	case FlexFull:
		return FlexFullMinus40
	case FlexFullMinus40:
		return FlexFullUntilCompact
	default:
		return FlexFull
	}
}

// Settings represents the status line configuration
type Settings struct {
	Lines                   []Line        `yaml:"lines" json:"lines" toml:"lines"`
	FlexMode                FlexMode      `yaml:"flexMode" json:"flexMode" toml:"flexMode"`
	CompactThreshold        int           `yaml:"compactThreshold" json:"compactThreshold" toml:"compactThreshold"`
	ColorLevel              int           `yaml:"colorLevel" json:"colorLevel" toml:"colorLevel"`
	DefaultSeparator        string        `yaml:"defaultSeparator" json:"defaultSeparator" toml:"defaultSeparator"`
	DefaultPadding          string        `yaml:"defaultPadding" json:"defaultPadding" toml:"defaultPadding"`
	InheritSeparatorColors  bool          `yaml:"inheritSeparatorColors" json:"inheritSeparatorColors" toml:"inheritSeparatorColors"`
	GlobalBold              bool          `yaml:"globalBold" json:"globalBold" toml:"globalBold"`
	OverrideForegroundColor string        `yaml:"overrideForegroundColor" json:"overrideForegroundColor" toml:"overrideForegroundColor"`
	OverrideBackgroundColor string        `yaml:"overrideBackgroundColor" json:"overrideBackgroundColor" toml:"overrideBackgroundColor"`
	TruncateReserve         int           `yaml:"truncateReserve" json:"truncateReserve" toml:"truncateReserve"`
	Display                 DisplayConfig `yaml:"display" json:"display" toml:"display"`
	UpdateNotice            bool          `yaml:"updateNotice" json:"updateNotice" toml:"updateNotice"`
}

// DisplayConfig controls what is displayed regardless of the configured lines
type DisplayConfig struct {
	SingleLine bool     `yaml:"singleLine" json:"singleLine" toml:"singleLine"`
	Hide       []string `yaml:"hide" json:"hide" toml:"hide"`
}

// settingsFileNames are tried in order inside a .claude directory
var settingsFileNames = []string{
	"statusline.yaml",
	"statusline.yml",
	"statusline.json",
	"statusline.toml",
}

// Load loads configuration from file with priority:
// 1. Project-level: <projectDir>/.claude/statusline.{yaml,yml,json,toml}
// 2. Global: the platform settings file
// 3. Default: built-in defaults
func Load(projectDir string) (*Settings, error) {
	if projectDir != "" {
		if path := findSettingsFile(filepath.Join(projectDir, ".claude")); path != "" {
			return LoadFile(path)
		}
	}

	if path := GlobalPath(); path != "" {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return LoadFile(path)
		}
	}

	return DefaultSettings(), nil
}

// GlobalPath returns the path of the user-wide settings file
func GlobalPath() string {
	dir := appconfig.SettingsDir()
	if dir == "" {
		return ""
	}
	if path := findSettingsFile(dir); path != "" {
		return path
	}
	return filepath.Join(dir, settingsFileNames[0])
}

func findSettingsFile(dir string) string {
	for _, name := range settingsFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// LoadFile loads configuration from a specific file. Keys missing from the
// file keep their default values.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	s := DefaultSettings()
	if isTOML(path) {
		if _, err := toml.Decode(string(data), s); err != nil {
			return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, s); err != nil {
		// JSON is decoded by the YAML parser as well
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	s.Normalize()
	return s, nil
}

// Save writes the settings to path, replacing any existing file atomically.
// The encoding follows the file extension.
func Save(path string, s *Settings) error {
	var buf bytes.Buffer
	if isTOML(path) {
		if err := toml.NewEncoder(&buf).Encode(s); err != nil {
			return fmt.Errorf("failed to encode settings: %w", err)
		}
	} else {
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("failed to encode settings: %w", err)
		}
		_ = enc.Close()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".statusline-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp settings file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace settings file: %w", err)
	}
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Lines: []Line{
			{
				{ID: "1", Type: WidgetModel, Color: "cyan"},
				{ID: "2", Type: WidgetSeparator},
				{ID: "3", Type: WidgetContextLength, Color: "brightBlack"},
				{ID: "4", Type: WidgetSeparator},
				{ID: "5", Type: WidgetGitBranch, Color: "magenta"},
				{ID: "6", Type: WidgetSeparator},
				{ID: "7", Type: WidgetGitChanges, Color: "yellow"},
			},
		},
		FlexMode:                FlexFullMinus40,
		CompactThreshold:        60,
		ColorLevel:              2,
		OverrideForegroundColor: NoColor,
		OverrideBackgroundColor: NoColor,
		TruncateReserve:         DefaultTruncateReserve,
		UpdateNotice:            true,
	}
}

// Normalize clamps out-of-range values and fills in missing item ids
func (s *Settings) Normalize() {
	if len(s.Lines) > MaxLines {
		s.Lines = s.Lines[:MaxLines]
	}
	if !s.FlexMode.Valid() {
		s.FlexMode = FlexFullMinus40
	}
	if s.CompactThreshold < 1 {
		s.CompactThreshold = 1
	} else if s.CompactThreshold > 99 {
		s.CompactThreshold = 99
	}
	if s.ColorLevel < 0 {
		s.ColorLevel = 0
	} else if s.ColorLevel > 3 {
		s.ColorLevel = 3
	}
	if s.TruncateReserve < 0 {
		s.TruncateReserve = DefaultTruncateReserve
	}
	if s.OverrideForegroundColor == "" {
		s.OverrideForegroundColor = NoColor
	}
	if s.OverrideBackgroundColor == "" {
		s.OverrideBackgroundColor = NoColor
	}
	for i := range s.Lines {
		for j := range s.Lines[i] {
			if s.Lines[i][j].ID == "" {
				s.Lines[i][j].ID = uuid.NewString()
			}
		}
	}
}

// ApplyEnv applies environment overrides on top of the file settings.
// getenv is normally os.Getenv.
func (s *Settings) ApplyEnv(getenv func(string) string) {
	if getenv("STATUSLINE_SINGLELINE") == "1" {
		s.Display.SingleLine = true
	}
	if mode := FlexMode(getenv("STATUSLINE_FLEX_MODE")); mode.Valid() {
		s.FlexMode = mode
	}
	if getenv("NO_COLOR") != "" {
		s.ColorLevel = 0
	}
}

// Hidden reports whether widgets of type t are suppressed by display.hide
func (s *Settings) Hidden(t WidgetType) bool {
	for _, h := range s.Display.Hide {
		if WidgetType(h) == t {
			return true
		}
	}
	return false
}

// IsSingleLine returns true if single-line mode is enabled
func (s *Settings) IsSingleLine() bool {
	return s.Display.SingleLine
}

// OverrideForeground returns the active foreground override, or "" when unset
func (s *Settings) OverrideForeground() string {
	return activeOverride(s.OverrideForegroundColor)
}

// OverrideBackground returns the active background override, or "" when unset
func (s *Settings) OverrideBackground() string {
	return activeOverride(s.OverrideBackgroundColor)
}

func activeOverride(c string) string {
	if c == "" || strings.EqualFold(c, NoColor) {
		return ""
	}
	return c
}

// Reserve returns the truncation reserve in visible columns
func (s *Settings) Reserve() int {
	if s.TruncateReserve < 0 {
		return DefaultTruncateReserve
	}
	return s.TruncateReserve
}

// Clone returns a deep copy so callers can tweak a render pass without
// touching the loaded configuration
func (s *Settings) Clone() *Settings {
	c := *s
	c.Lines = make([]Line, len(s.Lines))
	for i, line := range s.Lines {
		c.Lines[i] = append(Line(nil), line...)
	}
	c.Display.Hide = append([]string(nil), s.Display.Hide...)
	return &c
}
