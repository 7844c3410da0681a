package style

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// namedColors maps lower-cased colour names to ANSI indexes. lipgloss degrades
// them to whatever the active profile supports.
var namedColors = map[string]int{
	"black":         0,
	"red":           1,
	"green":         2,
	"yellow":        3,
	"blue":          4,
	"magenta":       5,
	"cyan":          6,
	"white":         7,
	"brightblack":   8,
	"gray":          8,
	"grey":          8,
	"brightred":     9,
	"brightgreen":   10,
	"brightyellow":  11,
	"brightblue":    12,
	"brightmagenta": 13,
	"brightcyan":    14,
	"brightwhite":   15,
}

// parseColor converts a configured colour name into a lipgloss colour.
// Accepted forms: a named colour ("brightBlue"), "hex:RRGGBB", "#RRGGBB" and
// "ansi256:N". Anything else is reported as unknown.
func parseColor(name string) (lipgloss.Color, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return "", false
	}

	if idx, ok := namedColors[n]; ok {
		return lipgloss.Color(strconv.Itoa(idx)), true
	}

	switch {
	case strings.HasPrefix(n, "hex:"):
		return parseHex(n[len("hex:"):])
	case strings.HasPrefix(n, "#"):
		return parseHex(n[1:])
	case strings.HasPrefix(n, "ansi256:"):
		idx, err := strconv.Atoi(n[len("ansi256:"):])
		if err != nil || idx < 0 || idx > 255 {
			return "", false
		}
		return lipgloss.Color(strconv.Itoa(idx)), true
	}
	return "", false
}

// parseBackground also accepts the "bgRed" spelling used for background names
func parseBackground(name string) (lipgloss.Color, bool) {
	if c, ok := parseColor(name); ok {
		return c, true
	}
	n := strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(n, "bg") {
		return parseColor(n[2:])
	}
	return "", false
}

func parseHex(h string) (lipgloss.Color, bool) {
	if len(h) != 6 {
		return "", false
	}
	if _, err := strconv.ParseUint(h, 16, 32); err != nil {
		return "", false
	}
	return lipgloss.Color("#" + h), true
}

// Known reports whether name is a foreground colour Paint can apply
func Known(name string) bool {
	_, ok := parseColor(name)
	return ok
}

// KnownBackground reports whether name is a background colour Paint can apply
func KnownBackground(name string) bool {
	_, ok := parseBackground(name)
	return ok
}
