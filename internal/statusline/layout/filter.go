package layout

import "github.com/young1lin/claude-statusline/internal/statusline/config"

// FilterLine drops items whose type is listed in display.hide. The input line
// is left untouched.
func FilterLine(line config.Line, s *config.Settings) config.Line {
	if len(s.Display.Hide) == 0 {
		return line
	}

	filtered := make(config.Line, 0, len(line))
	for _, item := range line {
		if s.Hidden(item.Type) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}
