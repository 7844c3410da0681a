package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Painter wraps text in terminal style sequences for a fixed colour level.
// The level is pinned up front because the status line is written to a pipe,
// where automatic profile detection would always pick plain ASCII.
type Painter struct {
	renderer *lipgloss.Renderer
	profile  termenv.Profile
}

// ProfileForLevel maps a configured colour level to a termenv profile:
// 0 none, 1 basic 16 colours, 2 256 colours, 3 truecolor.
func ProfileForLevel(level int) termenv.Profile {
	switch {
	case level <= 0:
		return termenv.Ascii
	case level == 1:
		return termenv.ANSI
	case level == 2:
		return termenv.ANSI256
	default:
		return termenv.TrueColor
	}
}

// NewPainter returns a painter emitting sequences for colorLevel
func NewPainter(colorLevel int) *Painter {
	profile := ProfileForLevel(colorLevel)
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	r.SetHasDarkBackground(true)
	return &Painter{renderer: r, profile: profile}
}

// Profile returns the colour profile the painter renders for
func (p *Painter) Profile() termenv.Profile {
	return p.profile
}

// Paint applies st to text. Unknown colour names are skipped, so a style made
// only of unknown names leaves text untouched.
func (p *Painter) Paint(text string, st Style) string {
	if text == "" || st.IsZero() {
		return text
	}

	ls := p.renderer.NewStyle()
	styled := false
	if c, ok := parseColor(st.FG); ok {
		ls = ls.Foreground(c)
		styled = true
	}
	if c, ok := parseBackground(st.BG); ok {
		ls = ls.Background(c)
		styled = true
	}
	if st.Bold {
		ls = ls.Bold(true)
		styled = true
	}
	if !styled {
		return text
	}
	return ls.Render(text)
}

// Styled reports whether Paint would emit any sequence for st
func (p *Painter) Styled(st Style) bool {
	if p.profile == termenv.Ascii {
		return false
	}
	_, fg := parseColor(st.FG)
	_, bg := parseBackground(st.BG)
	return fg || bg || st.Bold
}
