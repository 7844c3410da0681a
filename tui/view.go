package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/claude-statusline/internal/statusline/layout"
	"github.com/young1lin/claude-statusline/internal/statusline/render"
	"github.com/young1lin/claude-statusline/internal/statusline/style"
)

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return m.styles.Muted.Render("Detecting terminal size...")
	}

	sections := []string{
		m.renderHeader(),
		m.renderRuler(),
		m.renderStatusLines(),
	}
	for _, w := range m.ColorWarnings() {
		sections = append(sections, m.styles.Warning.Render("! "+w))
	}
	if m.err != nil {
		sections = append(sections, m.styles.Error.Render("Error: "+m.err.Error()))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// StatusLines renders the configured lines exactly as the status line
// command would for the current width and data source
func (m Model) StatusLines() []string {
	s := m.settings.Clone()
	s.FlexMode = m.flexMode
	return layout.NewRenderer(s).Render(m.renderContext())
}

func (m Model) renderHeader() string {
	title := m.styles.Title.Render("Status line preview")

	width := fmt.Sprintf("width %d", m.Width())
	if m.simWidth > 0 {
		width += " (simulated)"
	}

	data := "sample data"
	if m.live {
		data = "live data"
		if m.sessionID != "" {
			id := m.sessionID
			if len(id) > 8 {
				id = id[:8]
			}
			data += " · session " + id
		}
	}

	info := strings.Join([]string{"flex " + string(m.flexMode), width, data}, " · ")
	header := lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", m.styles.Subtitle.Render(info))
	return render.Truncate(header, m.termWidth)
}

// renderRuler marks every tenth column up to the rendered width, with the
// column number above each mark
func (m Model) renderRuler() string {
	w := m.Width()
	if w <= 0 {
		return ""
	}
	var numbers, ticks strings.Builder
	for i := 10; i <= w; i += 10 {
		numbers.WriteString(render.Pad(strconv.Itoa(i), 10, render.AlignRight))
	}
	for i := 1; i <= w; i++ {
		if i%10 == 0 {
			ticks.WriteByte('|')
		} else {
			ticks.WriteByte('.')
		}
	}
	return m.styles.Ruler.Render(numbers.String() + "\n" + ticks.String())
}

// ColorWarnings lists configured colours the painter does not recognise.
// Such colours are skipped when rendering.
func (m Model) ColorWarnings() []string {
	var warnings []string
	check := func(id, field, value string, known func(string) bool) {
		if value == "" || strings.EqualFold(value, "none") || strings.EqualFold(value, "dim") || known(value) {
			return
		}
		warnings = append(warnings, fmt.Sprintf("item %s: unknown %s %q", id, field, value))
	}
	for _, line := range m.settings.Lines {
		for _, item := range line {
			check(item.ID, "color", item.Color, style.Known)
			check(item.ID, "backgroundColor", item.BackgroundColor, style.KnownBackground)
		}
	}
	check("override", "foreground", m.settings.OverrideForeground(), style.Known)
	check("override", "background", m.settings.OverrideBackground(), style.KnownBackground)
	return warnings
}

func (m Model) renderStatusLines() string {
	lines := m.StatusLines()
	if len(lines) == 0 {
		return m.styles.Frame.Render(m.styles.Muted.Render("(nothing to render)"))
	}
	return m.styles.Frame.Render(strings.Join(lines, "\n"))
}
