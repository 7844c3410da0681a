package layout

import (
	"strings"

	"github.com/young1lin/claude-statusline/internal/statusline/config"
	"github.com/young1lin/claude-statusline/internal/statusline/render"
	"github.com/young1lin/claude-statusline/internal/statusline/style"
	"github.com/young1lin/claude-statusline/internal/statusline/widget"
)

// Composer assembles single status lines. It holds no mutable state, so one
// composer may serve any number of render passes.
type Composer struct {
	settings *config.Settings
	painter  *style.Painter
}

// NewComposer creates a composer for the given settings and painter
func NewComposer(s *config.Settings, p *style.Painter) *Composer {
	return &Composer{settings: s, painter: p}
}

// ComposeLine renders items into one line. flexBudget is the width flex
// separators may fill; it is only used when ctx reports a detected terminal
// width. The result is not truncated.
func (c *Composer) ComposeLine(items config.Line, ctx *widget.Context, flexBudget int) string {
	elems := c.renderElements(items, ctx)
	if len(elems) == 0 {
		return ""
	}

	elems = c.insertDefaultSeparators(elems)

	if ctx.WidthDetectionAvailable && hasFlex(elems) {
		return joinFlex(elems, flexBudget)
	}

	var b strings.Builder
	for _, e := range elems {
		b.WriteString(e.text)
	}
	return b.String()
}

// renderElements renders, styles and pads every item, dropping items whose
// data is unavailable
func (c *Composer) renderElements(items config.Line, ctx *widget.Context) []element {
	elems := make([]element, 0, len(items))
	var prev *style.Style

	for _, item := range items {
		text, ok := widget.Render(item, ctx)
		if !ok {
			continue
		}

		switch {
		case item.Type == config.WidgetCustomCommand && item.PreserveColors:
			// the command's own styling passes through verbatim
			elems = append(elems, element{kind: kindContent, text: c.pad(text)})
			prev = nil

		case item.Type.IsSeparator():
			st := style.Resolve(item, c.settings, prev)
			kind := kindSeparator
			if item.Type == config.WidgetFlexSeparator {
				kind = kindFlex
			}
			elems = append(elems, element{kind: kind, text: c.painter.Paint(text, st), style: &st})
			prev = &st

		default:
			st := style.Resolve(item, c.settings, prev)
			text = c.pad(text)
			if c.painter.Styled(st) {
				text = c.painter.Paint(text, st)
			}
			elems = append(elems, element{kind: kindContent, text: text, style: &st})
			prev = &st
		}
	}
	return elems
}

func (c *Composer) pad(text string) string {
	p := c.settings.DefaultPadding
	if p == "" {
		return text
	}
	return p + text + p
}

// insertDefaultSeparators places the default separator between every pair of
// adjacent content elements. Explicit separators suppress it on both sides.
func (c *Composer) insertDefaultSeparators(elems []element) []element {
	sep := c.settings.DefaultSeparator
	if sep == "" || len(elems) < 2 {
		return elems
	}

	out := make([]element, 0, len(elems)*2-1)
	for i, e := range elems {
		if i > 0 && e.kind == kindContent && elems[i-1].kind == kindContent {
			st := style.ResolveDefaultSeparator(c.settings, elems[i-1].style)
			out = append(out, element{kind: kindSeparator, text: c.painter.Paint(sep, st), style: &st})
		}
		out = append(out, e)
	}
	return out
}

func hasFlex(elems []element) bool {
	for _, e := range elems {
		if e.kind == kindFlex {
			return true
		}
	}
	return false
}

// joinFlex splits elems into groups at flex separators and joins the groups
// with unstyled space runs that together fill budget
func joinFlex(elems []element, budget int) string {
	var groups []string
	var cur strings.Builder
	visible := 0
	for _, e := range elems {
		if e.kind == kindFlex {
			groups = append(groups, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteString(e.text)
		visible += render.Measure(e.text)
	}
	groups = append(groups, cur.String())

	gaps := Distribute(budget-visible, len(groups)-1)

	var b strings.Builder
	for i, g := range groups {
		b.WriteString(g)
		if i < len(gaps) {
			b.WriteString(render.Spaces(gaps[i]))
		}
	}
	return b.String()
}
