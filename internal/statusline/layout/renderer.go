package layout

import (
	"strings"

	"github.com/young1lin/claude-statusline/internal/statusline/config"
	"github.com/young1lin/claude-statusline/internal/statusline/render"
	"github.com/young1lin/claude-statusline/internal/statusline/style"
	"github.com/young1lin/claude-statusline/internal/statusline/widget"
)

// singleLineJoin joins the configured lines in single-line mode
const singleLineJoin = " | "

// Renderer renders every configured line of a settings value
type Renderer struct {
	settings *config.Settings
	composer *Composer
}

// NewRenderer creates a renderer painting at the settings' colour level
func NewRenderer(s *config.Settings) *Renderer {
	return NewRendererWithPainter(s, style.NewPainter(s.ColorLevel))
}

// NewRendererWithPainter creates a renderer with an explicit painter
func NewRendererWithPainter(s *config.Settings, p *style.Painter) *Renderer {
	return &Renderer{settings: s, composer: NewComposer(s, p)}
}

// Render renders the configured lines to output lines. Lines without visible
// content are skipped. When the terminal width is known every line is
// truncated to it.
func (r *Renderer) Render(ctx *widget.Context) []string {
	lines := r.compose(ctx)
	if r.settings.IsSingleLine() && len(lines) > 1 {
		lines = []string{strings.Join(lines, singleLineJoin)}
	}

	for i, line := range lines {
		lines[i] = r.truncate(line, ctx)
	}
	return lines
}

// FlexBudget returns the flex width used for ctx
func (r *Renderer) FlexBudget(ctx *widget.Context) int {
	if !ctx.WidthDetectionAvailable {
		return 0
	}
	return FlexBudget(r.settings.FlexMode, ctx.TerminalWidth, ctx.ContextUsage(), r.settings.CompactThreshold, ctx.IsPreview)
}

func (r *Renderer) compose(ctx *widget.Context) []string {
	budget := r.FlexBudget(ctx)

	lines := make([]string, 0, len(r.settings.Lines))
	for _, items := range r.settings.Lines {
		line := r.composer.ComposeLine(FilterLine(items, r.settings), ctx, budget)
		if strings.TrimSpace(render.Strip(line)) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func (r *Renderer) truncate(line string, ctx *widget.Context) string {
	if !ctx.WidthDetectionAvailable {
		return line
	}
	return render.TruncateWithReserve(line, ctx.TerminalWidth, r.settings.Reserve())
}
