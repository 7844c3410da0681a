package widget

import (
	"fmt"
	"strconv"

	appconfig "github.com/young1lin/claude-statusline/internal/config"
	"github.com/young1lin/claude-statusline/internal/statusline/config"
	"github.com/young1lin/claude-statusline/internal/statusline/render"
)

type modelWidget struct{}

func (modelWidget) Render(item config.WidgetItem, ctx *Context) (string, bool) {
	name := ctx.Model
	if ctx.IsPreview && name == "" {
		name = sampleModel
	}
	if name == "" {
		return "", false
	}
	return labelled(item, "Model", name), true
}

type gitBranchWidget struct{}

func (gitBranchWidget) Render(item config.WidgetItem, ctx *Context) (string, bool) {
	git := ctx.Git
	if git == nil && ctx.IsPreview {
		git = &sampleGit
	}
	if git == nil || git.Branch == "" {
		return "", false
	}
	if item.RawValue {
		return git.Branch, true
	}
	return "⎇ " + git.Branch, true
}

type gitChangesWidget struct{}

func (gitChangesWidget) Render(_ config.WidgetItem, ctx *Context) (string, bool) {
	git := ctx.Git
	if git == nil && ctx.IsPreview {
		git = &sampleGit
	}
	if git == nil {
		return "", false
	}
	return fmt.Sprintf("(+%d,-%d)", git.Insertions, git.Deletions), true
}

// tokens returns the metrics to show, falling back to samples in preview
func tokens(ctx *Context) *TokenMetrics {
	if ctx.Tokens != nil {
		return ctx.Tokens
	}
	if ctx.IsPreview {
		return &sampleTokens
	}
	return nil
}

type tokenWidget struct {
	label string
	value func(*TokenMetrics) int
}

func (w tokenWidget) Render(item config.WidgetItem, ctx *Context) (string, bool) {
	m := tokens(ctx)
	if m == nil {
		return "", false
	}
	return labelled(item, w.label, render.FormatTokens(w.value(m))), true
}

// contextPercentWidget shows the context length as a share of ratio times the
// model's context window
type contextPercentWidget struct {
	label string
	ratio float64
}

func (w contextPercentWidget) Render(item config.WidgetItem, ctx *Context) (string, bool) {
	m := tokens(ctx)
	if m == nil {
		return "", false
	}
	return labelled(item, w.label, render.FormatPercent(ContextPercent(m.ContextLength, ctx.ContextWindow, w.ratio))), true
}

// ContextPercent returns used as a percentage of ratio*window, capped at 100.
// A window of 0 means the default window.
func ContextPercent(used, window int, ratio float64) float64 {
	if window <= 0 {
		window = appconfig.DefaultContextWindow
	}
	budget := float64(window) * ratio
	if budget <= 0 {
		return 0
	}
	pct := float64(used) / budget * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

type sessionClockWidget struct{}

func (sessionClockWidget) Render(item config.WidgetItem, ctx *Context) (string, bool) {
	d, ok := ctx.SessionDuration, ctx.HasSession
	if !ok && ctx.IsPreview {
		d, ok = sampleSession, true
	}
	if !ok {
		return "", false
	}
	return labelled(item, "Session", render.FormatDuration(d)), true
}

type terminalWidthWidget struct{}

func (terminalWidthWidget) Render(item config.WidgetItem, ctx *Context) (string, bool) {
	width := 0
	switch {
	case ctx.WidthDetectionAvailable && ctx.TerminalWidth > 0:
		width = ctx.TerminalWidth
	case ctx.IsPreview:
		width = sampleWidth
	default:
		return "", false
	}
	return labelled(item, "Term", strconv.Itoa(width)), true
}

type versionWidget struct{}

func (versionWidget) Render(item config.WidgetItem, ctx *Context) (string, bool) {
	v := ctx.Version
	if v == "" && ctx.IsPreview {
		v = sampleVersion
	}
	if v == "" {
		return "", false
	}
	return labelled(item, "Version", v), true
}

// ContextUsage returns the context length as a percentage of the full model
// window, or 0 without token metrics
func (c *Context) ContextUsage() float64 {
	m := tokens(c)
	if m == nil {
		return 0
	}
	return ContextPercent(m.ContextLength, c.ContextWindow, 1)
}
