package widget

import (
	"strings"

	"github.com/young1lin/claude-statusline/internal/statusline/config"
	"github.com/young1lin/claude-statusline/internal/statusline/render"
)

// DefaultSeparatorGlyph is used by separators without a configured character
const DefaultSeparatorGlyph = "|"

// FlexFallback is what a flex separator shows when the terminal width is
// unknown
const FlexFallback = " | "

// NoCommand is shown by a custom-command item without a command
const NoCommand = "[No command]"

// SeparatorText renders a separator glyph: "," hugs the left element, a
// space stays a single space, anything else gets a space on both sides.
func SeparatorText(glyph string) string {
	switch glyph {
	case "":
		glyph = DefaultSeparatorGlyph
	case ",":
		return ", "
	case " ":
		return " "
	}
	return " " + glyph + " "
}

type separatorWidget struct{}

func (separatorWidget) Render(item config.WidgetItem, _ *Context) (string, bool) {
	return SeparatorText(item.Character), true
}

// flexSeparatorWidget renders the fallback; the composer replaces it with
// computed spacing when the terminal width is known
type flexSeparatorWidget struct{}

func (flexSeparatorWidget) Render(config.WidgetItem, *Context) (string, bool) {
	return FlexFallback, true
}

type customTextWidget struct{}

func (customTextWidget) Render(item config.WidgetItem, _ *Context) (string, bool) {
	if item.CustomText == "" {
		return "", false
	}
	return item.CustomText, true
}

type customCommandWidget struct{}

func (customCommandWidget) Render(item config.WidgetItem, ctx *Context) (string, bool) {
	if strings.TrimSpace(item.CommandPath) == "" {
		return clip(NoCommand, item.MaxWidth), true
	}

	out, ok := ctx.CommandOutput[item.ID]
	if !ok && ctx.IsPreview {
		out, ok = "[cmd: "+item.CommandPath+"]", true
	}
	out = firstLine(out)
	if !item.PreserveColors && render.HasEscape(out) {
		// the resolved style, overrides included, has to own every column
		out = render.Strip(out)
	}
	if !ok || render.Strip(out) == "" {
		return "", false
	}
	return clip(out, item.MaxWidth), true
}

func clip(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return s
	}
	return render.Clip(s, maxWidth)
}

// firstLine keeps the first line of command output without trailing blanks
func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimRight(s, " \t")
}
