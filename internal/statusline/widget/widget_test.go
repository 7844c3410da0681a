package widget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/young1lin/claude-statusline/internal/statusline/config"
)

func liveContext() *Context {
	return &Context{
		Model:           "Opus 4.5",
		ContextWindow:   200000,
		Tokens:          &TokenMetrics{ContextLength: 50000, InputTokens: 15200, OutputTokens: 800, CachedTokens: 1500000, TotalTokens: 1516000},
		Git:             &GitStatus{Branch: "feature/x", Insertions: 3, Deletions: 1},
		SessionDuration: 45 * time.Minute,
		HasSession:      true,
		Version:         "1.0.80",
		TerminalWidth:   140,
		CommandOutput:   map[string]string{"cmd": "hello world\nsecond line"},

		WidthDetectionAvailable: true,
	}
}

func TestRenderLabels(t *testing.T) {
	tests := []struct {
		typ     config.WidgetType
		want    string
		wantRaw string
	}{
		{config.WidgetModel, "Model: Opus 4.5", "Opus 4.5"},
		{config.WidgetGitBranch, "⎇ feature/x", "feature/x"},
		{config.WidgetGitChanges, "(+3,-1)", "(+3,-1)"},
		{config.WidgetTokensInput, "In: 15.2k", "15.2k"},
		{config.WidgetTokensOutput, "Out: 800", "800"},
		{config.WidgetTokensCached, "Cached: 1.5M", "1.5M"},
		{config.WidgetTokensTotal, "Total: 1.5M", "1.5M"},
		{config.WidgetContextLength, "Ctx: 50.0k", "50.0k"},
		{config.WidgetContextPercentage, "Ctx: 25.0%", "25.0%"},
		{config.WidgetContextPercentageUsable, "Ctx(u): 31.2%", "31.2%"},
		{config.WidgetSessionClock, "Session: 45m", "45m"},
		{config.WidgetTerminalWidth, "Term: 140", "140"},
		{config.WidgetVersion, "Version: 1.0.80", "1.0.80"},
	}

	ctx := liveContext()
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			got, ok := Render(config.WidgetItem{Type: tt.typ}, ctx)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)

			got, ok = Render(config.WidgetItem{Type: tt.typ, RawValue: true}, ctx)
			require.True(t, ok)
			assert.Equal(t, tt.wantRaw, got)
		})
	}
}

func TestRenderUnavailableData(t *testing.T) {
	empty := &Context{}
	for _, typ := range []config.WidgetType{
		config.WidgetModel,
		config.WidgetGitBranch,
		config.WidgetGitChanges,
		config.WidgetTokensInput,
		config.WidgetTokensOutput,
		config.WidgetTokensCached,
		config.WidgetTokensTotal,
		config.WidgetContextLength,
		config.WidgetContextPercentage,
		config.WidgetContextPercentageUsable,
		config.WidgetSessionClock,
		config.WidgetTerminalWidth,
		config.WidgetVersion,
		config.WidgetCustomText,
	} {
		t.Run(string(typ), func(t *testing.T) {
			got, ok := Render(config.WidgetItem{Type: typ}, empty)
			assert.False(t, ok)
			assert.Empty(t, got)
		})
	}
}

func TestRenderPreviewSamples(t *testing.T) {
	ctx := SampleContext(0)
	for _, typ := range Types() {
		t.Run(string(typ), func(t *testing.T) {
			item := config.WidgetItem{ID: "x", Type: typ, CustomText: "hi", CommandPath: "date"}
			got, ok := Render(item, ctx)
			assert.True(t, ok)
			assert.NotEmpty(t, got)
		})
	}

	got, _ := Render(config.WidgetItem{Type: config.WidgetTokensInput}, ctx)
	assert.Equal(t, "In: 15.2k", got)
	got, _ = Render(config.WidgetItem{Type: config.WidgetSessionClock}, ctx)
	assert.Equal(t, "Session: 2hr 15m", got)
	got, _ = Render(config.WidgetItem{Type: config.WidgetTerminalWidth}, ctx)
	assert.Equal(t, "Term: 120", got)
	got, _ = Render(config.WidgetItem{Type: config.WidgetTerminalWidth}, SampleContext(90))
	assert.Equal(t, "Term: 90", got)
}

func TestSeparatorText(t *testing.T) {
	tests := []struct {
		glyph string
		want  string
	}{
		{",", ", "},
		{" ", " "},
		{"|", " | "},
		{"•", " • "},
		{"", " | "},
	}
	for _, tt := range tests {
		got, ok := Render(config.WidgetItem{Type: config.WidgetSeparator, Character: tt.glyph}, &Context{})
		assert.True(t, ok)
		assert.Equal(t, tt.want, got, "glyph %q", tt.glyph)
	}
}

func TestFlexSeparatorFallback(t *testing.T) {
	got, ok := Render(config.WidgetItem{Type: config.WidgetFlexSeparator, RawValue: false}, &Context{})
	assert.True(t, ok)
	assert.Equal(t, FlexFallback, got)
}

func TestCustomText(t *testing.T) {
	got, ok := Render(config.WidgetItem{Type: config.WidgetCustomText, CustomText: "hi there", RawValue: false}, &Context{})
	assert.True(t, ok)
	assert.Equal(t, "hi there", got, "custom text never carries a label")
}

func TestCustomCommand(t *testing.T) {
	ctx := liveContext()

	got, ok := Render(config.WidgetItem{ID: "cmd", Type: config.WidgetCustomCommand, CommandPath: "echo"}, ctx)
	assert.True(t, ok)
	assert.Equal(t, "hello world", got)

	got, ok = Render(config.WidgetItem{ID: "cmd", Type: config.WidgetCustomCommand, CommandPath: "echo", MaxWidth: 8}, ctx)
	assert.True(t, ok)
	assert.Equal(t, "hello...", got)

	got, ok = Render(config.WidgetItem{ID: "none", Type: config.WidgetCustomCommand}, ctx)
	assert.True(t, ok)
	assert.Equal(t, NoCommand, got)

	_, ok = Render(config.WidgetItem{ID: "missing", Type: config.WidgetCustomCommand, CommandPath: "false"}, ctx)
	assert.False(t, ok, "no captured output drops the widget")

	ctx.CommandOutput["blank"] = "  \n"
	_, ok = Render(config.WidgetItem{ID: "blank", Type: config.WidgetCustomCommand, CommandPath: "true"}, ctx)
	assert.False(t, ok)

	ctx.CommandOutput["failed"] = ""
	got, ok = Render(config.WidgetItem{ID: "failed", Type: config.WidgetCustomCommand, CommandPath: "exit 1"}, ctx)
	assert.False(t, ok, "a failed command drops the widget")
	assert.NotEqual(t, NoCommand, got)

	ctx.CommandOutput["ansi"] = "\x1b[31mred\x1b[0m"
	got, ok = Render(config.WidgetItem{ID: "ansi", Type: config.WidgetCustomCommand, CommandPath: "x", PreserveColors: true}, ctx)
	assert.True(t, ok)
	assert.Equal(t, "\x1b[31mred\x1b[0m", got)

	got, ok = Render(config.WidgetItem{ID: "ansi", Type: config.WidgetCustomCommand, CommandPath: "x"}, ctx)
	assert.True(t, ok)
	assert.Equal(t, "red", got, "own colours are dropped unless preserved")
}

func TestUnknownType(t *testing.T) {
	_, ok := Render(config.WidgetItem{Type: "sparkles"}, liveContext())
	assert.False(t, ok)

	_, found := Lookup("sparkles")
	assert.False(t, found)
}

func TestContextPercent(t *testing.T) {
	assert.InDelta(t, 25.0, ContextPercent(50000, 200000, 1), 0.001)
	assert.InDelta(t, 25.0, ContextPercent(50000, 0, 1), 0.001)
	assert.InDelta(t, 100.0, ContextPercent(500000, 200000, 1), 0.001)
	assert.InDelta(t, 5.0, ContextPercent(50000, 1000000, 1), 0.001)
}
