package layout

import "github.com/young1lin/claude-statusline/internal/statusline/config"

// Columns kept free of flex space. The host CLI draws the status line inside a
// box with its own border and margin, and the preview adds a frame of its own.
const (
	liveMargin     = 4
	previewMargin  = 6
	compactReserve = 37
)

// FlexBudget returns the width flex separators may fill for a terminal of
// width columns. contextPct is the context usage, consulted only by
// full-until-compact. The result is never negative.
func FlexBudget(mode config.FlexMode, width int, contextPct float64, threshold int, preview bool) int {
	margin := liveMargin
	if preview {
		margin = previewMargin
	}

	budget := width - margin
	switch mode {
	case config.FlexFullMinus40:
		budget -= compactReserve
	case config.FlexFullUntilCompact:
		if contextPct >= float64(threshold) {
			budget -= compactReserve
		}
	}

	if budget < 0 {
		return 0
	}
	return budget
}

// Distribute splits total columns across n gaps. Every gap gets total/n and
// the remainder goes one column at a time to the earliest gaps.
func Distribute(total, n int) []int {
	if n <= 0 {
		return nil
	}
	if total < 0 {
		total = 0
	}

	gaps := make([]int, n)
	base, extra := total/n, total%n
	for i := range gaps {
		gaps[i] = base
		if i < extra {
			gaps[i]++
		}
	}
	return gaps
}
