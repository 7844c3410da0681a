package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks a truncated line
const Ellipsis = "..."

// DefaultReserve is the number of visible columns kept free for the ellipsis
// plus a two column margin the host CLI's status box needs
const DefaultReserve = 5

const reset = "\x1b[0m"

// Truncate shortens a styled line to maxVisible columns using DefaultReserve
func Truncate(line string, maxVisible int) string {
	return TruncateWithReserve(line, maxVisible, DefaultReserve)
}

// TruncateWithReserve shortens a styled line so that its visible width fits in
// maxVisible columns. Lines that already fit are returned unchanged, and so is
// everything when maxVisible <= 0.
//
// Plain characters are copied while they fit in maxVisible-reserve columns.
// Escape sequences are always copied, also after the cut, so colour state
// stays well formed; a reset is appended when the line carried any sequence,
// followed by Ellipsis. The reserve never drops below the ellipsis width.
func TruncateWithReserve(line string, maxVisible, reserve int) string {
	if maxVisible <= 0 || Measure(line) <= maxVisible {
		return line
	}
	if reserve < len(Ellipsis) {
		reserve = len(Ellipsis)
	}
	limit := maxVisible - reserve
	if limit < 0 {
		limit = 0
	}

	var b strings.Builder
	b.Grow(len(line) + len(reset) + len(Ellipsis))

	visible := 0
	cut := false
	sawEscape := false
	var sc scanner
	sc.walk(line,
		func(r rune) bool {
			if cut {
				return true
			}
			w := runewidth.RuneWidth(r)
			if visible+w > limit {
				cut = true
				return true
			}
			b.WriteRune(r)
			visible += w
			return true
		},
		func(seq string) bool {
			sawEscape = true
			b.WriteString(seq)
			return true
		},
	)

	if sawEscape {
		b.WriteString(reset)
	}
	marker := Ellipsis
	if maxVisible < len(marker) {
		marker = marker[:maxVisible]
	}
	b.WriteString(marker)
	return b.String()
}

// Clip limits s to width visible columns, marking the cut with Ellipsis
// inside that width. Used for widget output with its own width cap.
func Clip(s string, width int) string {
	return TruncateWithReserve(s, width, len(Ellipsis))
}
