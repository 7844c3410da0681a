package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Align provides text alignment utilities
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Measure returns the display width of a string, ignoring escape sequences.
// This correctly handles emoji and wide characters (e.g., CJK)
func Measure(s string) int {
	return runewidth.StringWidth(Strip(s))
}

// Pad pads s with spaces to width according to align
func Pad(s string, width int, align Align) string {
	switch align {
	case AlignRight:
		return PadLeft(s, width)
	case AlignCenter:
		return PadCenter(s, width)
	default:
		return PadRight(s, width)
	}
}

// PadLeft adds padding to the left of a string
func PadLeft(s string, width int) string {
	currentWidth := Measure(s)
	if currentWidth >= width {
		return s
	}
	return Spaces(width-currentWidth) + s
}

// PadRight adds padding to the right of a string
func PadRight(s string, width int) string {
	currentWidth := Measure(s)
	if currentWidth >= width {
		return s
	}
	return s + Spaces(width-currentWidth)
}

// PadCenter centers a string within the given width
func PadCenter(s string, width int) string {
	currentWidth := Measure(s)
	if currentWidth >= width {
		return s
	}
	padding := width - currentWidth
	leftPadding := padding / 2
	rightPadding := padding - leftPadding
	return Spaces(leftPadding) + s + Spaces(rightPadding)
}

// Spaces returns a run of n spaces; n below 1 gives ""
func Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
