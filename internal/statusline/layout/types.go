// Package layout composes rendered widgets into status lines: separator and
// padding insertion, flex space distribution and width enforcement.
package layout

import "github.com/young1lin/claude-statusline/internal/statusline/style"

// elementKind classifies a rendered element for separator placement
type elementKind int

const (
	kindContent elementKind = iota
	kindSeparator
	kindFlex
)

// element is one rendered and styled piece of a line
type element struct {
	kind  elementKind
	text  string       // final text, style sequences included
	style *style.Style // resolved style; nil when exempt from styling
}
