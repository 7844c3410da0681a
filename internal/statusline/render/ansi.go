package render

import "strings"

const (
	esc = 0x1b
	bel = 0x07
)

type scanState int

const (
	stateText scanState = iota
	stateEsc            // saw ESC, waiting for the introducer
	stateCSI            // ESC [ ... final byte 0x40-0x7E
	stateOSC            // ESC ] ... BEL or ESC \
	stateOSCEsc         // ESC seen inside an OSC string
)

// scanner walks a styled string and separates complete escape sequences
// from visible runes. Sequences are buffered until their terminator arrives,
// so an unterminated sequence at the end of the input is never emitted.
type scanner struct {
	state scanState
	seq   strings.Builder
}

// walk calls text for every visible rune and seq for every complete escape
// sequence, in input order. Returning false from either callback stops the
// walk early.
func (sc *scanner) walk(s string, text func(r rune) bool, seq func(s string) bool) {
	sc.state = stateText
	sc.seq.Reset()

	for _, r := range s {
		switch sc.state {
		case stateText:
			if r == esc {
				sc.seq.WriteRune(r)
				sc.state = stateEsc
				continue
			}
			if !text(r) {
				return
			}

		case stateEsc:
			sc.seq.WriteRune(r)
			switch {
			case r == '[':
				sc.state = stateCSI
			case r == ']':
				sc.state = stateOSC
			case r >= 0x20 && r <= 0x2f:
				// intermediate byte, e.g. ESC ( B
			default:
				if !sc.flush(seq) {
					return
				}
			}

		case stateCSI:
			sc.seq.WriteRune(r)
			if r >= 0x40 && r <= 0x7e {
				if !sc.flush(seq) {
					return
				}
			}

		case stateOSC:
			sc.seq.WriteRune(r)
			if r == bel {
				if !sc.flush(seq) {
					return
				}
			} else if r == esc {
				sc.state = stateOSCEsc
			}

		case stateOSCEsc:
			sc.seq.WriteRune(r)
			if r == '\\' {
				if !sc.flush(seq) {
					return
				}
			} else {
				sc.state = stateOSC
			}
		}
	}
}

func (sc *scanner) flush(seq func(s string) bool) bool {
	s := sc.seq.String()
	sc.seq.Reset()
	sc.state = stateText
	return seq(s)
}

// Strip removes every escape sequence from s, leaving only visible text
func Strip(s string) string {
	if strings.IndexByte(s, esc) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	var sc scanner
	sc.walk(s,
		func(r rune) bool { b.WriteRune(r); return true },
		func(string) bool { return true },
	)
	return b.String()
}

// HasEscape reports whether s contains at least one escape introducer
func HasEscape(s string) bool {
	return strings.IndexByte(s, esc) >= 0
}
