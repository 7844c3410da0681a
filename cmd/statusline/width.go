package main

import (
	"os"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// widthSource reports a terminal width, or false when it cannot tell
type widthSource func() (int, bool)

// detectWidth returns the forced width when set, otherwise the first width
// a source reports. The boolean is false when no source could tell.
func detectWidth(forced int, sources ...widthSource) (int, bool) {
	if forced > 0 {
		return forced, true
	}
	for _, src := range sources {
		if w, ok := src(); ok && w > 0 {
			return w, true
		}
	}
	return 0, false
}

// defaultWidthSources probes the controlling terminal first: under the host
// CLI stdout is a pipe, so its size says nothing
func defaultWidthSources(getenv func(string) string) []widthSource {
	return []widthSource{
		ttyWidth,
		fdWidth(int(os.Stderr.Fd())),
		envWidth(getenv),
	}
}

func ttyWidth() (int, bool) {
	name := "/dev/tty"
	if runtime.GOOS == "windows" {
		name = "CONOUT$"
	}
	f, err := os.OpenFile(name, os.O_RDWR, 0)
	if err != nil {
		return 0, false
	}
	defer f.Close()
	return fdWidth(int(f.Fd()))()
}

func fdWidth(fd int) widthSource {
	return func() (int, bool) {
		if !term.IsTerminal(fd) {
			return 0, false
		}
		w, _, err := term.GetSize(fd)
		if err != nil {
			return 0, false
		}
		return w, true
	}
}

func envWidth(getenv func(string) string) widthSource {
	return func() (int, bool) {
		w, err := strconv.Atoi(strings.TrimSpace(getenv("COLUMNS")))
		if err != nil || w <= 0 {
			return 0, false
		}
		return w, true
	}
}
