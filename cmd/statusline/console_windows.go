//go:build windows

package main

import (
	"os"

	"golang.org/x/sys/windows"
)

const cpUTF8 = 65001

var (
	kernel32               = windows.NewLazySystemDLL("kernel32.dll")
	procSetConsoleOutputCP = kernel32.NewProc("SetConsoleOutputCP")
)

// initConsole switches the console to UTF-8 and enables ANSI escape
// processing so glyphs and colours render
func initConsole() {
	_, _, _ = procSetConsoleOutputCP.Call(cpUTF8)

	handle := windows.Handle(os.Stdout.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		// stdout is a pipe under the host CLI
		return
	}
	_ = windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}
