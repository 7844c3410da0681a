// Command preview shows the configured status line live while its settings
// file is edited.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	appconfig "github.com/young1lin/claude-statusline/internal/config"
	"github.com/young1lin/claude-statusline/internal/monitor"
	"github.com/young1lin/claude-statusline/internal/statusline/config"
	"github.com/young1lin/claude-statusline/internal/statusline/content"
)

// exitFunc is the function to call for exiting (can be mocked for testing)
var exitFunc = os.Exit

func main() {
	configPath := flag.String("config", "", "settings file to preview (default: the user settings file)")
	flag.Parse()

	path := *configPath
	if path == "" {
		path = config.GlobalPath()
	}

	logger, closeLog := newLogger(os.Getenv)
	defer closeLog()

	err := run(&AppDependencies{
		SettingsPath:  path,
		ProjectsDir:   appconfig.ProjectsDir(),
		SessionFinder: monitor.FindCurrentSession,
		WatcherCreator: func(paths ...string) (monitor.WatcherInterface, error) {
			return monitor.NewWatcher(paths...)
		},
		ProgramRunner: func(p *tea.Program) error {
			_, err := p.Run()
			return err
		},
		Runner: content.ExecRunner{},
		Getwd:  os.Getwd,
		Getenv: os.Getenv,
		Logger: logger,
	})
	logAndExit(err)
}

// newLogger logs to a file in the cache directory when STATUSLINE_DEBUG=1;
// the terminal belongs to the preview
func newLogger(getenv func(string) string) (*slog.Logger, func()) {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	if getenv("STATUSLINE_DEBUG") != "1" {
		return discard, func() {}
	}
	dir := appconfig.UserCacheDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return discard, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "preview.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return discard, func() {}
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), func() { f.Close() }
}

func logAndExit(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		exitFunc(1)
	}
}
