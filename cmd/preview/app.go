package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/claude-statusline/internal/monitor"
	"github.com/young1lin/claude-statusline/internal/statusline/config"
	"github.com/young1lin/claude-statusline/internal/statusline/content"
	"github.com/young1lin/claude-statusline/internal/statusline/widget"
	"github.com/young1lin/claude-statusline/tui"
)

// sessionCollectTimeout bounds live data collection. The preview is not on
// the host CLI's refresh path, so slow git or custom commands get more room.
const sessionCollectTimeout = 5 * time.Second

// ProgramSender is an interface for sending messages to a Bubbletea program
type ProgramSender interface {
	Send(msg tea.Msg)
}

// AppDependencies contains the dependencies for the preview application
type AppDependencies struct {
	SettingsPath   string
	ProjectsDir    string
	SessionFinder  func(projectsDir string) (*monitor.SessionInfo, error)
	WatcherCreator func(paths ...string) (monitor.WatcherInterface, error)
	ProgramRunner  func(*tea.Program) error
	Runner         content.Runner
	Getwd          func() (string, error)
	Getenv         func(string) string
	Logger         *slog.Logger
}

func run(deps *AppDependencies) error {
	if deps.SettingsPath == "" {
		return errors.New("no settings path: set -config or CLAUDE_STATUSLINE_CONFIG_DIR")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	loadSettings := func() (*config.Settings, error) {
		return loadSettingsFile(deps.SettingsPath, deps.Getenv)
	}
	settings, settingsErr := loadSettings()
	if settingsErr != nil {
		settings = config.DefaultSettings()
	}

	model := tui.NewModel(settings, deps.SettingsPath, tui.Loaders{
		Settings: loadSettings,
		Session: func(s *config.Settings) (*widget.Context, string, error) {
			return loadSession(deps, s, logger)
		},
	})

	paths := []string{deps.SettingsPath}
	if deps.SessionFinder != nil {
		if session, err := deps.SessionFinder(deps.ProjectsDir); err == nil {
			paths = append(paths, session.FilePath)
		} else {
			logger.Debug("no session to watch", slog.Any("error", err))
		}
	}

	watcher, err := deps.WatcherCreator(paths...)
	if err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	defer watcher.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		if settingsErr != nil {
			p.Send(tui.SettingsReloadedMsg{Err: settingsErr})
		}
		runWatchLoop(p, watcher)
	}()

	return deps.ProgramRunner(p)
}

// runWatchLoop forwards file changes to the program until the watcher stops
func runWatchLoop(sender ProgramSender, watcher monitor.WatcherInterface) {
	for {
		select {
		case path, ok := <-watcher.Changes():
			if !ok {
				return
			}
			sender.Send(tui.FileChangedMsg{Path: path})

		case err, ok := <-watcher.Errors():
			if !ok {
				return
			}
			sender.Send(tui.WatcherFailedMsg{Err: fmt.Errorf("watcher error: %w", err)})
			return
		}
	}
}

// loadSettingsFile loads path, falling back to the defaults while the file
// does not exist yet
func loadSettingsFile(path string, getenv func(string) string) (*config.Settings, error) {
	var (
		s   *config.Settings
		err error
	)
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		s = config.DefaultSettings()
	} else if s, err = config.LoadFile(path); err != nil {
		return nil, err
	}
	if getenv != nil {
		s.ApplyEnv(getenv)
	}
	return s, nil
}

// loadSession collects live data from the newest session, the way the status
// line command does for the host CLI
func loadSession(deps *AppDependencies, s *config.Settings, logger *slog.Logger) (*widget.Context, string, error) {
	if deps.SessionFinder == nil {
		return nil, "", monitor.ErrNoSessionsFound
	}
	session, err := deps.SessionFinder(deps.ProjectsDir)
	if err != nil {
		return nil, "", err
	}

	in := &content.StatusLineInput{TranscriptPath: session.FilePath}
	if deps.Getwd != nil {
		if wd, err := deps.Getwd(); err == nil {
			in.Cwd = wd
		}
	}

	runner := deps.Runner
	if runner == nil {
		runner = content.ExecRunner{}
	}

	wctx := &widget.Context{}
	content.NewStandardManager(s, runner,
		content.WithLogger(logger),
		content.WithTimeout(sessionCollectTimeout),
	).Fill(context.Background(), in, wctx)
	return wctx, session.ID, nil
}
