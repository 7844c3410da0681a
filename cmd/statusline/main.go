// Command statusline renders the status line for the Claude Code CLI.
//
// The host CLI runs it on every refresh with a JSON document on stdin and
// prints whatever lines it writes to stdout.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	appconfig "github.com/young1lin/claude-statusline/internal/config"
	"github.com/young1lin/claude-statusline/internal/statusline/config"
	"github.com/young1lin/claude-statusline/internal/statusline/content"
	"github.com/young1lin/claude-statusline/internal/statusline/layout"
	"github.com/young1lin/claude-statusline/internal/statusline/render"
	"github.com/young1lin/claude-statusline/internal/statusline/widget"
	"github.com/young1lin/claude-statusline/internal/store"
	"github.com/young1lin/claude-statusline/internal/update"
)

type options struct {
	configPath  string
	width       int
	preview     bool
	checkUpdate bool
	updates     string
	initConfig  bool
	showVersion bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("statusline", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "settings file (default: project .claude/statusline.yaml, then the user settings)")
	fs.IntVar(&opts.width, "width", 0, "terminal width to render for, 0 detects it")
	fs.BoolVar(&opts.preview, "preview", false, "render sample data instead of reading stdin")
	fs.BoolVar(&opts.checkUpdate, "check-update", false, "check GitHub for a newer release")
	fs.StringVar(&opts.updates, "updates", "", "turn update checks \"on\" or \"off\" and exit")
	fs.BoolVar(&opts.initConfig, "init", false, "write the default settings to -config or the user settings file and exit")
	fs.BoolVar(&opts.showVersion, "version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	logger := newLogger(stderr, os.Getenv)

	if opts.showVersion {
		fmt.Fprintf(stdout, "claude-statusline %s (%s, %s)\n", update.Version, update.Commit, update.BuildDate)
		return 0
	}
	if opts.initConfig {
		path := opts.configPath
		if path == "" {
			path = config.GlobalPath()
		}
		return runInit(path, stdout, stderr)
	}
	if opts.updates != "" {
		return runSetUpdates(update.NewChecker(update.Version), opts.updates, stdout, stderr)
	}
	if opts.checkUpdate {
		return runCheckUpdate(stdout, stderr)
	}

	initConsole()

	preview := opts.preview || isTerminal(stdin)

	in := &content.StatusLineInput{}
	if !preview {
		in = readInput(stdin, logger)
	}

	settings := loadSettings(opts.configPath, in.ProjectDir(), logger)
	settings.ApplyEnv(os.Getenv)

	width, detected := detectWidth(opts.width, defaultWidthSources(os.Getenv)...)
	logger.Debug("terminal width", slog.Int("width", width), slog.Bool("detected", detected))

	var wctx *widget.Context
	if preview {
		wctx = widget.SampleContext(0)
	} else {
		wctx = &widget.Context{}
		collect(settings, in, wctx, logger)
	}
	wctx.TerminalWidth = width
	wctx.WidthDetectionAvailable = detected

	lines := layout.NewRenderer(settings).Render(wctx)

	if settings.UpdateNotice {
		if latest := update.NewChecker(update.Version).Pending(); latest != "" {
			notice := update.Notice(latest)
			if detected {
				notice = render.TruncateWithReserve(notice, width, settings.Reserve())
			}
			lines = append(lines, notice)
		}
	}

	for _, line := range lines {
		fmt.Fprintln(stdout, line)
	}
	return 0
}

// collect fills wctx from the stdin document, caching expensive results
// between invocations when the cache database is usable
func collect(s *config.Settings, in *content.StatusLineInput, wctx *widget.Context, logger *slog.Logger) {
	opts := []content.Option{content.WithLogger(logger)}

	db, err := store.Open(appconfig.CacheDBPath())
	if err != nil {
		logger.Debug("collector cache disabled", slog.Any("error", err))
	} else {
		defer db.Close()
		opts = append(opts, content.WithCache(db))
	}

	ctx := context.Background()
	m := content.NewStandardManager(s, content.ExecRunner{}, opts...)
	if logger.Enabled(ctx, slog.LevelDebug) {
		names := make([]string, 0, len(m.Collectors()))
		for _, c := range m.Collectors() {
			names = append(names, c.Name())
		}
		logger.Debug("collecting", slog.Any("collectors", names))
	}
	m.Fill(ctx, in, wctx)

	if db != nil {
		if _, err := db.Purge(ctx); err != nil {
			logger.Debug("cache purge failed", slog.Any("error", err))
		}
	}
}

func readInput(r io.Reader, logger *slog.Logger) *content.StatusLineInput {
	data, err := io.ReadAll(r)
	if err != nil {
		logger.Warn("reading stdin failed", slog.Any("error", err))
		return &content.StatusLineInput{}
	}

	// Some Windows shells pad the pipe with NUL bytes
	data = bytes.ReplaceAll(data, []byte{0}, nil)

	in, err := content.ParseInput(bytes.TrimSpace(data))
	if err != nil {
		logger.Warn("invalid stdin document", slog.Any("error", err))
	}
	return in
}

func loadSettings(path, projectDir string, logger *slog.Logger) *config.Settings {
	var (
		s   *config.Settings
		err error
	)
	if path != "" {
		s, err = config.LoadFile(path)
	} else {
		s, err = config.Load(projectDir)
	}
	if err != nil {
		logger.Warn("using default settings", slog.Any("error", err))
		return config.DefaultSettings()
	}
	return s
}

func runCheckUpdate(stdout, stderr io.Writer) int {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	release, err := update.NewChecker(update.Version).Check(ctx, true)
	if err != nil {
		fmt.Fprintf(stderr, "update check failed: %v\n", err)
		return 1
	}
	if release == nil {
		fmt.Fprintf(stdout, "claude-statusline %s is up to date\n", update.Version)
		return 0
	}
	fmt.Fprintf(stdout, "%s\n%s\n", update.Notice(strings.TrimPrefix(release.TagName, "v")), release.HTMLURL)
	return 0
}

// runInit writes the default settings to path. An existing file is never
// replaced.
func runInit(path string, stdout, stderr io.Writer) int {
	if path == "" {
		fmt.Fprintln(stderr, "no settings directory: set -config or CLAUDE_STATUSLINE_CONFIG_DIR")
		return 1
	}
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(stderr, "%s already exists\n", path)
		return 1
	}
	if err := config.Save(path, config.DefaultSettings()); err != nil {
		fmt.Fprintf(stderr, "writing settings failed: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "wrote %s\n", path)
	return 0
}

func runSetUpdates(c *update.Checker, value string, stdout, stderr io.Writer) int {
	var optOut bool
	switch strings.ToLower(value) {
	case "on":
	case "off":
		optOut = true
	default:
		fmt.Fprintf(stderr, "invalid -updates value %q: want on or off\n", value)
		return 2
	}
	if err := c.SetOptOut(optOut); err != nil {
		fmt.Fprintf(stderr, "saving update preference failed: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "update checks turned %s\n", strings.ToLower(value))
	return 0
}

// isTerminal reports whether r is an interactive terminal; the status line
// then has nothing to read and shows the preview
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newLogger(w io.Writer, getenv func(string) string) *slog.Logger {
	if getenv("STATUSLINE_DEBUG") != "1" {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
