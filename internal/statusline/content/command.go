package content

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/young1lin/claude-statusline/internal/statusline/config"
	"github.com/young1lin/claude-statusline/internal/statusline/widget"
)

// DefaultCommandTimeout bounds a custom command without an explicit timeout
const DefaultCommandTimeout = 1000 * time.Millisecond

// CommandCollector runs the configured custom-command items. Each command
// line goes to the platform shell with the stdin document piped through.
type CommandCollector struct {
	*BaseCollector
	runner Runner
	items  []config.WidgetItem
	logger *slog.Logger
}

// NewCommandCollector creates a collector for the given custom-command items
func NewCommandCollector(runner Runner, items []config.WidgetItem, logger *slog.Logger) *CommandCollector {
	if logger == nil {
		logger = discardLogger()
	}
	return &CommandCollector{
		BaseCollector: NewBaseCollector("command", 0, true),
		runner:        runner,
		items:         items,
		logger:        logger,
	}
}

// Collect runs every command concurrently. A command that fails or times out
// contributes empty output; it never fails the collector.
func (c *CommandCollector) Collect(ctx context.Context, in *StatusLineInput) (string, error) {
	if len(c.items) == 0 {
		return "", nil
	}

	stdin := in.Raw()
	outputs := make(map[string]string, len(c.items))
	var mu sync.Mutex

	var g errgroup.Group
	for _, item := range c.items {
		item := item
		g.Go(func() error {
			out := c.run(ctx, item, in.Dir(), stdin)
			mu.Lock()
			outputs[item.ID] = out
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return encode(outputs)
}

func (c *CommandCollector) run(ctx context.Context, item config.WidgetItem, dir string, stdin []byte) string {
	timeout := DefaultCommandTimeout
	if item.TimeoutMs > 0 {
		timeout = time.Duration(item.TimeoutMs) * time.Millisecond
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	name, args := ShellCommand(item.CommandPath)
	out, err := c.runner.Run(ctx, Command{
		Dir:   dir,
		Name:  name,
		Args:  args,
		Stdin: stdin,
	})
	if err != nil {
		c.logger.Debug("custom command failed",
			slog.String("id", item.ID),
			slog.String("command", item.CommandPath),
			slog.Any("error", err))
		return ""
	}
	return strings.TrimRight(string(out), "\r\n")
}

// Apply sets wctx.CommandOutput
func (c *CommandCollector) Apply(value string, wctx *widget.Context) error {
	if value == "" {
		return nil
	}
	var outputs map[string]string
	if err := decode(value, &outputs); err != nil {
		return err
	}
	wctx.CommandOutput = outputs
	return nil
}
