package content

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"
)

//go:generate mockgen -destination=mock_runner.go -package=content . Runner

// Command describes one process invocation
type Command struct {
	Dir   string
	Name  string
	Args  []string
	Stdin []byte
}

// Runner executes external processes and returns their stdout
type Runner interface {
	Run(ctx context.Context, cmd Command) ([]byte, error)
}

// ExecRunner runs commands with os/exec
type ExecRunner struct{}

// Run starts the command and waits for it. The process is killed when ctx
// is done.
func (ExecRunner) Run(ctx context.Context, c Command) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	if c.Stdin != nil {
		cmd.Stdin = bytes.NewReader(c.Stdin)
	}
	// grandchildren may keep the pipe open after the shell is killed
	cmd.WaitDelay = 100 * time.Millisecond

	out, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%s: %w", c.Name, ctx.Err())
		}
		return nil, fmt.Errorf("%s: %w", c.Name, err)
	}
	return out, nil
}

// ShellCommand wraps a command line in the platform shell
func ShellCommand(line string) (string, []string) {
	return shellCommandFor(runtime.GOOS, line)
}

func shellCommandFor(goos, line string) (string, []string) {
	if goos == "windows" {
		return "cmd", []string{"/C", line}
	}
	return "sh", []string{"-c", line}
}
