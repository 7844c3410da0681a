package content

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/young1lin/claude-statusline/internal/statusline/widget"
)

var (
	insertionsPattern = regexp.MustCompile(`(\d+) insertions?\(\+\)`)
	deletionsPattern  = regexp.MustCompile(`(\d+) deletions?\(-\)`)
)

type gitValue struct {
	Branch     string `json:"branch"`
	Insertions int    `json:"insertions"`
	Deletions  int    `json:"deletions"`
}

// GitCollector collects the branch and the uncommitted line changes of the
// session's working directory
type GitCollector struct {
	*BaseCollector
	runner Runner
}

// NewGitCollector creates a new git collector
func NewGitCollector(runner Runner) *GitCollector {
	return &GitCollector{
		BaseCollector: NewBaseCollector("git", 5*time.Second, true),
		runner:        runner,
	}
}

// CacheKey includes the directory, since each worktree has its own state
func (c *GitCollector) CacheKey(in *StatusLineInput) string {
	return c.Name() + ":" + in.Dir()
}

// Collect runs the git queries in parallel. Outside a worktree it returns
// an empty value.
func (c *GitCollector) Collect(ctx context.Context, in *StatusLineInput) (string, error) {
	dir := in.Dir()
	if dir == "" {
		return "", nil
	}

	branch := c.branch(ctx, dir)
	if branch == "" {
		return "", nil
	}

	v := gitValue{Branch: branch}
	var unstaged, staged [2]int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		unstaged = c.shortstat(gctx, dir)
		return nil
	})
	g.Go(func() error {
		staged = c.shortstat(gctx, dir, "--cached")
		return nil
	})
	_ = g.Wait()

	v.Insertions = unstaged[0] + staged[0]
	v.Deletions = unstaged[1] + staged[1]
	return encode(v)
}

// branch reads the current branch, falling back to the short commit hash
// on a detached HEAD
func (c *GitCollector) branch(ctx context.Context, dir string) string {
	out, err := c.git(ctx, dir, "symbolic-ref", "--short", "HEAD")
	if err == nil {
		if b := strings.TrimSpace(string(out)); b != "" && b != "HEAD" {
			return b
		}
	}

	out, err = c.git(ctx, dir, "rev-parse", "--short", "HEAD")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

func (c *GitCollector) shortstat(ctx context.Context, dir string, extra ...string) [2]int {
	args := append([]string{"diff", "--shortstat"}, extra...)
	out, err := c.git(ctx, dir, args...)
	if err != nil {
		return [2]int{}
	}
	ins, del := ParseShortstat(string(out))
	return [2]int{ins, del}
}

func (c *GitCollector) git(ctx context.Context, dir string, args ...string) ([]byte, error) {
	return c.runner.Run(ctx, Command{
		Dir:  dir,
		Name: "git",
		Args: append([]string{"--no-optional-locks"}, args...),
	})
}

// ParseShortstat extracts the insertion and deletion counts from the output
// of git diff --shortstat
func ParseShortstat(s string) (insertions, deletions int) {
	if m := insertionsPattern.FindStringSubmatch(s); m != nil {
		insertions, _ = strconv.Atoi(m[1])
	}
	if m := deletionsPattern.FindStringSubmatch(s); m != nil {
		deletions, _ = strconv.Atoi(m[1])
	}
	return insertions, deletions
}

// Apply sets wctx.Git when a repository was found
func (c *GitCollector) Apply(value string, wctx *widget.Context) error {
	if value == "" {
		return nil
	}
	var v gitValue
	if err := decode(value, &v); err != nil {
		return err
	}
	if v.Branch == "" {
		return nil
	}
	wctx.Git = &widget.GitStatus{
		Branch:     v.Branch,
		Insertions: v.Insertions,
		Deletions:  v.Deletions,
	}
	return nil
}
