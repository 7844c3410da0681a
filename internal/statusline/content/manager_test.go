package content

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/young1lin/claude-statusline/internal/statusline/config"
	"github.com/young1lin/claude-statusline/internal/statusline/widget"
	"github.com/young1lin/claude-statusline/internal/store"
)

// countingCollector returns a fixed value and counts Collect calls
type countingCollector struct {
	*BaseCollector
	mu    sync.Mutex
	calls int
	value string
	err   error
}

func newCountingCollector(name string, ttl time.Duration, value string) *countingCollector {
	return &countingCollector{BaseCollector: NewBaseCollector(name, ttl, false), value: value}
}

func (c *countingCollector) Collect(context.Context, *StatusLineInput) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return c.value, c.err
}

func (c *countingCollector) Apply(value string, wctx *widget.Context) error {
	if value == "corrupt" {
		return errors.New("cannot decode")
	}
	wctx.Version += value
	return nil
}

// slowCollector blocks until its context is done
type slowCollector struct {
	*BaseCollector
}

func (c *slowCollector) Collect(ctx context.Context, _ *StatusLineInput) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func (c *slowCollector) Apply(string, *widget.Context) error { return nil }

type memCache struct {
	mu     sync.Mutex
	values map[string]string
}

func (m *memCache) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memCache) Put(_ context.Context, key, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	return nil
}

func (m *memCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func TestManagerGetUsesCache(t *testing.T) {
	cache := &memCache{}
	m := NewManager(WithCache(cache))

	cached := newCountingCollector("cached", time.Minute, "a")
	uncached := newCountingCollector("uncached", 0, "b")
	m.RegisterAll(cached, uncached)

	in := &StatusLineInput{}
	for i := 0; i < 3; i++ {
		m.GetAll(context.Background(), in)
	}

	assert.Equal(t, 1, cached.calls)
	assert.Equal(t, 3, uncached.calls)
	assert.Equal(t, map[string]string{"cached": "a"}, cache.values)
}

func TestManagerFailureIsolation(t *testing.T) {
	m := NewManager()
	bad := newCountingCollector("bad", 0, "")
	bad.err = errors.New("boom")
	m.RegisterAll(bad, newCountingCollector("good", 0, "ok"))

	values := m.GetAll(context.Background(), &StatusLineInput{})
	assert.Equal(t, map[string]string{"good": "ok"}, values)
}

func TestManagerFillOrder(t *testing.T) {
	m := NewManager()
	m.RegisterAll(
		newCountingCollector("one", 0, "1"),
		newCountingCollector("two", 0, "2"),
		newCountingCollector("three", 0, "3"),
	)

	var wctx widget.Context
	m.Fill(context.Background(), &StatusLineInput{}, &wctx)
	assert.Equal(t, "123", wctx.Version)
}

func TestManagerEvictsRejectedCacheValue(t *testing.T) {
	cache := &memCache{values: map[string]string{"git": "corrupt"}}
	m := NewManager(WithCache(cache))
	c := newCountingCollector("git", time.Minute, "fresh")
	m.Register(c)

	var wctx widget.Context
	m.Fill(context.Background(), &StatusLineInput{}, &wctx)
	assert.Empty(t, wctx.Version)
	assert.Equal(t, 0, c.calls)
	assert.NotContains(t, cache.values, "git")

	m.Fill(context.Background(), &StatusLineInput{}, &wctx)
	assert.Equal(t, "fresh", wctx.Version)
	assert.Equal(t, 1, c.calls)
}

func TestManagerTimeout(t *testing.T) {
	m := NewManager(WithTimeout(20 * time.Millisecond))
	m.RegisterAll(
		&slowCollector{BaseCollector: NewBaseCollector("slow", 0, true)},
		newCountingCollector("fast", 0, "ok"),
	)

	start := time.Now()
	values := m.GetAll(context.Background(), &StatusLineInput{})
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, map[string]string{"fast": "ok"}, values)
}

func TestManagerWithStore(t *testing.T) {
	db, err := store.Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer db.Close()

	c := newCountingCollector("git", time.Minute, `{"branch":"main"}`)
	for i := 0; i < 2; i++ {
		m := NewManager(WithCache(db))
		m.Register(c)
		m.GetAll(context.Background(), &StatusLineInput{})
	}
	assert.Equal(t, 1, c.calls, "second process reads the persisted value")
}

func TestNewStandardManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	runner := NewMockRunner(ctrl)

	names := func(m *Manager) []string {
		var out []string
		for _, c := range m.Collectors() {
			out = append(out, c.Name())
		}
		return out
	}

	s := config.DefaultSettings()
	assert.Equal(t, []string{"model", "transcript", "version", "git"}, names(NewStandardManager(s, runner)))

	s.Display.Hide = []string{"git-branch", "git-changes"}
	assert.Equal(t, []string{"model", "transcript", "version"}, names(NewStandardManager(s, runner)))

	s = config.DefaultSettings()
	s.Lines = []config.Line{{{ID: "c", Type: config.WidgetCustomCommand, CommandPath: "echo x"}}}
	assert.Equal(t, []string{"model", "transcript", "version", "command"}, names(NewStandardManager(s, runner)))
}

func TestManagerEndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := NewMockRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c Command) ([]byte, error) {
			switch c.Args[1] {
			case "symbolic-ref":
				return []byte("dev\n"), nil
			case "diff":
				return []byte(" 1 file changed, 3 insertions(+)\n"), nil
			}
			return []byte("12:30\n"), nil
		}).AnyTimes()

	s := config.DefaultSettings()
	s.Lines = append(s.Lines, config.Line{{ID: "clock", Type: config.WidgetCustomCommand, CommandPath: "date +%H:%M"}})

	in, err := ParseInput([]byte(`{"cwd":"/repo","model":{"id":"claude-haiku-4-5","display_name":"Haiku 4.5"},"version":"1.2.3"}`))
	require.NoError(t, err)

	var wctx widget.Context
	NewStandardManager(s, runner).Fill(context.Background(), in, &wctx)

	assert.Equal(t, "Haiku 4.5", wctx.Model)
	assert.Equal(t, "1.2.3", wctx.Version)
	require.NotNil(t, wctx.Git)
	assert.Equal(t, "dev", wctx.Git.Branch)
	assert.Equal(t, 6, wctx.Git.Insertions)
	assert.Equal(t, "12:30", wctx.CommandOutput["clock"])
}
