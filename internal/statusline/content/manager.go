package content

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/young1lin/claude-statusline/internal/statusline/config"
	"github.com/young1lin/claude-statusline/internal/statusline/widget"
)

// DefaultCollectTimeout bounds a whole collection pass
const DefaultCollectTimeout = 2 * time.Second

// Manager runs content collectors and caches their results
type Manager struct {
	collectors []ContentCollector
	cache      Cache
	logger     *slog.Logger
	timeout    time.Duration
}

// Option configures a Manager
type Option func(*Manager)

// WithCache makes the manager consult and refresh c
func WithCache(c Cache) Option {
	return func(m *Manager) { m.cache = c }
}

// WithLogger sets the logger used for collector failures
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithTimeout bounds a collection pass
func WithTimeout(d time.Duration) Option {
	return func(m *Manager) { m.timeout = d }
}

// NewManager creates a new content manager
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		logger:  discardLogger(),
		timeout: DefaultCollectTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewStandardManager registers the collectors the settings need. Git and
// custom commands are only run when a visible widget uses them.
func NewStandardManager(s *config.Settings, runner Runner, opts ...Option) *Manager {
	m := NewManager(opts...)
	m.RegisterAll(
		NewModelCollector(),
		NewTranscriptCollector(),
		NewVersionCollector(),
	)
	if s.Uses(config.WidgetGitBranch, config.WidgetGitChanges) {
		m.Register(NewGitCollector(runner))
	}
	if s.Uses(config.WidgetCustomCommand) {
		if items := s.CommandItems(); len(items) > 0 {
			m.Register(NewCommandCollector(runner, items, m.logger))
		}
	}
	return m
}

// Register registers a content collector
func (m *Manager) Register(collector ContentCollector) {
	m.collectors = append(m.collectors, collector)
}

// RegisterAll registers multiple collectors at once
func (m *Manager) RegisterAll(collectors ...ContentCollector) {
	for _, c := range collectors {
		m.Register(c)
	}
}

// Collectors returns the registered collectors in registration order
func (m *Manager) Collectors() []ContentCollector {
	return m.collectors
}

// Get retrieves a single collector's value, using the cache when the
// collector allows it
func (m *Manager) Get(ctx context.Context, c ContentCollector, in *StatusLineInput) (string, error) {
	cacheable := m.cache != nil && c.CacheTTL() > 0
	key := c.CacheKey(in)

	if cacheable {
		value, ok, err := m.cache.Get(ctx, key)
		if err != nil {
			m.logger.Debug("cache read failed", slog.String("key", key), slog.Any("error", err))
		} else if ok {
			return value, nil
		}
	}

	value, err := c.Collect(ctx, in)
	if err != nil {
		return "", err
	}

	if cacheable {
		if err := m.cache.Put(ctx, key, value, c.CacheTTL()); err != nil {
			m.logger.Debug("cache write failed", slog.String("key", key), slog.Any("error", err))
		}
	}
	return value, nil
}

// GetAll runs every collector concurrently and returns the values by
// collector name. A failing collector is logged and left out; it never
// aborts the others.
func (m *Manager) GetAll(ctx context.Context, in *StatusLineInput) map[string]string {
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	result := make(map[string]string, len(m.collectors))
	var mu sync.Mutex

	var g errgroup.Group
	for _, c := range m.collectors {
		c := c
		g.Go(func() error {
			value, err := m.Get(ctx, c, in)
			if err != nil {
				level := slog.LevelWarn
				if c.Optional() {
					level = slog.LevelDebug
				}
				m.logger.Log(ctx, level, "collector failed",
					slog.String("collector", c.Name()), slog.Any("error", err))
				return nil
			}
			mu.Lock()
			result[c.Name()] = value
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return result
}

// Fill collects everything and applies the values to wctx in registration
// order
func (m *Manager) Fill(ctx context.Context, in *StatusLineInput, wctx *widget.Context) {
	values := m.GetAll(ctx, in)
	for _, c := range m.collectors {
		value, ok := values[c.Name()]
		if !ok {
			continue
		}
		if err := c.Apply(value, wctx); err != nil {
			m.logger.Warn("collector value rejected",
				slog.String("collector", c.Name()), slog.Any("error", err))
			m.evict(ctx, c, in)
		}
	}
}

// evict drops a cached value that could not be applied, so the next pass
// collects afresh instead of reading it again
func (m *Manager) evict(ctx context.Context, c ContentCollector, in *StatusLineInput) {
	if m.cache == nil || c.CacheTTL() <= 0 {
		return
	}
	key := c.CacheKey(in)
	if err := m.cache.Delete(ctx, key); err != nil {
		m.logger.Debug("cache delete failed", slog.String("key", key), slog.Any("error", err))
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
