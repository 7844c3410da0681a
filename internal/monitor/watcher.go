package monitor

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultPollInterval is how often watched files are checked when no
// filesystem event arrives
const DefaultPollInterval = time.Second

// WatcherInterface defines the interface for file watchers
type WatcherInterface interface {
	// Changes delivers the path of every watched file that changed
	Changes() <-chan string
	Errors() <-chan error
	Close() error
}

type fileState struct {
	modTime time.Time
	size    int64
	exists  bool
}

// Watcher reports changes to a fixed set of files. It watches their parent
// directories, so files replaced by rename or created later are noticed too.
type Watcher struct {
	watcher    *fsnotify.Watcher
	files      map[string]fileState
	mu         sync.Mutex
	changeChan chan string
	errorChan  chan error
	done       chan struct{}
	closeOnce  sync.Once
}

// NewWatcher creates a watcher for the given files
func NewWatcher(paths ...string) (*Watcher, error) {
	return NewWatcherWithInterval(DefaultPollInterval, paths...)
}

// NewWatcherWithInterval creates a watcher polling at the given interval
func NewWatcherWithInterval(poll time.Duration, paths ...string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:    fsWatcher,
		files:      make(map[string]fileState, len(paths)),
		changeChan: make(chan string, 16),
		errorChan:  make(chan error, 10),
		done:       make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		if p == "" {
			continue
		}
		p = cleanPath(p)
		w.files[p] = stat(p)
		dirs[filepath.Dir(p)] = true
	}
	for dir := range dirs {
		// A missing directory is only covered by polling
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			if err := fsWatcher.Add(dir); err != nil {
				fsWatcher.Close()
				return nil, err
			}
		}
	}

	go w.watch(poll)

	return w, nil
}

// watch runs the file watching loop
func (w *Watcher) watch(poll time.Duration) {
	ticker := time.NewTicker(poll)
	defer ticker.Stop()
	defer close(w.changeChan)
	defer close(w.errorChan)

	for {
		select {
		case <-w.done:
			return

		case <-ticker.C:
			// Polling as backup for filesystems without events
			for path := range w.snapshot() {
				w.check(path)
			}

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			path := cleanPath(event.Name)
			if _, watched := w.snapshot()[path]; watched {
				w.check(path)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errorChan <- err:
			default:
			}
		}
	}
}

func (w *Watcher) snapshot() map[string]fileState {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make(map[string]fileState, len(w.files))
	for k, v := range w.files {
		out[k] = v
	}
	return out
}

// check compares path against its recorded state and reports a change
func (w *Watcher) check(path string) {
	current := stat(path)

	w.mu.Lock()
	previous := w.files[path]
	changed := current != previous
	w.files[path] = current
	w.mu.Unlock()

	if !changed {
		return
	}
	select {
	case w.changeChan <- path:
	default:
		// a pending notification already covers it
	}
}

// Changes returns a channel of changed file paths
func (w *Watcher) Changes() <-chan string {
	return w.changeChan
}

// Errors returns a channel of errors that occur during watching
func (w *Watcher) Errors() <-chan error {
	return w.errorChan
}

// Close stops watching
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

func stat(path string) fileState {
	info, err := os.Stat(path)
	if err != nil {
		return fileState{}
	}
	return fileState{modTime: info.ModTime(), size: info.Size(), exists: true}
}

func cleanPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

// TestWatcher is a helper for testing that provides direct control over channels
type TestWatcher struct {
	changeChan chan string
	errorChan  chan error
	closed     bool
	mu         sync.Mutex
}

// NewTestWatcher creates a test watcher with controllable channels
func NewTestWatcher() *TestWatcher {
	return &TestWatcher{
		changeChan: make(chan string, 100),
		errorChan:  make(chan error, 10),
	}
}

func (tw *TestWatcher) Changes() <-chan string {
	return tw.changeChan
}

func (tw *TestWatcher) Errors() <-chan error {
	return tw.errorChan
}

func (tw *TestWatcher) Close() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.closed {
		return nil
	}
	tw.closed = true
	close(tw.changeChan)
	close(tw.errorChan)
	return nil
}

// SendChange reports path as changed
func (tw *TestWatcher) SendChange(path string) {
	tw.changeChan <- path
}

// SendError sends a test error to the watcher
func (tw *TestWatcher) SendError(err error) {
	tw.errorChan <- err
}
