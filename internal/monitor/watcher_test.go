package monitor

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitChange(t *testing.T, w WatcherInterface) string {
	t.Helper()
	select {
	case p := <-w.Changes():
		return p
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
		return ""
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statusline.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0644))

	w, err := NewWatcherWithInterval(50*time.Millisecond, path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("a: 22\n"), 0644))

	want, _ := filepath.Abs(path)
	assert.Equal(t, want, waitChange(t, w))
}

func TestWatcherReportsCreation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "later.yaml")

	w, err := NewWatcherWithInterval(50*time.Millisecond, path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	want, _ := filepath.Abs(path)
	assert.Equal(t, want, waitChange(t, w))
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	w, err := NewWatcherWithInterval(50*time.Millisecond, path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other"), []byte("y"), 0644))

	select {
	case p := <-w.Changes():
		t.Fatalf("unexpected change for %s", p)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherClose(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "f"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	// channels close once the loop stops
	select {
	case _, ok := <-w.Changes():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("changes channel not closed")
	}
}

func TestTestWatcher(t *testing.T) {
	tw := NewTestWatcher()
	tw.SendChange("/a")
	tw.SendError(os.ErrNotExist)

	assert.Equal(t, "/a", <-tw.Changes())
	assert.Equal(t, os.ErrNotExist, <-tw.Errors())

	require.NoError(t, tw.Close())
	require.NoError(t, tw.Close())
}
