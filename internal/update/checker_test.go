package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecker(t *testing.T, version, tag string) (*Checker, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, "claude-statusline", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tag_name":"` + tag + `","html_url":"https://example.invalid/r"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewCheckerWithState(version, filepath.Join(t.TempDir(), "state.json"))
	c.releasesURL = srv.URL
	return c, &hits
}

func TestCheckNewerRelease(t *testing.T) {
	c, hits := newTestChecker(t, "1.2.0", "v1.3.0")

	release, err := c.Check(context.Background(), false)
	require.NoError(t, err)
	require.NotNil(t, release)
	assert.Equal(t, "v1.3.0", release.TagName)
	assert.Equal(t, "1.3.0", c.Pending())

	// within the interval nothing is fetched
	release, err = c.Check(context.Background(), false)
	require.NoError(t, err)
	assert.Nil(t, release)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))

	_, err = c.Check(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(hits))
}

func TestCheckUpToDate(t *testing.T) {
	c, _ := newTestChecker(t, "1.3.0", "v1.3.0")

	release, err := c.Check(context.Background(), false)
	require.NoError(t, err)
	assert.Nil(t, release)
	assert.Empty(t, c.Pending())
}

func TestCheckIntervalExpired(t *testing.T) {
	c, hits := newTestChecker(t, "1.0.0", "v2.0.0")
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_, err := c.Check(context.Background(), false)
	require.NoError(t, err)

	now = now.Add(25 * time.Hour)
	_, err = c.Check(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(hits))
}

func TestOptOut(t *testing.T) {
	c, hits := newTestChecker(t, "1.0.0", "v2.0.0")
	require.NoError(t, c.SetOptOut(true))

	release, err := c.Check(context.Background(), true)
	require.NoError(t, err)
	assert.Nil(t, release)
	assert.Zero(t, atomic.LoadInt32(hits))
	assert.Empty(t, c.Pending())
}

func TestServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewCheckerWithState("1.0.0", filepath.Join(t.TempDir(), "state.json"))
	c.releasesURL = srv.URL

	_, err := c.Check(context.Background(), true)
	assert.Error(t, err)
	assert.Empty(t, c.Pending())
}

func TestNeedsUpdate(t *testing.T) {
	tests := []struct {
		current, latest string
		want            bool
	}{
		{"1.0.0", "1.0.1", true},
		{"1.0.0", "1.0.0", false},
		{"2.0.0", "1.9.9", false},
		{"dev", "9.9.9", false},
		{"not-semver", "1.0.0", false},
		{"1.0.0", "garbage", false},
	}
	for _, tt := range tests {
		c := NewCheckerWithState(tt.current, "")
		assert.Equal(t, tt.want, c.needsUpdate(tt.latest), "%s -> %s", tt.current, tt.latest)
	}
}

func TestNotice(t *testing.T) {
	assert.Equal(t, "↑ Update available: v1.4.0", Notice("1.4.0"))
}
