// Package update checks GitHub for newer releases of the status line.
//
// The network check only runs on demand (statusline -check-update) and
// records what it found. Regular renders read that record, so the hook
// never waits on the network.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	appconfig "github.com/young1lin/claude-statusline/internal/config"
)

const (
	// releasesURL is the GitHub API endpoint for the latest release
	releasesURL = "https://api.github.com/repos/young1lin/claude-statusline/releases/latest"
	// checkInterval is how often to check for updates
	checkInterval = 24 * time.Hour
)

// UpdateState tracks the last update check.
type UpdateState struct {
	LastCheck     time.Time `json:"last_check"`
	LatestVersion string    `json:"latest_version"`
	OptOut        bool      `json:"opt_out"`
}

// Checker checks for updates.
type Checker struct {
	currentVersion string
	stateFile      string
	releasesURL    string
	httpClient     *http.Client
	now            func() time.Time
}

// NewChecker creates a new update checker that keeps its state in the
// user cache directory.
func NewChecker(version string) *Checker {
	return NewCheckerWithState(version, appconfig.UpdateStatePath())
}

// NewCheckerWithState creates a checker persisting its state to stateFile
func NewCheckerWithState(version, stateFile string) *Checker {
	return &Checker{
		currentVersion: version,
		stateFile:      stateFile,
		releasesURL:    releasesURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		now: time.Now,
	}
}

// Check fetches the latest release unless one was fetched within the check
// interval. It returns the release when it is newer than the running
// version. force skips the interval.
func (c *Checker) Check(ctx context.Context, force bool) (*ReleaseInfo, error) {
	state, err := c.loadState()
	if err != nil {
		state = &UpdateState{}
	}

	if state.OptOut || (!force && c.now().Sub(state.LastCheck) < checkInterval) {
		return nil, nil
	}

	release, err := c.fetchLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest release: %w", err)
	}

	latest := c.parseVersion(release.TagName)
	state.LastCheck = c.now()
	state.LatestVersion = latest
	if err := c.saveState(state); err != nil {
		return nil, fmt.Errorf("failed to save update state: %w", err)
	}

	if c.needsUpdate(latest) {
		return release, nil
	}

	return nil, nil
}

// Pending returns the recorded newer version, or "" when none is known.
// It never touches the network.
func (c *Checker) Pending() string {
	state, err := c.loadState()
	if err != nil || state.OptOut || state.LatestVersion == "" {
		return ""
	}
	if !c.needsUpdate(state.LatestVersion) {
		return ""
	}
	return state.LatestVersion
}

// Notice formats the extra status line shown for a pending version
func Notice(latest string) string {
	return "↑ Update available: v" + latest
}

// fetchLatest fetches the latest release from GitHub.
func (c *Checker) fetchLatest(ctx context.Context) (*ReleaseInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.releasesURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "claude-statusline")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	var release ReleaseInfo
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, err
	}

	return &release, nil
}

// needsUpdate returns true if the current version is older than the latest.
// Development builds never report updates.
func (c *Checker) needsUpdate(latest string) bool {
	if c.currentVersion == "dev" {
		return false
	}

	currentV, err := semver.NewVersion(c.currentVersion)
	if err != nil {
		return false
	}

	latestV, err := semver.NewVersion(latest)
	if err != nil {
		return false
	}

	return latestV.GreaterThan(currentV)
}

// parseVersion extracts semantic version from tag name (e.g., "v1.2.3" -> "1.2.3").
func (c *Checker) parseVersion(tag string) string {
	return strings.TrimPrefix(tag, "v")
}

// loadState loads the update state from disk.
func (c *Checker) loadState() (*UpdateState, error) {
	data, err := os.ReadFile(c.stateFile)
	if err != nil {
		if os.IsNotExist(err) {
			return &UpdateState{}, nil
		}
		return nil, err
	}

	var state UpdateState
	if err := json.Unmarshal(data, &state); err != nil {
		return &UpdateState{}, nil
	}

	return &state, nil
}

// saveState saves the update state to disk.
func (c *Checker) saveState(state *UpdateState) error {
	if err := os.MkdirAll(filepath.Dir(c.stateFile), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.stateFile, data, 0644)
}

// SetOptOut sets the opt-out preference for update checks.
func (c *Checker) SetOptOut(optOut bool) error {
	state, err := c.loadState()
	if err != nil {
		state = &UpdateState{}
	}
	state.OptOut = optOut
	return c.saveState(state)
}
