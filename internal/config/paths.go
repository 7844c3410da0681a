package config

import (
	"os"
	"path/filepath"
)

// appName names the per-user settings and cache directories
const appName = "claude-statusline"

// SettingsDir returns the directory holding the user-wide status line settings
func SettingsDir() string {
	return SettingsDirWithPlatform(DefaultPlatform)
}

// SettingsDirWithPlatform allows injecting a custom platform provider for testing
func SettingsDirWithPlatform(platform PlatformProvider) string {
	if dir := platform.GetEnv("CLAUDE_STATUSLINE_CONFIG_DIR"); dir != "" {
		return dir
	}
	switch platform.GetOS() {
	case "windows":
		// %APPDATA%\claude-statusline\
		appData := platform.GetEnv("APPDATA")
		if appData == "" {
			return ""
		}
		return filepath.Join(appData, appName)
	case "darwin":
		// ~/Library/Application Support/claude-statusline/
		home, err := platform.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, "Library", "Application Support", appName)
	default: // linux, etc.
		// $XDG_CONFIG_HOME/claude-statusline/ or ~/.config/claude-statusline/
		if xdg := platform.GetEnv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName)
		}
		home, err := platform.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, ".config", appName)
	}
}

// ProjectsDir returns the directory containing project session files
func ProjectsDir() string {
	return ProjectsDirWithPlatform(DefaultPlatform)
}

// ProjectsDirWithPlatform allows injecting a custom platform provider for testing
func ProjectsDirWithPlatform(platform PlatformProvider) string {
	// Use ~/.claude/projects for all platforms (consistent with Claude Code)
	home, err := platform.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".claude", "projects")
}

// UserCacheDir returns the application cache directory
func UserCacheDir() string {
	return UserCacheDirWithPlatform(DefaultPlatform)
}

// UserCacheDirWithPlatform allows injecting a custom platform provider for testing
func UserCacheDirWithPlatform(platform PlatformProvider) string {
	switch platform.GetOS() {
	case "windows":
		// %LOCALAPPDATA%\claude-statusline\
		localAppData := platform.GetEnv("LOCALAPPDATA")
		if localAppData == "" {
			home, _ := platform.UserHomeDir()
			return filepath.Join(home, "."+appName)
		}
		return filepath.Join(localAppData, appName)
	case "darwin":
		// ~/Library/Caches/claude-statusline/
		home, _ := platform.UserHomeDir()
		return filepath.Join(home, "Library", "Caches", appName)
	default:
		// ~/.cache/claude-statusline/
		if xdg := platform.GetEnv("XDG_CACHE_HOME"); xdg != "" {
			return filepath.Join(xdg, appName)
		}
		home, _ := platform.UserHomeDir()
		return filepath.Join(home, ".cache", appName)
	}
}

// CacheDBPath returns the path to the SQLite collector cache
func CacheDBPath() string {
	cacheDir := UserCacheDir()
	_ = os.MkdirAll(cacheDir, 0755)
	return filepath.Join(cacheDir, "statusline-cache.db")
}

// UpdateStatePath returns the path of the persisted update check state
func UpdateStatePath() string {
	return filepath.Join(UserCacheDir(), "update-state.json")
}
