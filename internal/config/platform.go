package config

import (
	"os"
	"runtime"
)

// PlatformProvider answers the OS questions the settings, cache and projects
// directories depend on. Tests swap it to resolve paths for other platforms.
type PlatformProvider interface {
	// GetOS returns a GOOS value ("windows", "darwin", "linux")
	GetOS() string
	// GetEnv reads variables such as APPDATA or XDG_CONFIG_HOME
	GetEnv(key string) string
	UserHomeDir() (string, error)
}

// OSPlatformProvider resolves against the running process
type OSPlatformProvider struct{}

func (OSPlatformProvider) GetOS() string { return runtime.GOOS }
func (OSPlatformProvider) GetEnv(key string) string { return os.Getenv(key) }

func (OSPlatformProvider) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// DefaultPlatform backs SettingsDir, ProjectsDir and UserCacheDir
var DefaultPlatform PlatformProvider = OSPlatformProvider{}
