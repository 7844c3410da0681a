package update

// Build information of the statusline binary, set with
// -ldflags "-X github.com/young1lin/claude-statusline/internal/update.Version=..."
var (
	// Version is the release the binary was built from; "dev" never reports
	// pending updates
	Version = "dev"
	// Commit is the short git hash of the build
	Commit = "unknown"
	// BuildDate is the RFC 3339 build time
	BuildDate = "unknown"
)

// ReleaseInfo is the part of a GitHub release the update notice needs
type ReleaseInfo struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}
