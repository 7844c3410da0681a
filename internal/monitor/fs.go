package monitor

import (
	"os"
	"path/filepath"
)

//go:generate mockgen -destination=mock_filesystem.go -package=monitor . FileSystem

// FileSystem is what session lookup needs from the disk: walking the
// projects directory for transcripts and checking the directory exists
type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
	Walk(root string, walkFn filepath.WalkFunc) error
}

// OSFileSystem reads the real disk
type OSFileSystem struct{}

func (OSFileSystem) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }

func (OSFileSystem) Walk(root string, walkFn filepath.WalkFunc) error {
	return filepath.Walk(root, walkFn)
}
