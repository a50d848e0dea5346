package system

import (
	"log/slog"
	"os"
)

// FileSystem is the interface for the file system.
type FileSystem interface {
	// FileExists checks if a regular file exists at the given path.
	FileExists(path string) bool
}

// fileSystem is the default implementation of the FileSystem interface.
type fileSystem struct{}

// NewFileSystem creates a new file system.
func NewFileSystem() FileSystem {
	return &fileSystem{}
}

// FileExists checks if a regular file exists at the given path. Directories
// do not count, and stat failures of any kind, permission errors included,
// are treated as the file not existing.
func (fs *fileSystem) FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Default().Debug("error while checking file existence", "path", path, "err", err)
		}

		return false
	}

	return !info.IsDir()
}
