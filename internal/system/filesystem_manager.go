package system

import "os"

// FileSystemManager defines the interface for file system operations.
// This allows for mocking the file system in tests.
type FileSystemManager interface {
	EnsureDirectory(path string, perms os.FileMode) error
	WriteFile(path string, content []byte, perms os.FileMode) error
	ReadFile(path string) ([]byte, error)
	FileExists(path string) (bool, error)
	DirectoryExists(path string) (bool, error)
}

var (
	_ FileSystemManager = (*FileSystem)(nil)
	_ FileSystemManager = (*MockFileSystem)(nil)
)
