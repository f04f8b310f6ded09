// Package system wraps the file system operations fix-components performs.
// Paths are relative to a target root; the backing afero.Fs is the real
// disk in production and an in-memory tree in tests.
package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileSystem handles file system operations under a root directory
type FileSystem struct {
	fs   afero.Fs
	root string
}

// NewFileSystem creates a FileSystem rooted at root on the local disk.
// A relative root is resolved against the working directory.
func NewFileSystem(root string) (*FileSystem, error) {
	if root == "" {
		root = "."
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %s: %w", root, err)
	}

	return &FileSystem{
		fs:   afero.NewBasePathFs(afero.NewOsFs(), absRoot),
		root: absRoot,
	}, nil
}

// NewMemFileSystem creates a FileSystem backed by memory (useful for testing)
func NewMemFileSystem() *FileSystem {
	return &FileSystem{
		fs:   afero.NewMemMapFs(),
		root: string(filepath.Separator),
	}
}

// Root returns the directory all paths are resolved against
func (fs *FileSystem) Root() string {
	return fs.root
}

// EnsureDirectory creates a directory and any missing parents.
// If the directory already exists, it does nothing.
func (fs *FileSystem) EnsureDirectory(path string, perms os.FileMode) error {
	if info, err := fs.fs.Stat(path); err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists but is not a directory", path)
		}
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check directory %s: %w", path, err)
	}

	if err := fs.fs.MkdirAll(path, perms); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}

	return nil
}

// WriteFile creates or truncates path and writes content to it
func (fs *FileSystem) WriteFile(path string, content []byte, perms os.FileMode) error {
	if err := afero.WriteFile(fs.fs, path, content, perms); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// ReadFile returns the content of path
func (fs *FileSystem) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(fs.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, nil
}

// FileExists checks if a file exists
func (fs *FileSystem) FileExists(path string) (bool, error) {
	exists, err := afero.Exists(fs.fs, path)
	if err != nil {
		return false, fmt.Errorf("failed to check if file exists %s: %w", path, err)
	}
	return exists, nil
}

// DirectoryExists checks if a directory exists
func (fs *FileSystem) DirectoryExists(path string) (bool, error) {
	exists, err := afero.DirExists(fs.fs, path)
	if err != nil {
		return false, fmt.Errorf("failed to check if directory exists %s: %w", path, err)
	}
	return exists, nil
}
