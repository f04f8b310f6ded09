package system

import (
	"os"
	"sync"
)

// MockFileSystem is an in-memory FileSystem for testing purposes.
// It records directory and write calls and can fail them per path.
type MockFileSystem struct {
	*FileSystem
	mu           sync.Mutex
	WrittenFiles map[string][]byte
	EnsuredDirs  []string
	DirErrors    map[string]error
	WriteErrors  map[string]error
}

// NewMockFileSystem creates a new MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		FileSystem:   NewMemFileSystem(),
		WrittenFiles: make(map[string][]byte),
		DirErrors:    make(map[string]error),
		WriteErrors:  make(map[string]error),
	}
}

// EnsureDirectory records the call and returns the injected error for path, if any.
func (m *MockFileSystem) EnsureDirectory(path string, perms os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.EnsuredDirs = append(m.EnsuredDirs, path)
	if err, ok := m.DirErrors[path]; ok {
		return err
	}
	return m.FileSystem.EnsureDirectory(path, perms)
}

// WriteFile captures the written content unless an error is injected for path.
func (m *MockFileSystem) WriteFile(path string, content []byte, perms os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.WriteErrors[path]; ok {
		return err
	}
	if err := m.FileSystem.WriteFile(path, content, perms); err != nil {
		return err
	}
	m.WrittenFiles[path] = content
	return nil
}
