// Package materialize writes a set of files to disk so that each one exists
// with exactly the requested content, creating parent directories on the way.
//
// Entries are processed one at a time and in order. A failure on one entry is
// recorded in its Result and never stops the remaining entries.
package materialize

import (
	"os"
	"path/filepath"

	"github.com/jobtrackai/fix-components/internal/system"
)

const (
	// DirPerms is the mode used for created directories
	DirPerms os.FileMode = 0755
	// FilePerms is the mode used for created files
	FilePerms os.FileMode = 0644
)

// Reporter receives progress as entries are processed
type Reporter interface {
	Created(path string)
	DirectoryFailed(dir string, err error)
	WriteFailed(path string, err error)
	Done(report Report)
}

// Materializer ensures files exist with the given content
type Materializer struct {
	fs       system.FileSystemManager
	reporter Reporter
}

// New creates a Materializer writing through fs. reporter may be nil.
func New(fs system.FileSystemManager, reporter Reporter) *Materializer {
	return &Materializer{
		fs:       fs,
		reporter: reporter,
	}
}

// Run materializes every spec in order and returns one Result per spec.
// Existing files are overwritten. Run never fails as a whole.
func (m *Materializer) Run(specs []FileSpec) Report {
	report := make(Report, 0, len(specs))

	for _, spec := range specs {
		result := m.materialize(spec)
		report = append(report, result)
		m.notify(result)
	}

	if m.reporter != nil {
		m.reporter.Done(report)
	}
	return report
}

func (m *Materializer) materialize(spec FileSpec) Result {
	target := filepath.FromSlash(spec.Path)
	result := Result{Path: spec.Path}

	if dir := filepath.Dir(target); dir != "." {
		result.Dir = dir
		if err := m.fs.EnsureDirectory(dir, DirPerms); err != nil {
			result.Outcome = DirectoryError
			result.Err = err
			return result
		}
	}

	if err := m.fs.WriteFile(target, []byte(spec.Content), FilePerms); err != nil {
		result.Outcome = WriteError
		result.Err = err
		return result
	}

	result.Outcome = Created
	return result
}

func (m *Materializer) notify(result Result) {
	if m.reporter == nil {
		return
	}

	switch result.Outcome {
	case Created:
		m.reporter.Created(result.Path)
	case DirectoryError:
		m.reporter.DirectoryFailed(result.Dir, result.Err)
	case WriteError:
		m.reporter.WriteFailed(result.Path, result.Err)
	}
}
