// Package adapter contains filesystem and persistence adapters for the layoutfix CLI.
package adapter

import (
	"os"
	"path/filepath"

	m "layoutfix.dev/pkg/layoutfix/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when rewriting target files. It hides direct `os` access so the
// workflow logic can be tested against temporary directories.
type SourceFSAdapter interface {
	// Resolve joins a slash-separated target path onto root using the host separator.
	Resolve(root, target m.Path) string

	// FileInfo returns metadata for a path so the domain can check existence.
	FileInfo(path string) (os.FileInfo, error)

	// ReadFile loads a file from disk and returns its full contents.
	ReadFile(path string) ([]byte, error)

	// WriteFile overwrites a file in place with the given permissions.
	WriteFile(path string, content []byte, perm os.FileMode) error
}

// LocalSourceFSAdapter implements SourceFSAdapter on top of the os package.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Resolve converts target to the host separator and joins it onto root.
func (a *LocalSourceFSAdapter) Resolve(root, target m.Path) string {
	if root == "" {
		root = "."
	}

	return filepath.Join(string(root), target.OSPath())
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path string) ([]byte, error) {
	// #nosec G304 - path comes from the fixed target list
	return os.ReadFile(path)
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path string, content []byte, perm os.FileMode) error {
	return os.WriteFile(path, content, perm)
}
