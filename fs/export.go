// Package fs writes exported option documentation to disk.
package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/optdoc"
)

// ExportFile writes an export with atomic update semantics.
// Data is written to a temporary file next to the target, then moved into
// place on Commit, so readers never see a partially written export.
type ExportFile struct {
	path string
}

// NewExportFile creates an ExportFile targeting path.
// Data is staged in path.tmp until Commit.
func NewExportFile(path string) *ExportFile {
	return &ExportFile{path: path}
}

func (f *ExportFile) tempPath() string {
	return f.path + ".tmp"
}

// Write stages data in the temporary file, creating parent directories.
func (f *ExportFile) Write(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return optdoc.Errorf(optdoc.EIO, "create export directory: %w", err)
	}
	if err := os.WriteFile(f.tempPath(), data, 0644); err != nil {
		return optdoc.Errorf(optdoc.EIO, "write export: %w", err)
	}
	return nil
}

// Commit atomically replaces the target with the staged file.
func (f *ExportFile) Commit() error {
	if err := os.Rename(f.tempPath(), f.path); err != nil {
		return optdoc.Errorf(optdoc.EIO, "commit export: %w", err)
	}
	return nil
}

// Abort removes the staged file, leaving the target untouched.
func (f *ExportFile) Abort() error {
	err := os.Remove(f.tempPath())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
