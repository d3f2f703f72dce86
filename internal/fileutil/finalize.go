// Package fileutil provides atomic file writes for command output.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempContext holds state for an atomic file write operation.
type TempContext struct {
	TmpFile *os.File
	TmpName string
	OutPath string
}

// NewTempContext creates a temp file next to outPath for atomic writing.
// Caller must defer CleanupOnError.
func NewTempContext(outPath string) (*TempContext, error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(outPath), ".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}

	return &TempContext{
		TmpFile: tmpFile,
		TmpName: tmpFile.Name(),
		OutPath: outPath,
	}, nil
}

// CleanupOnError closes the temp file and removes it if the write failed.
func (tc *TempContext) CleanupOnError(errp *error) {
	tc.TmpFile.Close() //nolint:gosec // best-effort cleanup

	if *errp != nil {
		os.Remove(tc.TmpName) //nolint:gosec // best-effort cleanup
	}
}

// Commit closes the temp file, applies perm and renames it over the output path.
// It returns the size of the written file.
func (tc *TempContext) Commit(perm os.FileMode) (int64, error) {
	if err := tc.TmpFile.Chmod(perm); err != nil {
		return 0, fmt.Errorf("setting file permissions: %w", err)
	}

	if err := tc.TmpFile.Close(); err != nil {
		return 0, fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(tc.TmpName, tc.OutPath); err != nil {
		return 0, fmt.Errorf("renaming output file: %w", err)
	}

	info, err := os.Stat(tc.OutPath)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", tc.OutPath, err)
	}

	return info.Size(), nil
}

// WriteAtomic writes data to path through a temp file and rename, so readers never
// observe a partial file.
func WriteAtomic(path string, data []byte, perm os.FileMode) (size int64, err error) {
	tc, err := NewTempContext(path)
	if err != nil {
		return 0, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer tc.CleanupOnError(&err)

	if _, err = tc.TmpFile.Write(data); err != nil {
		return 0, fmt.Errorf("writing output: %w", err)
	}

	return tc.Commit(perm)
}
