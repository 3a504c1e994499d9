package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/manav03panchal/hydrate/internal/errors"
)

// WriteFileAtomic writes data to a temp file in the target directory and
// renames it into place, so a failed export never leaves a partial file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".hydrate-*.tmp")
	if err != nil {
		return wrapFileError("create temp file", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return wrapFileError("write", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return wrapFileError("sync", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}

// EnsureDirectory creates a directory with owner-only permissions if it
// doesn't exist.
func EnsureDirectory(path string) error {
	if err := os.MkdirAll(path, 0700); err != nil {
		return wrapFileError("mkdir", err)
	}
	return nil
}

func wrapFileError(op string, err error) error {
	switch {
	case errors.Is(err, syscall.ENOSPC):
		return errors.NewSystemErrorWithOp(op, "disk full", err)
	case os.IsPermission(err):
		return errors.NewSystemErrorWithOp(op, "permission denied", errors.ErrPermissionDenied)
	default:
		return fmt.Errorf("failed to %s: %w", op, err)
	}
}
