package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/oukeidos/skriv/internal/logger"
)

const defaultFileMode os.FileMode = 0644

// ReplaceFile replaces the whole content of path with data. An existing file
// is truncated and rewritten in place, keeping its inode, links, owner and
// mode. A symlinked destination is followed.
func ReplaceFile(path string, data []byte) error {
	target, existed, err := resolveDestination(path)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, defaultFileMode)
	if err != nil {
		return fmt.Errorf("failed to open file for writing: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to sync file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	if !existed {
		dir := filepath.Dir(target)
		if err := syncDir(dir); err != nil {
			logger.Warn("Directory fsync failed (safe to ignore on some platforms)", "path", dir, "error", err)
		}
	}
	return nil
}

// resolveDestination follows symlinks to the file that will be rewritten and
// reports whether it already exists.
func resolveDestination(path string) (string, bool, error) {
	if path == "" {
		return "", false, fmt.Errorf("path is empty")
	}
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if !info.Mode().IsRegular() {
			return "", false, fmt.Errorf("%s is not a regular file", path)
		}
		target, err := filepath.EvalSymlinks(path)
		if err != nil {
			return "", false, fmt.Errorf("failed to resolve path: %w", err)
		}
		return target, true, nil
	case errors.Is(err, fs.ErrNotExist):
		return path, false, nil
	default:
		return "", false, err
	}
}
