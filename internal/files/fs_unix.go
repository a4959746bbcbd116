//go:build !windows

package files

import "os"

// Symlinks are caught by Lstat; there are no other reparse points here.
func isReparsePoint(string) (bool, error) {
	return false, nil
}

// syncDir flushes the directory entry of a newly created file.
func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
