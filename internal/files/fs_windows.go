//go:build windows

package files

import "golang.org/x/sys/windows"

func isReparsePoint(path string) (bool, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false, err
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false, err
	}
	return attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0, nil
}

// Directory handles from os.Open cannot be flushed on Windows.
func syncDir(string) error {
	return nil
}
