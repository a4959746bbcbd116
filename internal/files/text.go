package files

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
)

// TextExtension is the only file type the editor offers in dialogs and
// accepts from drops.
const TextExtension = ".txt"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// TextStore reads and writes whole plain-text files.
type TextStore struct{}

// ReadFile returns the file content with a leading UTF-8 byte order mark removed.
func (TextStore) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return DecodeText(data), nil
}

// DecodeText converts raw file bytes to document text.
func DecodeText(data []byte) string {
	return string(bytes.TrimPrefix(data, utf8BOM))
}

// WriteFile replaces the whole file with content.
func (TextStore) WriteFile(path, content string) error {
	return ReplaceFile(path, []byte(content))
}

// HasTextExtension reports whether path names a .txt file (case-insensitive).
func HasTextExtension(path string) bool {
	return strings.EqualFold(filepath.Ext(path), TextExtension)
}
