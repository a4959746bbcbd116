package files

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTextStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	var store TextStore
	if err := store.WriteFile(path, "hej\r\nvärlden"); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := store.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got != "hej\r\nvärlden" {
		t.Fatalf("ReadFile() = %q", got)
	}
}

func TestTextStore_StripsBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.txt")
	if err := os.WriteFile(path, append([]byte{0xEF, 0xBB, 0xBF}, "text"...), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := TextStore{}.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got != "text" {
		t.Fatalf("ReadFile() = %q, want %q", got, "text")
	}
}

func TestTextStore_ReadMissing(t *testing.T) {
	if _, err := (TextStore{}).ReadFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestHasTextExtension(t *testing.T) {
	cases := map[string]bool{
		"notes.txt":      true,
		"/a/b/NOTES.TXT": true,
		"notes.md":       false,
		"txt":            false,
		"archive.txt.gz": false,
	}
	for path, want := range cases {
		if got := HasTextExtension(path); got != want {
			t.Fatalf("HasTextExtension(%q) = %v, want %v", path, got, want)
		}
	}
}
