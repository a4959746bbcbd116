package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStats_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dok1.txt")
	if err := os.WriteFile(path, []byte("Hej på dig\r\nvärlden\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := executeCommand(t, "stats", path)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	for _, want := range []string{
		"Letters (incl. spaces): 17",
		"Letters (excl. spaces): 15",
		"Words: 4",
		"Rows: 3",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q: %s", want, out)
		}
	}
}

func TestStats_StdinJSON(t *testing.T) {
	out, err := executeCommandWithInput(t, "\xEF\xBB\xBFa b\nc", "stats", "--json")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	var results []map[string]any
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	r := results[0]
	if r["file"] != "-" || r["letters_incl_spaces"] != float64(4) || r["letters_excl_spaces"] != float64(3) ||
		r["words"] != float64(3) || r["rows"] != float64(2) || r["graphemes"] != float64(4) {
		t.Fatalf("unexpected result: %v", r)
	}
}

func TestStats_MissingFile(t *testing.T) {
	_, err := executeCommand(t, "stats", filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestStats_YAMLAndTable(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(a, []byte("one two"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(b, []byte("x\ny\nz"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := executeCommand(t, "stats", "--format", "yaml", a)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if !strings.Contains(out, "words: 2") || !strings.Contains(out, "letters_excl_spaces: 6") {
		t.Fatalf("unexpected yaml: %s", out)
	}

	out, err = executeCommand(t, "stats", a, b)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if !strings.Contains(out, "FILE") || !strings.Contains(out, "b.txt") {
		t.Fatalf("expected a table with both files: %s", out)
	}
}

func TestStats_BadFormat(t *testing.T) {
	if _, err := executeCommandWithInput(t, "x", "stats", "--format", "xml"); err == nil {
		t.Fatalf("expected unsupported format error")
	}
	if _, err := executeCommandWithInput(t, "x", "stats", "--format", "yaml", "--json"); err == nil {
		t.Fatalf("expected mutually exclusive flag error")
	}
}
