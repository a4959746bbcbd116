package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestPrettyHandler_Structural(t *testing.T) {
	var buf bytes.Buffer
	opts := &slog.HandlerOptions{Level: LevelDebug}
	h := NewPrettyHandler(&buf, opts, false)
	l := slog.New(h)

	t.Run("WithAttrs", func(t *testing.T) {
		buf.Reset()
		l.With("doc_id", "abc-123").Info("document saved", "path", "/tmp/a.txt")

		output := buf.String()
		if !strings.Contains(output, "doc_id=abc-123") {
			t.Errorf("output missing persistent attr: %q", output)
		}
		if !strings.Contains(output, "path=/tmp/a.txt") {
			t.Errorf("output missing record attr: %q", output)
		}
	})

	t.Run("NestedGroups", func(t *testing.T) {
		buf.Reset()
		l.WithGroup("outer").WithGroup("inner").With("key", "val").Info("msg")

		output := buf.String()
		if !strings.Contains(output, "outer.inner.key=val") {
			t.Errorf("output missing nested grouped attr: %q", output)
		}
	})

	t.Run("LevelFilter", func(t *testing.T) {
		buf.Reset()
		quiet := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: LevelWarn}, false))
		quiet.Info("hidden")
		if buf.Len() != 0 {
			t.Errorf("info record should be filtered at warn level: %q", buf.String())
		}
	})
}

func TestRedactAttr(t *testing.T) {
	cases := []struct {
		key    string
		redact bool
	}{
		{key: "text", redact: true},
		{key: "Content", redact: true},
		{key: "dropped_text", redact: true},
		{key: "clipboard", redact: true},
		{key: "path", redact: false},
		{key: "doc_id", redact: false},
		{key: "mode", redact: false},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			got := RedactAttr(nil, slog.String(tc.key, "hello world"))
			redacted := strings.HasPrefix(got.Value.String(), "[REDACTED")
			if redacted != tc.redact {
				t.Fatalf("RedactAttr(%q) = %q, redact=%v want %v", tc.key, got.Value.String(), redacted, tc.redact)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   LevelDebug,
		"":        LevelInfo,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func captureStderr(t *testing.T, terminal bool, logFile io.Writer, fn func()) string {
	t.Helper()
	prevIsTerminal := isTerminal
	isTerminal = func(_ int) bool { return terminal }
	prevStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stderr = w
	defer func() {
		os.Stderr = prevStderr
		isTerminal = prevIsTerminal
		Init(LevelInfo, nil)
	}()

	Init(LevelInfo, logFile)
	fn()

	_ = w.Close()
	out, _ := io.ReadAll(r)
	return string(out)
}

func TestPrettyHandler_NoColorWhenNotTTY(t *testing.T) {
	out := captureStderr(t, false, nil, func() {
		Info("test message", "key", "value")
	})
	if strings.Contains(out, "\033[") {
		t.Fatalf("unexpected ANSI codes in output: %q", out)
	}
	if !strings.Contains(out, "test message") {
		t.Fatalf("message missing from output: %q", out)
	}
}

func TestInit_LogFileReceivesRedactedJSON(t *testing.T) {
	var logBuf bytes.Buffer
	out := captureStderr(t, true, &logBuf, func() {
		Info("document loaded", "path", "notes.txt", "text", "dear diary")
	})
	if strings.Contains(out, "\033[") {
		t.Fatalf("unexpected ANSI codes in console output: %q", out)
	}
	if strings.Contains(logBuf.String(), "dear diary") || strings.Contains(out, "dear diary") {
		t.Fatalf("document text leaked into logs")
	}
	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(logBuf.Bytes()), &rec); err != nil {
		t.Fatalf("log file line is not JSON: %v (%q)", err, logBuf.String())
	}
	if rec["path"] != "notes.txt" {
		t.Fatalf("path attr = %v, want notes.txt", rec["path"])
	}
}

func TestFatal_LogsThenExits(t *testing.T) {
	code := -1
	prevExit := exit
	exit = func(c int) { code = c }
	defer func() { exit = prevExit }()

	out := captureStderr(t, false, nil, func() {
		Fatal("Unrecovered GUI panic", "scope", "main")
	})
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(out, "Unrecovered GUI panic") || !strings.Contains(out, "scope=main") {
		t.Fatalf("fatal message missing from output: %q", out)
	}
}
