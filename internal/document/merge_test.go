package document

import (
	"context"
	"testing"

	"github.com/oukeidos/skriv/internal/apperrors"
)

func openedDoc(t *testing.T, store *memStore, path, content string) *Document {
	t.Helper()
	store.files[path] = content
	d := New(store)
	if _, err := d.RequestOpen(context.Background(), nil, path); err != nil {
		t.Fatalf("RequestOpen: %v", err)
	}
	return d
}

func TestMergeDroppedFile_Append(t *testing.T) {
	store := newMemStore()
	d := openedDoc(t, store, "/a.txt", "first\n")
	store.files["/b.txt"] = "second"
	p := &scriptedPrompter{}

	out, err := d.MergeDroppedFile(context.Background(), p, "/b.txt", MergeAppend, 0)
	if err != nil || out != Done {
		t.Fatalf("MergeDroppedFile() = %v, %v", out, err)
	}
	if d.Text() != "first\nsecond" || !d.HasUnsavedChanges() {
		t.Fatalf("unexpected state: %+v", snap(d))
	}
	if path, _ := d.Path(); path != "/a.txt" {
		t.Fatalf("append should keep the bound path, got %q", path)
	}
	if p.confirmCalls != 0 {
		t.Fatalf("append should not prompt")
	}
}

func TestMergeDroppedFile_InsertAtCursor(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		cursor int
		want   string
	}{
		{name: "start", text: "abc", cursor: 0, want: "XXabc"},
		{name: "middle", text: "abc", cursor: 1, want: "aXXbc"},
		{name: "end", text: "abc", cursor: 3, want: "abcXX"},
		{name: "past end clamps", text: "abc", cursor: 99, want: "abcXX"},
		{name: "negative clamps", text: "abc", cursor: -4, want: "XXabc"},
		{name: "runes not bytes", text: "åäö", cursor: 2, want: "åäXXö"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			store.files["/drop.txt"] = "XX"
			d := New(store)
			d.Edit(tt.text)
			out, err := d.MergeDroppedFile(context.Background(), nil, "/drop.txt", MergeInsertAtCursor, tt.cursor)
			if err != nil || out != Done {
				t.Fatalf("MergeDroppedFile() = %v, %v", out, err)
			}
			if d.Text() != tt.want {
				t.Fatalf("text = %q, want %q", d.Text(), tt.want)
			}
		})
	}
}

func TestMergeDroppedFile_ReplaceGates(t *testing.T) {
	store := newMemStore()
	d := New(store)
	d.Edit("mine")
	store.files["/drop.txt"] = "theirs"
	before := snap(d)

	p := &scriptedPrompter{decisions: []Decision{DecisionCancel}}
	out, err := d.MergeDroppedFile(context.Background(), p, "/drop.txt", MergeReplace, 0)
	if err != nil || out != Cancelled || snap(d) != before {
		t.Fatalf("cancelled replace: %v, %v, %+v", out, err, snap(d))
	}

	p = &scriptedPrompter{decisions: []Decision{DecisionDiscard}}
	out, err = d.MergeDroppedFile(context.Background(), p, "/drop.txt", MergeReplace, 0)
	if err != nil || out != Done {
		t.Fatalf("MergeDroppedFile() = %v, %v", out, err)
	}
	path, ok := d.Path()
	if d.Text() != "theirs" || !ok || path != "/drop.txt" || d.HasUnsavedChanges() {
		t.Fatalf("replace should load like open: %+v", snap(d))
	}
}

func TestMergeDroppedFile_UnreadableNeverPrompts(t *testing.T) {
	d := New(newMemStore())
	d.Edit("mine")
	before := snap(d)
	p := &scriptedPrompter{decisions: []Decision{DecisionDiscard}}

	out, err := d.MergeDroppedFile(context.Background(), p, "/nope.txt", MergeReplace, 0)
	if out != Cancelled || !apperrors.Is(err, apperrors.KindIO) {
		t.Fatalf("MergeDroppedFile() = %v, %v", out, err)
	}
	if p.confirmCalls != 0 || snap(d) != before {
		t.Fatalf("unreadable drop prompted or mutated: %d, %+v", p.confirmCalls, snap(d))
	}
}

func TestMergeDroppedFile_EmptyAppendStaysClean(t *testing.T) {
	store := newMemStore()
	d := openedDoc(t, store, "/a.txt", "x")
	store.files["/empty.txt"] = ""
	if _, err := d.MergeDroppedFile(context.Background(), nil, "/empty.txt", MergeAppend, 0); err != nil {
		t.Fatalf("MergeDroppedFile: %v", err)
	}
	if d.HasUnsavedChanges() {
		t.Fatalf("appending nothing should not dirty the document")
	}
}

func TestMergeDroppedFile_UnknownMode(t *testing.T) {
	d := New(newMemStore())
	_, err := d.MergeDroppedFile(context.Background(), nil, "/a.txt", MergeMode(42), 0)
	if !apperrors.Is(err, apperrors.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseMergeMode(t *testing.T) {
	tests := map[string]MergeMode{
		"append":   MergeAppend,
		" Insert ": MergeInsertAtCursor,
		"replace":  MergeReplace,
	}
	for in, want := range tests {
		got, err := ParseMergeMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseMergeMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseMergeMode("overwrite"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
