package document

import (
	"context"
	"testing"

	"github.com/oukeidos/skriv/internal/apperrors"
)

func TestDispatch(t *testing.T) {
	store := newMemStore()
	store.files["/in.txt"] = "loaded"
	d := New(store)
	p := &scriptedPrompter{
		openPaths: []string{"/in.txt"},
		savePaths: []string{"/out.txt"},
	}
	ctx := context.Background()

	steps := []struct {
		cmd  Command
		want Outcome
	}{
		{CommandOpen, Done},
		{CommandSaveAs, Done},
		{CommandSave, Done},
		{CommandNew, Done},
		{CommandClose, Done},
		{CommandExit, Done},
	}
	for _, s := range steps {
		out, err := d.Dispatch(ctx, p, s.cmd)
		if err != nil || out != s.want {
			t.Fatalf("Dispatch(%s) = %v, %v", s.cmd, out, err)
		}
	}
	if store.files["/out.txt"] != "loaded" {
		t.Fatalf("save as did not write: %q", store.files["/out.txt"])
	}
	if p.confirmCalls != 0 {
		t.Fatalf("clean document should never prompt, got %d", p.confirmCalls)
	}
}

func TestDispatch_Unknown(t *testing.T) {
	d := New(newMemStore())
	out, err := d.Dispatch(context.Background(), nil, Command(99))
	if out != Cancelled || !apperrors.Is(err, apperrors.KindValidation) {
		t.Fatalf("Dispatch(unknown) = %v, %v", out, err)
	}
	if Command(99).String() != "Command(99)" {
		t.Fatalf("String() = %q", Command(99).String())
	}
}
