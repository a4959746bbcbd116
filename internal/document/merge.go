package document

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/oukeidos/skriv/internal/apperrors"
)

// MergeMode selects how a dropped file combines with the open document.
type MergeMode int

const (
	MergeReplace MergeMode = iota
	MergeAppend
	MergeInsertAtCursor
)

func (m MergeMode) String() string {
	switch m {
	case MergeReplace:
		return "replace"
	case MergeAppend:
		return "append"
	case MergeInsertAtCursor:
		return "insert"
	}
	return fmt.Sprintf("MergeMode(%d)", int(m))
}

// ParseMergeMode accepts the names returned by MergeMode.String.
func ParseMergeMode(s string) (MergeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "replace":
		return MergeReplace, nil
	case "append":
		return MergeAppend, nil
	case "insert":
		return MergeInsertAtCursor, nil
	}
	return MergeReplace, apperrors.Validation(fmt.Sprintf("unknown merge mode %q (want append, insert or replace)", s))
}

// MergeDroppedFile combines the file at path with the document. cursor is a
// rune offset into the current text and is only used by MergeInsertAtCursor.
//
// Append and insert only add text, so they never ask about unsaved changes.
// Replace behaves like RequestOpen on path. The file is read before anything
// else happens, so an unreadable drop never prompts.
func (d *Document) MergeDroppedFile(ctx context.Context, p Prompter, path string, mode MergeMode, cursor int) (Outcome, error) {
	switch mode {
	case MergeReplace, MergeAppend, MergeInsertAtCursor:
	default:
		return Cancelled, apperrors.Validation(fmt.Sprintf("unknown merge mode %d", int(mode)))
	}

	content, err := d.read(path)
	if err != nil {
		return Cancelled, err
	}

	switch mode {
	case MergeAppend:
		d.Edit(d.text + content)
	case MergeInsertAtCursor:
		at := byteOffset(d.text, cursor)
		d.Edit(d.text[:at] + content + d.text[at:])
	case MergeReplace:
		return d.gateAndLoad(ctx, p, path, content)
	}
	d.log.Info("Dropped file merged", "path", path, "mode", mode.String())
	return Done, nil
}

// byteOffset converts a rune offset into a byte index, clamped to text.
func byteOffset(text string, runes int) int {
	if runes <= 0 {
		return 0
	}
	i := 0
	for n := 0; n < runes && i < len(text); n++ {
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return i
}
