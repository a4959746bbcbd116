package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// editorEntry is the multi-line text surface. Application shortcuts are
// offered to onShortcut first so they still work while the entry has focus.
type editorEntry struct {
	widget.Entry
	onShortcut func(fyne.Shortcut) bool
}

func newEditorEntry(onShortcut func(fyne.Shortcut) bool) *editorEntry {
	e := &editorEntry{onShortcut: onShortcut}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapWord
	e.ExtendBaseWidget(e)
	return e
}

func (e *editorEntry) TypedShortcut(s fyne.Shortcut) {
	if e.onShortcut != nil && e.onShortcut(s) {
		return
	}
	e.Entry.TypedShortcut(s)
}

// cursorOffset is the caret position as a rune offset into the text.
func (e *editorEntry) cursorOffset() int {
	return offsetForCursor(e.Text, e.CursorRow, e.CursorColumn)
}

// offsetForCursor converts a row/column caret into a rune offset. Rows are
// separated by '\n'; out-of-range positions clamp to the nearest valid offset.
func offsetForCursor(text string, row, col int) int {
	if row < 0 {
		row = 0
	}
	if col < 0 {
		col = 0
	}
	offset, curRow, curCol := 0, 0, 0
	for _, r := range text {
		if curRow == row && curCol == col {
			return offset
		}
		if r == '\n' {
			if curRow == row {
				return offset
			}
			curRow++
			curCol = 0
		} else {
			curCol++
		}
		offset++
	}
	return offset
}
