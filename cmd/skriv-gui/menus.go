package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/oukeidos/skriv/internal/document"
)

func shortcutFor(key fyne.KeyName) *desktop.CustomShortcut {
	return &desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierShortcutDefault}
}

var documentShortcuts = map[string]document.Command{
	shortcutFor(fyne.KeyN).ShortcutName(): document.CommandNew,
	shortcutFor(fyne.KeyO).ShortcutName(): document.CommandOpen,
	shortcutFor(fyne.KeyS).ShortcutName(): document.CommandSave,
	(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift}).ShortcutName(): document.CommandSaveAs,
}

func (a *skrivApp) buildMainMenu() *fyne.MainMenu {
	newItem := fyne.NewMenuItem("New", func() { a.dispatch(document.CommandNew) })
	newItem.Shortcut = shortcutFor(fyne.KeyN)
	openItem := fyne.NewMenuItem("Open…", func() { a.dispatch(document.CommandOpen) })
	openItem.Shortcut = shortcutFor(fyne.KeyO)
	saveItem := fyne.NewMenuItem("Save", func() { a.dispatch(document.CommandSave) })
	saveItem.Shortcut = shortcutFor(fyne.KeyS)
	saveAsItem := fyne.NewMenuItem("Save As…", func() { a.dispatch(document.CommandSaveAs) })
	exitItem := fyne.NewMenuItem("Exit", func() { a.requestQuit(document.CommandExit) })
	exitItem.IsQuit = true

	fileMenu := fyne.NewMenu("File", newItem, openItem, saveItem, saveAsItem, fyne.NewMenuItemSeparator(), exitItem)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", func() { a.editCommand(&fyne.ShortcutUndo{}) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Cut", func() { a.editCommand(&fyne.ShortcutCut{Clipboard: a.window.Clipboard()}) }),
		fyne.NewMenuItem("Copy", func() { a.editCommand(&fyne.ShortcutCopy{Clipboard: a.window.Clipboard()}) }),
		fyne.NewMenuItem("Paste", func() { a.editCommand(&fyne.ShortcutPaste{Clipboard: a.window.Clipboard()}) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Select All", func() { a.editCommand(&fyne.ShortcutSelectAll{}) }),
	)

	a.wrapItem = fyne.NewMenuItem("Word Wrap", a.toggleWrap)
	a.wrapItem.Checked = a.config.WordWrap
	viewMenu := fyne.NewMenu("View", a.wrapItem)

	helpMenu := fyne.NewMenu("Help", fyne.NewMenuItem("About skriv", a.showAbout))

	return fyne.NewMainMenu(fileMenu, editMenu, viewMenu, helpMenu)
}

// registerShortcuts makes the document shortcuts work when the editor is not focused.
func (a *skrivApp) registerShortcuts() {
	for _, s := range []*desktop.CustomShortcut{
		shortcutFor(fyne.KeyN),
		shortcutFor(fyne.KeyO),
		shortcutFor(fyne.KeyS),
		{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift},
	} {
		a.window.Canvas().AddShortcut(s, func(s fyne.Shortcut) { a.handleShortcut(s) })
	}
}

func (a *skrivApp) handleShortcut(s fyne.Shortcut) bool {
	cmd, ok := documentShortcuts[s.ShortcutName()]
	if !ok {
		return false
	}
	a.dispatch(cmd)
	return true
}

// editCommand forwards a clipboard or undo action to the editor widget.
func (a *skrivApp) editCommand(s fyne.Shortcut) {
	if a.busy {
		return
	}
	a.window.Canvas().Focus(a.editor)
	a.editor.TypedShortcut(s)
}
