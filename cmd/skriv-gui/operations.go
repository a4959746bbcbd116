package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/oukeidos/skriv/internal/apperrors"
	"github.com/oukeidos/skriv/internal/document"
	"github.com/oukeidos/skriv/internal/files"
	"github.com/oukeidos/skriv/internal/logger"
)

// runDocOp runs op on a worker goroutine with the editor disabled, then
// refreshes the window. Requests made while an operation is running are dropped.
func (a *skrivApp) runDocOp(scope string, op func(ctx context.Context) (document.Outcome, error), after func(document.Outcome)) {
	if a.busy {
		logger.Debug("Document busy; request ignored", "scope", scope)
		return
	}
	a.busy = true
	a.editor.Disable()

	ctx := a.ctx
	a.safeGo(scope, func() {
		out, err := op(ctx)
		a.safeDo(scope+".done", func() {
			a.finishOp()
			if err != nil {
				a.showError(err)
				return
			}
			if after != nil {
				after(out)
			}
		})
	})
}

func (a *skrivApp) finishOp() {
	a.busy = false
	a.editor.Enable()
	a.syncFromDocument()
	a.window.Canvas().Focus(a.editor)
}

func (a *skrivApp) showError(err error) {
	if apperrors.IsCancelled(err) {
		return
	}
	logger.Warn("Document operation failed", "error", err)
	dialog.ShowError(errors.New(apperrors.PublicMessage(err)), a.window)
}

func (a *skrivApp) dispatch(cmd document.Command) {
	a.runDocOp("ops."+cmd.String(), func(ctx context.Context) (document.Outcome, error) {
		return a.doc.Dispatch(ctx, a.prompter, cmd)
	}, nil)
}

// requestQuit closes the application once unsaved changes are resolved.
func (a *skrivApp) requestQuit(cmd document.Command) {
	a.runDocOp("ops."+cmd.String(), func(ctx context.Context) (document.Outcome, error) {
		return a.doc.Dispatch(ctx, a.prompter, cmd)
	}, func(out document.Outcome) {
		if out != document.Done {
			return
		}
		a.rememberWindowSize()
		saveConfig(a.prefs, a.config)
		a.cancel()
		a.window.SetCloseIntercept(nil)
		a.window.Close()
		fyne.CurrentApp().Quit()
	})
}

func (a *skrivApp) rememberWindowSize() {
	size := a.window.Canvas().Size()
	if size.Width > 0 && size.Height > 0 {
		a.config.WindowWidth = int(size.Width)
		a.config.WindowHeight = int(size.Height)
	}
}

func (a *skrivApp) openAtStart(path string) {
	a.runDocOp("ops.open_start", func(ctx context.Context) (document.Outcome, error) {
		return a.doc.RequestOpen(ctx, a.prompter, path)
	}, nil)
}

func (a *skrivApp) handleDropped(uris []fyne.URI) {
	if len(uris) == 0 || a.busy {
		return
	}
	uri := uris[0]
	if uri.Scheme() != "file" || !files.HasTextExtension(uri.Path()) {
		a.showError(apperrors.Validation(fmt.Sprintf("Only %s files can be dropped here.", files.TextExtension)))
		return
	}

	path := uri.Path()
	mode := dropModeFor(currentModifiers())
	cursor := a.editor.cursorOffset()
	logger.Debug("File dropped", "path", filepath.Base(path), "mode", mode.String())
	a.runDocOp("ops.drop", func(ctx context.Context) (document.Outcome, error) {
		return a.doc.MergeDroppedFile(ctx, a.prompter, path, mode, cursor)
	}, nil)
}

func currentModifiers() fyne.KeyModifier {
	app := fyne.CurrentApp()
	if app == nil {
		return 0
	}
	if d, ok := app.Driver().(desktop.Driver); ok {
		return d.CurrentKeyModifiers()
	}
	return 0
}

// dropModeFor maps held modifier keys to a merge mode: the platform shortcut
// key appends, Shift inserts at the caret, anything else replaces.
func dropModeFor(mods fyne.KeyModifier) document.MergeMode {
	switch {
	case mods&fyne.KeyModifierShortcutDefault != 0:
		return document.MergeAppend
	case mods&fyne.KeyModifierShift != 0:
		return document.MergeInsertAtCursor
	default:
		return document.MergeReplace
	}
}
