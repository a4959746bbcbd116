package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/oukeidos/skriv/internal/apperrors"
	"github.com/oukeidos/skriv/internal/document"
	"github.com/oukeidos/skriv/internal/files"
	"github.com/oukeidos/skriv/internal/logger"
)

// dialogPrompter answers document questions with fyne dialogs. Its methods
// run on the operation worker and block until the dialog is answered. File
// dialogs report dismissal through their callback with a nil reader or writer.
type dialogPrompter struct {
	app *skrivApp
}

// await shows a dialog on the UI goroutine and waits for its answer.
func await[T any](ctx context.Context, a *skrivApp, scope string, show func(reply func(T))) (T, error) {
	ch := make(chan T, 1)
	var once sync.Once
	reply := func(v T) {
		once.Do(func() { ch <- v })
	}
	a.safeDo(scope, func() { show(reply) })

	select {
	case v := <-ch:
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, apperrors.Cancelled(ctx.Err())
	}
}

func (p *dialogPrompter) ConfirmUnsaved(ctx context.Context, name string) (document.Decision, error) {
	w := p.app.window
	return await(ctx, p.app, "prompt.unsaved", func(reply func(document.Decision)) {
		message := widget.NewLabel(fmt.Sprintf("Do you want to save changes to %s?", name))
		d := dialog.NewCustomWithoutButtons("skriv", message, w)
		answer := func(decision document.Decision) func() {
			return func() {
				reply(decision)
				d.Hide()
			}
		}
		save := widget.NewButton("Save", answer(document.DecisionSave))
		save.Importance = widget.HighImportance
		d.SetButtons([]fyne.CanvasObject{
			save,
			widget.NewButton("Don't Save", answer(document.DecisionDiscard)),
			widget.NewButton("Cancel", answer(document.DecisionCancel)),
		})
		d.SetOnClosed(func() { reply(document.DecisionCancel) })
		d.Show()
	})
}

func (p *dialogPrompter) ChooseOpenPath(ctx context.Context) (string, error) {
	a := p.app
	return await(ctx, a, "prompt.open", func(reply func(string)) {
		fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				if err != nil {
					logger.Warn("Open dialog failed", "error", err)
				}
				reply("")
				return
			}
			path := reader.URI().Path()
			reader.Close()
			reply(path)
		}, a.window)
		fd.SetFilter(storage.NewExtensionFileFilter([]string{files.TextExtension}))
		setDialogLocation(fd, a.config.LastDir)
		fd.Show()
	})
}

func (p *dialogPrompter) ChooseSavePath(ctx context.Context, suggested string) (string, error) {
	a := p.app
	dir, name := suggestSaveTarget(suggested, a.config.LastDir)
	return await(ctx, a, "prompt.save", func(reply func(string)) {
		fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				if err != nil {
					logger.Warn("Save dialog failed", "error", err)
				}
				reply("")
				return
			}
			path := writer.URI().Path()
			writer.Close()
			target := withTextExtension(path)
			if target != path {
				removeEmpty(path)
			}
			reply(target)
		}, a.window)
		fd.SetFilter(storage.NewExtensionFileFilter([]string{files.TextExtension}))
		fd.SetFileName(name)
		setDialogLocation(fd, dir)
		fd.Show()
	})
}

type locatable interface {
	SetLocation(fyne.ListableURI)
}

func setDialogLocation(fd locatable, dir string) {
	if dir == "" {
		return
	}
	if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
		fd.SetLocation(lister)
	}
}

// suggestSaveTarget picks the directory and file name offered by the save
// dialog. An untitled document gets a name that does not collide with an
// existing file in lastDir.
func suggestSaveTarget(suggested, lastDir string) (string, string) {
	if filepath.IsAbs(suggested) {
		return filepath.Dir(suggested), filepath.Base(suggested)
	}
	if lastDir == "" {
		return "", suggested
	}
	if info, err := os.Stat(lastDir); err != nil || !info.IsDir() {
		return "", suggested
	}
	safe, _, err := files.SafePath(filepath.Join(lastDir, suggested))
	if err != nil {
		return lastDir, suggested
	}
	return lastDir, filepath.Base(safe)
}

// removeEmpty deletes the placeholder the save dialog created under the
// name the user typed, once the document goes to a .txt sibling instead.
func removeEmpty(path string) {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() && info.Size() == 0 {
		if err := os.Remove(path); err != nil {
			logger.Warn("Could not remove empty save placeholder", "path", path, "error", err)
		}
	}
}

func withTextExtension(path string) string {
	if filepath.Ext(path) == "" {
		return path + files.TextExtension
	}
	return path
}
