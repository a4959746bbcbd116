package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/oukeidos/skriv/internal/logger"
)

func withPanicGuard(scope string, onPanic func(any), fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered panic", "scope", scope, "panic", fmt.Sprint(r))
			if onPanic != nil {
				onPanic(r)
			}
		}
	}()
	fn()
}

// onPanic is the recovery hook for scope. A nil app only logs.
func (a *skrivApp) onPanic(scope string) func(any) {
	if a == nil {
		return nil
	}
	return func(any) { a.releaseAfterPanic(scope) }
}

// safeGo runs a document operation off the UI goroutine.
func (a *skrivApp) safeGo(scope string, fn func()) {
	go withPanicGuard(scope, a.onPanic(scope), fn)
}

// safeDo hands fn to the UI goroutine.
func (a *skrivApp) safeDo(scope string, fn func()) {
	dispatch := scope + ".dispatch"
	withPanicGuard(dispatch, a.onPanic(dispatch), func() {
		fyne.Do(func() {
			withPanicGuard(scope, a.onPanic(scope), fn)
		})
	})
}

// releaseAfterPanic clears the busy flag and re-enables the editor so the
// user can still save. The notice is shown once per run.
func (a *skrivApp) releaseAfterPanic(scope string) {
	if fyne.CurrentApp() == nil {
		return
	}
	fyne.Do(func() {
		a.busy = false
		if a.editor != nil {
			a.editor.Enable()
		}
		if a.window == nil {
			return
		}
		a.panicNoticeOnce.Do(func() {
			dialog.ShowInformation(
				"Unexpected Error",
				"An internal error stopped the last action ("+scope+"). Your text is still in the editor; save it and restart the app if this repeats.",
				a.window,
			)
		})
	})
}
