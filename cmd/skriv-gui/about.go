package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/oukeidos/skriv/internal/version"
)

func (a *skrivApp) showAbout() {
	form := widget.NewForm(
		widget.NewFormItem("App", widget.NewLabel("skriv")),
		widget.NewFormItem("Version", widget.NewLabel(version.Version)),
		widget.NewFormItem("Commit", widget.NewLabel(version.Commit)),
		widget.NewFormItem("Build", widget.NewLabel(version.BuildDate)),
	)
	hint := widget.NewLabelWithStyle(
		"Drop a .txt file to open it. Hold Ctrl (Cmd on macOS) to append it, or Shift to insert it at the cursor.",
		fyne.TextAlignLeading, fyne.TextStyle{Italic: true},
	)
	hint.Wrapping = fyne.TextWrapWord

	d := dialog.NewCustom("About skriv", "Close", container.NewVBox(form, hint), a.window)
	d.Resize(fyne.NewSize(420, 0))
	d.Show()
}
