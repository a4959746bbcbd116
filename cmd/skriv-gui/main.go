package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/oukeidos/skriv/internal/document"
	"github.com/oukeidos/skriv/internal/files"
	"github.com/oukeidos/skriv/internal/logger"
	"github.com/oukeidos/skriv/internal/textstats"
)

// sizedTheme applies the configured editor text size.
type sizedTheme struct {
	fyne.Theme
	textSize float32
}

func (m sizedTheme) Size(n fyne.ThemeSizeName) float32 {
	if n == theme.SizeNameText {
		return m.textSize
	}
	return m.Theme.Size(n)
}

type skrivApp struct {
	window   fyne.Window
	doc      *document.Document
	prompter *dialogPrompter
	config   AppConfig
	prefs    fyne.Preferences

	// UI components
	editor      *editorEntry
	statusLabel [4]*widget.Label
	mainMenu    *fyne.MainMenu
	wrapItem    *fyne.MenuItem

	// busy is owned by the UI goroutine; the document is touched by at most
	// one worker at a time.
	busy            bool
	ctx             context.Context
	cancel          context.CancelFunc
	panicNoticeOnce sync.Once
}

func newSkrivApp(w fyne.Window, prefs fyne.Preferences) *skrivApp {
	ctx, cancel := context.WithCancel(context.Background())
	a := &skrivApp{
		window: w,
		doc:    document.New(files.TextStore{}),
		prefs:  prefs,
		ctx:    ctx,
		cancel: cancel,
	}
	a.prompter = &dialogPrompter{app: a}
	a.config = loadConfig(prefs)
	a.setupUI()
	return a
}

func (a *skrivApp) setupUI() {
	a.editor = newEditorEntry(a.handleShortcut)
	a.applyWrap()
	a.editor.OnChanged = func(text string) {
		a.doc.Edit(text)
		a.refreshChrome()
	}

	for i := range a.statusLabel {
		a.statusLabel[i] = widget.NewLabel("")
	}
	status := container.NewHBox(
		a.statusLabel[0], widget.NewSeparator(),
		a.statusLabel[1], widget.NewSeparator(),
		a.statusLabel[2], widget.NewSeparator(),
		a.statusLabel[3],
	)

	a.mainMenu = a.buildMainMenu()
	a.window.SetMainMenu(a.mainMenu)
	a.registerShortcuts()
	a.window.SetContent(container.NewBorder(nil, status, nil, nil, a.editor))
	a.refreshChrome()
}

// syncFromDocument pushes document state into the widgets after an operation.
func (a *skrivApp) syncFromDocument() {
	if a.editor.Text != a.doc.Text() {
		a.editor.SetText(a.doc.Text())
	}
	if path, ok := a.doc.Path(); ok {
		a.config.LastDir = filepath.Dir(path)
	}
	a.refreshChrome()
}

func (a *skrivApp) refreshChrome() {
	a.window.SetTitle(a.doc.Title())
	for i, text := range statusTexts(textstats.Compute(a.doc.Text())) {
		a.statusLabel[i].SetText(text)
	}
}

func statusTexts(c textstats.Counts) [4]string {
	return [4]string{
		fmt.Sprintf("Letters (incl. spaces): %d", c.LettersInclSpaces),
		fmt.Sprintf("Letters (excl. spaces): %d", c.LettersExclSpaces),
		fmt.Sprintf("Words: %d", c.Words),
		fmt.Sprintf("Rows: %d", c.Rows),
	}
}

func (a *skrivApp) applyWrap() {
	if a.config.WordWrap {
		a.editor.Wrapping = fyne.TextWrapWord
	} else {
		a.editor.Wrapping = fyne.TextWrapOff
	}
	a.editor.Refresh()
}

func (a *skrivApp) toggleWrap() {
	a.config.WordWrap = !a.config.WordWrap
	a.applyWrap()
	a.wrapItem.Checked = a.config.WordWrap
	a.mainMenu.Refresh()
	saveConfig(a.prefs, a.config)
}

func main() {
	logger.Init(logger.LevelInfo, nil)
	defer func() {
		if r := recover(); r != nil {
			logger.Fatal("Unrecovered GUI panic", "scope", "main", "panic", fmt.Sprint(r))
		}
	}()

	myApp := app.NewWithID("com.skriv.app")
	myApp.SetIcon(theme.DocumentIcon())

	w := myApp.NewWindow(document.UntitledName)
	w.SetMaster()

	sa := newSkrivApp(w, myApp.Preferences())
	myApp.Settings().SetTheme(sizedTheme{Theme: theme.DefaultTheme(), textSize: sa.config.FontSize})
	w.Resize(fyne.NewSize(float32(sa.config.WindowWidth), float32(sa.config.WindowHeight)))
	w.CenterOnScreen()

	w.SetCloseIntercept(func() {
		sa.requestQuit(document.CommandClose)
	})
	w.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		sa.handleDropped(uris)
	})

	if len(os.Args) > 1 {
		sa.openAtStart(os.Args[1])
	}
	w.Canvas().Focus(sa.editor)
	w.ShowAndRun()
}
