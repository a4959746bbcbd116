package document

import (
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/oukeidos/skriv/internal/logger"
)

// UntitledName is the display name of a document that has never been saved.
const UntitledName = "dok1.txt"

// Store persists whole documents.
type Store interface {
	ReadFile(path string) (string, error)
	WriteFile(path, content string) error
}

// Document is the in-memory state of the open file. It is not safe for
// concurrent use; shells drive it from one goroutine at a time.
type Document struct {
	store Store
	id    string
	log   *slog.Logger

	text        string
	path        string
	savedBefore bool
	unsaved     bool
}

// New returns an empty, clean, untitled document backed by store.
func New(store Store) *Document {
	id := uuid.NewString()
	if u, err := uuid.NewV7(); err == nil {
		id = u.String()
	}
	return &Document{
		store: store,
		id:    id,
		log:   logger.With("doc_id", id),
	}
}

func (d *Document) ID() string   { return d.id }
func (d *Document) Text() string { return d.text }

// Path returns the file the document is bound to, if any.
func (d *Document) Path() (string, bool) {
	if !d.savedBefore {
		return "", false
	}
	return d.path, true
}

func (d *Document) HasBeenSavedBefore() bool { return d.savedBefore }
func (d *Document) HasUnsavedChanges() bool  { return d.unsaved }

// DisplayName is the file's base name, or UntitledName.
func (d *Document) DisplayName() string {
	if !d.savedBefore {
		return UntitledName
	}
	return filepath.Base(d.path)
}

// Title is the window title: the display name, with a trailing '*' while
// there are unsaved changes.
func (d *Document) Title() string {
	if d.unsaved {
		return d.DisplayName() + "*"
	}
	return d.DisplayName()
}

// OnContentChanged marks the document dirty. Repeated calls have no further effect.
func (d *Document) OnContentChanged() {
	if !d.unsaved {
		d.log.Debug("Document has unsaved changes", "path", d.path)
	}
	d.unsaved = true
}

// Edit replaces the text snapshot with the editor's current content.
func (d *Document) Edit(text string) {
	if text == d.text {
		return
	}
	d.text = text
	d.OnContentChanged()
}

func (d *Document) reset() {
	d.text = ""
	d.path = ""
	d.savedBefore = false
	d.unsaved = false
	d.log.Info("New document")
}

func (d *Document) load(path, content string) {
	d.text = content
	d.path = path
	d.savedBefore = true
	d.unsaved = false
	d.log.Info("Document loaded", "path", path, "bytes", len(content))
}
