package document

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/oukeidos/skriv/internal/apperrors"
)

// RequestNew replaces the document with an empty untitled one.
func (d *Document) RequestNew(ctx context.Context, p Prompter) (Outcome, error) {
	if out, err := d.confirmDiscard(ctx, p); out != Done || err != nil {
		return out, err
	}
	d.reset()
	return Done, nil
}

// RequestOpen loads path into the document. An empty path asks the prompter
// for one. The file is read before the unsaved-changes check, so a file that
// cannot be read never prompts and never saves the current document.
func (d *Document) RequestOpen(ctx context.Context, p Prompter, path string) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Cancelled, nil
	}
	if path == "" {
		if p == nil {
			return Cancelled, apperrors.Validation("no file to open")
		}
		chosen, err := p.ChooseOpenPath(ctx)
		if err != nil || chosen == "" {
			return cancelledOr(err)
		}
		path = chosen
	}

	content, err := d.read(path)
	if err != nil {
		return Cancelled, err
	}
	return d.gateAndLoad(ctx, p, path, content)
}

// gateAndLoad runs the unsaved-changes check and then loads content, which
// was read from path beforehand.
func (d *Document) gateAndLoad(ctx context.Context, p Prompter, path, content string) (Outcome, error) {
	wasDirty := d.unsaved
	if out, err := d.confirmDiscard(ctx, p); out != Done || err != nil {
		return out, err
	}
	// Saving onto path itself replaced what was read.
	if wasDirty && !d.unsaved && filepath.Clean(d.path) == filepath.Clean(path) {
		content = d.text
	}
	d.load(path, content)
	return Done, nil
}

// Save writes the text to the bound file, or falls back to SaveAs for a
// document that has never been saved.
func (d *Document) Save(ctx context.Context, p Prompter) (Outcome, error) {
	if !d.savedBefore {
		return d.SaveAs(ctx, p, "")
	}
	if err := d.write(d.path); err != nil {
		return Cancelled, err
	}
	d.unsaved = false
	d.log.Info("Document saved", "path", d.path)
	return Done, nil
}

// SaveAs writes the text to path and binds the document to it. An empty path
// asks the prompter, suggesting the current file or UntitledName.
func (d *Document) SaveAs(ctx context.Context, p Prompter, path string) (Outcome, error) {
	if path == "" {
		if p == nil {
			return Cancelled, apperrors.Validation("no file to save to")
		}
		suggested := UntitledName
		if d.savedBefore {
			suggested = d.path
		}
		chosen, err := p.ChooseSavePath(ctx, suggested)
		if err != nil || chosen == "" {
			return cancelledOr(err)
		}
		path = chosen
	}

	if err := d.write(path); err != nil {
		return Cancelled, err
	}
	d.path = path
	d.savedBefore = true
	d.unsaved = false
	d.log.Info("Document saved as", "path", path)
	return Done, nil
}

// RequestExit reports whether the application may exit.
func (d *Document) RequestExit(ctx context.Context, p Prompter) (Outcome, error) {
	return d.confirmDiscard(ctx, p)
}

// RequestClose reports whether the window may close.
func (d *Document) RequestClose(ctx context.Context, p Prompter) (Outcome, error) {
	return d.confirmDiscard(ctx, p)
}

func (d *Document) read(path string) (string, error) {
	content, err := d.store.ReadFile(path)
	if err != nil {
		d.log.Error("Read failed", "path", path, "error", err)
		return "", apperrors.IO(fmt.Sprintf("Could not open %q.", filepath.Base(path)), err)
	}
	return content, nil
}

func (d *Document) write(path string) error {
	if err := d.store.WriteFile(path, d.text); err != nil {
		d.log.Error("Write failed", "path", path, "error", err)
		return apperrors.IO(fmt.Sprintf("Could not save %q.", filepath.Base(path)), err)
	}
	return nil
}
