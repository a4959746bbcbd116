package document

import (
	"context"
	"fmt"

	"github.com/oukeidos/skriv/internal/apperrors"
)

// Command is a document-level menu action.
type Command int

const (
	CommandNew Command = iota
	CommandOpen
	CommandSave
	CommandSaveAs
	CommandExit
	CommandClose
)

var commandNames = map[Command]string{
	CommandNew:    "new",
	CommandOpen:   "open",
	CommandSave:   "save",
	CommandSaveAs: "saveas",
	CommandExit:   "exit",
	CommandClose:  "close",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Dispatch runs cmd. Open and SaveAs ask the prompter for their path.
func (d *Document) Dispatch(ctx context.Context, p Prompter, cmd Command) (Outcome, error) {
	switch cmd {
	case CommandNew:
		return d.RequestNew(ctx, p)
	case CommandOpen:
		return d.RequestOpen(ctx, p, "")
	case CommandSave:
		return d.Save(ctx, p)
	case CommandSaveAs:
		return d.SaveAs(ctx, p, "")
	case CommandExit:
		return d.RequestExit(ctx, p)
	case CommandClose:
		return d.RequestClose(ctx, p)
	}
	return Cancelled, apperrors.Validation(fmt.Sprintf("unknown command %s", cmd))
}
