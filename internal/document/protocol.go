package document

import (
	"context"
	"fmt"

	"github.com/oukeidos/skriv/internal/apperrors"
)

// Decision is the user's answer when unsaved changes are about to be discarded.
type Decision int

const (
	DecisionCancel Decision = iota
	DecisionSave
	DecisionDiscard
)

func (d Decision) String() string {
	switch d {
	case DecisionSave:
		return "save"
	case DecisionDiscard:
		return "discard"
	default:
		return "cancel"
	}
}

// ParseDecision maps "save", "discard" and "cancel" to a Decision.
func ParseDecision(s string) (Decision, error) {
	switch s {
	case "save":
		return DecisionSave, nil
	case "discard":
		return DecisionDiscard, nil
	case "cancel":
		return DecisionCancel, nil
	}
	return DecisionCancel, apperrors.Validation(fmt.Sprintf("unknown decision %q (want save, discard or cancel)", s))
}

// Outcome reports whether an operation ran to completion.
type Outcome int

const (
	Done Outcome = iota
	Cancelled
)

func (o Outcome) String() string {
	if o == Done {
		return "done"
	}
	return "cancelled"
}

// Prompter is the shell's side of the save-confirmation protocol. Methods may
// block until the user answers.
//
// Path choosers return "" when the user dismisses the dialog. Returning an
// apperrors.KindCancelled error is treated the same way.
type Prompter interface {
	ConfirmUnsaved(ctx context.Context, name string) (Decision, error)
	ChooseOpenPath(ctx context.Context) (string, error)
	ChooseSavePath(ctx context.Context, suggested string) (string, error)
}

// cancelledOr folds a cancellation error into Outcome Cancelled.
func cancelledOr(err error) (Outcome, error) {
	if err == nil || apperrors.IsCancelled(err) {
		return Cancelled, nil
	}
	return Cancelled, err
}

// confirmDiscard runs the save-confirmation protocol. A clean document
// proceeds without asking.
func (d *Document) confirmDiscard(ctx context.Context, p Prompter) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Cancelled, nil
	}
	if !d.unsaved {
		return Done, nil
	}
	if p == nil {
		return Cancelled, apperrors.Validation("unsaved changes need a prompter")
	}

	decision, err := p.ConfirmUnsaved(ctx, d.DisplayName())
	if err != nil {
		return cancelledOr(err)
	}
	d.log.Debug("Unsaved changes decision", "decision", decision.String())

	switch decision {
	case DecisionSave:
		// A dismissed save dialog cancels the caller too.
		return d.Save(ctx, p)
	case DecisionDiscard:
		return Done, nil
	default:
		return Cancelled, nil
	}
}
