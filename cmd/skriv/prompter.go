package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oukeidos/skriv/internal/document"
	"github.com/oukeidos/skriv/internal/prompt"
	"github.com/spf13/cobra"
)

var unsavedPolicies = []string{"ask", "save", "discard", "cancel"}

// newConfirmer is replaced in tests.
var newConfirmer = func(cmd *cobra.Command) *prompt.Confirmer {
	c := prompt.DefaultConfirmer()
	c.In = cmd.InOrStdin()
	c.Out = cmd.OutOrStdout()
	return c
}

// cliPrompter answers the document's questions from the terminal or from a
// fixed --on-unsaved policy.
type cliPrompter struct {
	confirm *prompt.Confirmer
	policy  string
	yes     bool
}

func validatePolicy(policy string) error {
	for _, p := range unsavedPolicies {
		if policy == p {
			return nil
		}
	}
	return fmt.Errorf("invalid --on-unsaved %q (want %s)", policy, strings.Join(unsavedPolicies, ", "))
}

func (p *cliPrompter) ConfirmUnsaved(_ context.Context, name string) (document.Decision, error) {
	if p.policy != "ask" {
		return document.ParseDecision(p.policy)
	}
	answer, err := p.confirm.Choose(fmt.Sprintf("Save changes to %s?", name), "save", "discard", "cancel")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return document.DecisionCancel, nil
		}
		if errors.Is(err, prompt.ErrNotInteractive) {
			return document.DecisionCancel, fmt.Errorf("%w: use --on-unsaved save|discard|cancel", err)
		}
		return document.DecisionCancel, err
	}
	return document.ParseDecision(answer)
}

func (p *cliPrompter) ChooseOpenPath(context.Context) (string, error) {
	return p.readPath("Open file (empty to cancel): ")
}

func (p *cliPrompter) ChooseSavePath(_ context.Context, suggested string) (string, error) {
	path, err := p.readPath(fmt.Sprintf("Save as, e.g. %s (empty to cancel): ", suggested))
	if err != nil || path == "" {
		return "", err
	}
	ok, err := p.approveTarget(path, "")
	if err != nil || !ok {
		return "", err
	}
	return path, nil
}

func (p *cliPrompter) readPath(question string) (string, error) {
	line, err := p.confirm.Line(question)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// approveTarget asks before replacing an existing file other than current.
func (p *cliPrompter) approveTarget(path, current string) (bool, error) {
	if path == current {
		return true, nil
	}
	if _, err := os.Stat(path); err != nil {
		return true, nil
	}
	return p.confirm.ConfirmOverwrite(path, p.yes)
}
