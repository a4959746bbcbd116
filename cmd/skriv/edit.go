package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/muesli/reflow/wordwrap"
	"github.com/oukeidos/skriv/internal/apperrors"
	"github.com/oukeidos/skriv/internal/document"
	"github.com/oukeidos/skriv/internal/files"
	"github.com/oukeidos/skriv/internal/logger"
	"github.com/oukeidos/skriv/internal/prompt"
	"github.com/oukeidos/skriv/internal/textstats"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
)

var (
	clipboardWrite = clipboard.WriteAll
	clipboardRead  = clipboard.ReadAll
)

type editOptions struct {
	onUnsaved string
	yes       bool
	wrap      int
}

const editHelp = `Commands:
  new                    start an empty document
  open [path]            open a file
  save                   save to the current file
  saveas [path]          save to another file
  append <path>          append a file to the end
  insert <offset> <path> insert a file at a character offset
  replace <path>         replace the document with a file
  add <text>             add a line of text
  copy                   copy the document to the clipboard
  paste                  append the clipboard to the document
  print                  print the document
  stats                  print letter, word and row counts
  status                 print the document state
  exit, quit             leave
`

func newEditCmd() *cobra.Command {
	opts := editOptions{}
	cmd := &cobra.Command{
		Use:   "edit [file.txt]",
		Short: "Edit a document with a line-oriented command loop",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args, &opts)
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	cmd.Flags().StringVar(&opts.onUnsaved, "on-unsaved", "ask", "What to do with unsaved changes: ask, save, discard or cancel")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Overwrite existing files without asking")
	cmd.Flags().IntVar(&opts.wrap, "wrap", 0, "Word-wrap printed text at this width (0 disables)")
	return cmd
}

type editSession struct {
	doc      *document.Document
	prompter *cliPrompter
	out      io.Writer
	errOut   io.Writer
	wrap     int
}

func runEdit(cmd *cobra.Command, args []string, opts *editOptions) error {
	if err := validatePolicy(opts.onUnsaved); err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	confirm := newConfirmer(cmd)
	s := &editSession{
		doc:      document.New(files.TextStore{}),
		prompter: &cliPrompter{confirm: confirm, policy: opts.onUnsaved, yes: opts.yes},
		out:      cmd.OutOrStdout(),
		errOut:   cmd.ErrOrStderr(),
		wrap:     opts.wrap,
	}
	if len(args) == 1 {
		if _, err := s.doc.RequestOpen(ctx, s.prompter, args[0]); err != nil {
			return err
		}
	}

	return s.loop(ctx, confirm)
}

func (s *editSession) loop(ctx context.Context, confirm *prompt.Confirmer) error {
	for {
		line, err := confirm.Line(s.doc.Title() + "> ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return s.finish(ctx)
			}
			return err
		}
		quit, err := s.run(ctx, line)
		if err != nil {
			logger.Debug("Edit command failed", "error", err)
			fmt.Fprintln(s.errOut, "Error:", apperrors.PublicMessage(err))
		}
		if quit {
			return nil
		}
	}
}

// finish handles end of input like an exit request.
func (s *editSession) finish(ctx context.Context) error {
	fmt.Fprintln(s.out)
	out, err := s.doc.RequestExit(ctx, s.prompter)
	if err != nil {
		return err
	}
	if out == document.Cancelled {
		return fmt.Errorf("input ended with unsaved changes in %s", s.doc.DisplayName())
	}
	return nil
}

func (s *editSession) run(ctx context.Context, line string) (bool, error) {
	name, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	var (
		out document.Outcome
		err error
	)
	switch strings.ToLower(name) {
	case "":
		return false, nil
	case "help", "?":
		fmt.Fprint(s.out, editHelp)
		return false, nil
	case "new":
		out, err = s.doc.RequestNew(ctx, s.prompter)
	case "open":
		out, err = s.doc.RequestOpen(ctx, s.prompter, rest)
	case "save":
		out, err = s.doc.Save(ctx, s.prompter)
	case "saveas":
		out, err = s.saveAs(ctx, rest)
	case "append":
		out, err = s.merge(ctx, rest, document.MergeAppend, 0)
	case "insert":
		offsetArg, path, _ := strings.Cut(rest, " ")
		offset, convErr := strconv.Atoi(offsetArg)
		if convErr != nil || offset < 0 {
			return false, apperrors.Validation(fmt.Sprintf("invalid offset %q", offsetArg))
		}
		out, err = s.merge(ctx, strings.TrimSpace(path), document.MergeInsertAtCursor, offset)
	case "replace":
		out, err = s.merge(ctx, rest, document.MergeReplace, 0)
	case "add":
		text := s.doc.Text()
		if text != "" {
			text += "\n"
		}
		s.doc.Edit(text + rest)
		return false, nil
	case "copy":
		if err := clipboardWrite(s.doc.Text()); err != nil {
			return false, fmt.Errorf("clipboard unavailable: %w", err)
		}
		return false, nil
	case "paste":
		clip, err := clipboardRead()
		if err != nil {
			return false, fmt.Errorf("clipboard unavailable: %w", err)
		}
		s.doc.Edit(s.doc.Text() + clip)
		return false, nil
	case "print":
		text := s.doc.Text()
		if s.wrap > 0 {
			text = wordwrap.String(text, s.wrap)
		}
		fmt.Fprint(s.out, text)
		if text != "" && !strings.HasSuffix(text, "\n") {
			fmt.Fprintln(s.out)
		}
		return false, nil
	case "stats":
		printCounts(s.out, textstats.Compute(s.doc.Text()))
		return false, nil
	case "status":
		s.printStatus()
		return false, nil
	case "exit", "quit":
		out, err = s.doc.RequestExit(ctx, s.prompter)
		if err == nil && out == document.Done {
			return true, nil
		}
	default:
		return false, apperrors.Validation(unknownCommandMessage(name))
	}

	if err == nil && out == document.Cancelled {
		fmt.Fprintln(s.out, "Cancelled.")
	}
	return false, err
}

func (s *editSession) saveAs(ctx context.Context, path string) (document.Outcome, error) {
	if path != "" {
		current, _ := s.doc.Path()
		ok, err := s.prompter.approveTarget(path, current)
		if err != nil {
			return document.Cancelled, err
		}
		if !ok {
			return document.Cancelled, nil
		}
	}
	return s.doc.SaveAs(ctx, s.prompter, path)
}

func (s *editSession) merge(ctx context.Context, path string, mode document.MergeMode, offset int) (document.Outcome, error) {
	if path == "" {
		return document.Cancelled, apperrors.Validation(fmt.Sprintf("%s needs a file path", mode))
	}
	return s.doc.MergeDroppedFile(ctx, s.prompter, path, mode, offset)
}

func (s *editSession) printStatus() {
	path, ok := s.doc.Path()
	if !ok {
		path = "(not saved)"
	}
	fmt.Fprintf(s.out, "Title: %s\n", s.doc.Title())
	fmt.Fprintf(s.out, "Path: %s\n", path)
	fmt.Fprintf(s.out, "Saved before: %t\n", s.doc.HasBeenSavedBefore())
	fmt.Fprintf(s.out, "Unsaved changes: %t\n", s.doc.HasUnsavedChanges())
}

var editCommands = []string{
	"new", "open", "save", "saveas", "append", "insert", "replace",
	"add", "copy", "paste", "print", "stats", "status", "exit", "quit", "help",
}

func unknownCommandMessage(name string) string {
	if matches := fuzzy.Find(strings.ToLower(name), editCommands); len(matches) > 0 {
		return fmt.Sprintf("unknown command %q, did you mean %q?", name, matches[0].Str)
	}
	return fmt.Sprintf("unknown command %q (try help)", name)
}
