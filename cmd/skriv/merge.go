package main

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/oukeidos/skriv/internal/apperrors"
	"github.com/oukeidos/skriv/internal/document"
	"github.com/oukeidos/skriv/internal/files"
	"github.com/oukeidos/skriv/internal/logger"
	"github.com/spf13/cobra"
)

type mergeOptions struct {
	mode string
	at   int
}

func newMergeCmd() *cobra.Command {
	opts := mergeOptions{}
	cmd := &cobra.Command{
		Use:   "merge <target.txt> <file.txt>...",
		Short: "Merge text files into a target file and save it",
		Example: `  skriv merge notes.txt more.txt
  skriv merge notes.txt header.txt --mode insert --at 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				_ = cmd.Usage()
				return fmt.Errorf("a target and at least one file are required")
			}
			return runMerge(cmd, args, &opts)
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	cmd.Flags().StringVar(&opts.mode, "mode", "append", "Merge mode: append or insert")
	cmd.Flags().IntVar(&opts.at, "at", 0, "Character offset for --mode insert")
	return cmd
}

func runMerge(cmd *cobra.Command, args []string, opts *mergeOptions) error {
	mode, err := document.ParseMergeMode(opts.mode)
	if err != nil {
		return err
	}
	if mode == document.MergeReplace {
		return apperrors.Validation("merge supports append and insert; use edit to replace a document")
	}
	if opts.at < 0 {
		return apperrors.Validation(fmt.Sprintf("invalid offset %d", opts.at))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	doc := document.New(files.TextStore{})
	if _, err := doc.RequestOpen(ctx, nil, args[0]); err != nil {
		return err
	}

	at := opts.at
	for _, path := range args[1:] {
		before := utf8.RuneCountInString(doc.Text())
		if _, err := doc.MergeDroppedFile(ctx, nil, path, mode, at); err != nil {
			return err
		}
		// Keep later files after earlier ones.
		at += utf8.RuneCountInString(doc.Text()) - before
	}

	if !doc.HasUnsavedChanges() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s unchanged\n", args[0])
		return nil
	}
	if _, err := doc.Save(ctx, nil); err != nil {
		return err
	}
	logger.Info("Merged files", "target", args[0], "count", len(args)-1, "mode", mode.String())
	fmt.Fprintf(cmd.OutOrStdout(), "Merged %d file(s) into %s\n", len(args)-1, args[0])
	return nil
}
