package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/oukeidos/skriv/internal/files"
	"github.com/oukeidos/skriv/internal/textstats"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type statsOptions struct {
	format string
	json   bool
}

type statsResult struct {
	File             string `json:"file" yaml:"file"`
	textstats.Counts `yaml:",inline"`
}

func newStatsCmd() *cobra.Command {
	opts := statsOptions{}
	cmd := &cobra.Command{
		Use:   "stats [file.txt|-]...",
		Short: "Count letters, words and rows",
		Example: `  skriv stats notes.txt
  cat notes.txt | skriv stats --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args, &opts)
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text, json or yaml")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Shorthand for --format json")
	cmd.MarkFlagsMutuallyExclusive("format", "json")
	return cmd
}

func runStats(cmd *cobra.Command, args []string, opts *statsOptions) error {
	format := opts.format
	if opts.json {
		format = "json"
	}
	switch format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}

	results := make([]statsResult, 0, len(args))
	for _, arg := range args {
		text, err := readStatsInput(cmd, arg)
		if err != nil {
			return err
		}
		results = append(results, statsResult{File: arg, Counts: textstats.Compute(text)})
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	}

	if len(results) == 1 {
		printCounts(out, results[0].Counts)
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tLETTERS\tNO SPACES\tWORDS\tROWS\tGRAPHEMES")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\n", r.File, r.LettersInclSpaces, r.LettersExclSpaces, r.Words, r.Rows, r.Graphemes)
	}
	return tw.Flush()
}

func readStatsInput(cmd *cobra.Command, arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return files.DecodeText(data), nil
	}
	text, err := files.TextStore{}.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", arg, err)
	}
	return text, nil
}

func printCounts(out io.Writer, c textstats.Counts) {
	fmt.Fprintf(out, "Letters (incl. spaces): %d\n", c.LettersInclSpaces)
	fmt.Fprintf(out, "Letters (excl. spaces): %d\n", c.LettersExclSpaces)
	fmt.Fprintf(out, "Words: %d\n", c.Words)
	fmt.Fprintf(out, "Rows: %d\n", c.Rows)
}
