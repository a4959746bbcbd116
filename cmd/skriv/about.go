package main

import (
	"fmt"

	"github.com/oukeidos/skriv/internal/version"
	"github.com/spf13/cobra"
)

func newAboutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "about",
		Short: "Show a short description",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, version.Short()+": a plain-text editor")
			fmt.Fprintln(out, "Desktop editor: skriv-gui [file.txt]")
			fmt.Fprintln(out, "github.com/oukeidos/skriv")
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}
