package main

import (
	"github.com/goliatone/go-command/dispatcher"
	"github.com/spf13/cobra"

	rendercmd "github.com/goliatone/go-docx-markdown/internal/commands/render"
)

func newSummaryCmd(a *app) *cobra.Command {
	var msg rendercmd.BuildSummaryCommand

	cmd := &cobra.Command{
		Use:   "summary <nodes.json|->",
		Short: "Build SUMMARY.md for a wiki node tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			done, err := a.setup(cmd)
			if err != nil {
				return err
			}
			defer done()

			msg.InputPath = args[0]
			if msg.InputPath == "-" {
				msg.InputPath = ""
				msg.Input = cmd.InOrStdin()
			}
			if msg.OutputPath == "" {
				msg.Output = cmd.OutOrStdout()
			}
			return dispatcher.Dispatch(cmd.Context(), msg)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&msg.OutputPath, "output", "o", "", "write SUMMARY.md to this file instead of stdout")
	fs.StringVar(&msg.ManifestPath, "manifest", "", "also write the cleaned node tree as JSON")
	fs.StringVar(&msg.RootSlug, "root-slug", "", "prefix for every generated slug")
	fs.StringVar(&msg.DocsDir, "docs-dir", "", "directory of rendered pages whose front matter may hide nodes")
	return cmd
}
