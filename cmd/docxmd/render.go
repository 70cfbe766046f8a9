package main

import (
	"github.com/goliatone/go-command/dispatcher"
	"github.com/spf13/cobra"

	rendercmd "github.com/goliatone/go-docx-markdown/internal/commands/render"
)

func newRenderCmd(a *app) *cobra.Command {
	msg := rendercmd.RenderDocumentCommand{FrontMatter: a.cfg.Export.FrontMatter}

	cmd := &cobra.Command{
		Use:   "render <document.json|->",
		Short: "Render a block list JSON document to Markdown",
		Long: `Render reads the block list of one document, as returned by the docx
blocks API, and writes GitHub-Flavored Markdown.

A leading YAML code block is treated as page metadata and merged into the
front matter. Image and file tokens are rewritten under --asset-base-url.`,
		Args: cobra.ExactArgs(1),
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
	fs.StringVarP(&msg.OutputPath, "output", "o", "", "write Markdown to this file instead of stdout")
	fs.StringVar(&msg.Title, "title", "", "front matter title (defaults to the page title)")
	fs.StringVar(&msg.Slug, "slug", "", "front matter slug")
	fs.IntVar(&msg.Position, "position", 0, "front matter sidebar_position (-1 for index pages)")
	fs.BoolVar(&msg.FrontMatter, "front-matter", msg.FrontMatter, "prepend YAML front matter")
	fs.StringVar(&a.cfg.Export.AssetBaseURL, "asset-base-url", a.cfg.Export.AssetBaseURL, "URL prefix for image and file tokens; empty keeps raw tokens")
	fs.BoolVar(&msg.EmitUnsupported, "emit-unsupported", false, "render unsupported blocks as fenced debug blocks")
	fs.IntVar(&a.cfg.Render.MaxDepth, "max-depth", a.cfg.Render.MaxDepth, "maximum block nesting depth")
	fs.BoolVar(&a.cfg.Render.KeepInvalidMetadata, "keep-invalid-metadata", false, "render unparsable metadata blocks as code")
	fs.StringSliceVar(&a.cfg.Render.MetadataLanguages, "metadata-languages", a.cfg.Render.MetadataLanguages, "code languages accepted as page metadata: yaml, json, toml")
	fs.BoolVar(&a.cfg.Markdown.SafeMode, "safe-html", false, "drop raw HTML when converting table cells and callouts")

	return cmd
}
