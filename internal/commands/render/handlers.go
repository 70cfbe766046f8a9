package rendercmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	command "github.com/goliatone/go-command"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-docx-markdown/internal/commands"
	"github.com/goliatone/go-docx-markdown/internal/export"
	"github.com/goliatone/go-docx-markdown/internal/identity"
	"github.com/goliatone/go-docx-markdown/internal/logging"
	"github.com/goliatone/go-docx-markdown/internal/markdown"
	"github.com/goliatone/go-docx-markdown/internal/render"
	"github.com/goliatone/go-docx-markdown/internal/runtimeconfig"
	"github.com/goliatone/go-docx-markdown/pkg/docx"
	"github.com/goliatone/go-docx-markdown/pkg/interfaces"
)

const (
	renderOperation  = "render.document"
	summaryOperation = "render.summary"

	summaryReadFailedCode = "SUMMARY_INPUT_INVALID"
)

var (
	_ command.Commander[RenderDocumentCommand] = (*RenderDocumentHandler)(nil)
	_ command.Commander[BuildSummaryCommand]   = (*BuildSummaryHandler)(nil)
)

// RenderDocumentHandler decodes, renders and writes one document.
type RenderDocumentHandler struct {
	inner *commands.Handler[RenderDocumentCommand]
}

// NewRenderDocumentHandler binds the handler to cfg. Renderer diagnostics go
// to the render logger of provider; execution outcomes to the commands logger.
func NewRenderDocumentHandler(cfg runtimeconfig.Config, provider interfaces.LoggerProvider, opts ...commands.HandlerOption[RenderDocumentCommand]) *RenderDocumentHandler {
	baseLogger := commands.CommandLogger(provider, "render")

	exec := func(ctx context.Context, msg RenderDocumentCommand) error {
		data, err := readInput(msg.Input, msg.InputPath)
		if err != nil {
			return err
		}
		doc, err := docx.Decode(data)
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		renderID := identity.RenderUUID(doc.DocumentID).String()
		renderLogger := logging.WithDocumentContext(logging.RenderLogger(provider), doc.DocumentID, renderID, msg.OutputPath)

		runCfg := cfg
		runCfg.Render.EmitUnsupported = cfg.Render.EmitUnsupported || msg.EmitUnsupported
		r := render.New(doc, render.OptionsFromConfig(runCfg, renderLogger))
		content := r.Parse()

		baseURL := msg.AssetBaseURL
		if baseURL == "" {
			baseURL = cfg.Export.AssetBaseURL
		}
		content = export.RewriteAssets(content, r.Assets().Tokens(), baseURL)

		if msg.FrontMatter {
			title := msg.Title
			if title == "" {
				title = doc.Title()
			}
			header, err := export.FrontMatter(export.PageFrontMatter(export.PageInfo{
				Title:    title,
				Slug:     msg.Slug,
				Position: msg.Position,
				RenderID: renderID,
			}, r.Meta()))
			if err != nil {
				return err
			}
			if header != "" {
				content = header + "\n" + content
			}
		}

		if err := writeOutput(msg.Output, msg.OutputPath, []byte(content)); err != nil {
			return err
		}

		logging.WithFields(baseLogger, map[string]any{
			"document_id": doc.DocumentID,
			"render_id":   renderID,
			"bytes":       len(content),
			"asset_count": r.Assets().Len(),
		}).Info("render.command.document.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[RenderDocumentCommand]{
		commands.WithLogger[RenderDocumentCommand](baseLogger),
		commands.WithOperation[RenderDocumentCommand](renderOperation),
		commands.WithMessageFields(func(msg RenderDocumentCommand) map[string]any {
			fields := map[string]any{}
			if msg.InputPath != "" {
				fields["input_path"] = msg.InputPath
			}
			if msg.OutputPath != "" {
				fields["output_path"] = msg.OutputPath
			}
			if msg.EmitUnsupported {
				fields["emit_unsupported"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[RenderDocumentCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RenderDocumentHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[RenderDocumentCommand].
func (h *RenderDocumentHandler) Execute(ctx context.Context, msg RenderDocumentCommand) error {
	return h.inner.Execute(ctx, msg)
}

// BuildSummaryHandler turns a node tree into SUMMARY.md.
type BuildSummaryHandler struct {
	inner *commands.Handler[BuildSummaryCommand]
}

// NewBuildSummaryHandler builds the summary handler. Slugs are assigned
// before hidden nodes are dropped, so positions keep their original order.
func NewBuildSummaryHandler(provider interfaces.LoggerProvider, opts ...commands.HandlerOption[BuildSummaryCommand]) *BuildSummaryHandler {
	baseLogger := commands.CommandLogger(provider, "summary")
	exportLogger := logging.ExportLogger(provider)

	exec := func(ctx context.Context, msg BuildSummaryCommand) error {
		data, err := readInput(msg.Input, msg.InputPath)
		if err != nil {
			return err
		}
		var nodes []*export.Node
		if err := json.Unmarshal(data, &nodes); err != nil {
			return goerrors.Wrap(err, goerrors.CategoryValidation, "summary: decode node tree").
				WithTextCode(summaryReadFailedCode)
		}

		export.PrepareSlugs(nodes, msg.RootSlug)
		if msg.DocsDir != "" {
			loader := markdown.NewLoader(os.DirFS(msg.DocsDir))
			attachPageMeta(ctx, nodes, loader, exportLogger)
		}
		nodes = export.CleanupNodes(nodes)
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := writeOutput(msg.Output, msg.OutputPath, []byte(export.Summary(nodes))); err != nil {
			return err
		}
		if msg.ManifestPath != "" {
			manifest, err := json.MarshalIndent(nodes, "", "  ")
			if err != nil {
				return err
			}
			if err := writeOutput(nil, msg.ManifestPath, append(manifest, '\n')); err != nil {
				return err
			}
		}

		logging.WithFields(baseLogger, map[string]any{
			"node_count": countNodes(nodes),
		}).Info("render.command.summary.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[BuildSummaryCommand]{
		commands.WithLogger[BuildSummaryCommand](baseLogger),
		commands.WithOperation[BuildSummaryCommand](summaryOperation),
		commands.WithMessageFields(func(msg BuildSummaryCommand) map[string]any {
			fields := map[string]any{}
			if msg.InputPath != "" {
				fields["input_path"] = msg.InputPath
			}
			if msg.OutputPath != "" {
				fields["output_path"] = msg.OutputPath
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[BuildSummaryCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildSummaryHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[BuildSummaryCommand].
func (h *BuildSummaryHandler) Execute(ctx context.Context, msg BuildSummaryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// attachPageMeta fills missing node metadata from the front matter of the
// page already exported at the node filename. Missing pages are skipped.
func attachPageMeta(ctx context.Context, nodes []*export.Node, loader *markdown.Loader, logger interfaces.Logger) {
	for _, node := range nodes {
		if node == nil {
			continue
		}
		if node.Meta == nil && node.Filename != "" {
			page, err := loader.LoadFile(ctx, node.Filename)
			switch {
			case errors.Is(err, fs.ErrNotExist):
			case err != nil:
				logger.Warn("export.frontmatter.invalid", "path", node.Filename, "error", err)
			case len(page.Meta) > 0:
				node.Meta = page.Meta
			}
		}
		attachPageMeta(ctx, node.Children, loader, logger)
	}
}

func countNodes(nodes []*export.Node) int {
	total := 0
	for _, node := range nodes {
		if node != nil {
			total += 1 + countNodes(node.Children)
		}
	}
	return total
}

func readInput(r io.Reader, path string) ([]byte, error) {
	if r != nil {
		return io.ReadAll(r)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// writeOutput writes to w when set, otherwise to path. With neither, the
// content is discarded.
func writeOutput(w io.Writer, path string, content []byte) error {
	if w != nil {
		_, err := io.Copy(w, bytes.NewReader(content))
		return err
	}
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
