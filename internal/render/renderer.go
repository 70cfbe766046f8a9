// Package render turns a docx block tree into GitHub-Flavored Markdown.
//
// Rendering is a recursive walk from the root page block. Every call receives
// a frame carrying the indentation level, the resolved next sibling (used for
// tight list spacing) and the recursion depth, so the walk does not depend on
// mutable renderer state other than the metadata and asset side outputs.
package render

import (
	"strings"

	"github.com/goliatone/go-docx-markdown/internal/logging"
	"github.com/goliatone/go-docx-markdown/internal/markdown"
	"github.com/goliatone/go-docx-markdown/pkg/docx"
	"github.com/goliatone/go-docx-markdown/pkg/interfaces"
)

// DefaultMaxDepth bounds block nesting when Options.MaxDepth is not set.
const DefaultMaxDepth = 128

// Options tunes a Renderer.
type Options struct {
	// EmitUnsupported renders blocks without a rendering rule as fenced debug
	// blocks instead of dropping them.
	EmitUnsupported bool
	// MaxDepth limits block nesting; deeper blocks render as empty strings.
	MaxDepth int
	// KeepInvalidMetadata renders a metadata code block that fails to parse as
	// a normal code block instead of dropping it.
	KeepInvalidMetadata bool
	// MetadataLanguages lists the code languages accepted for the leading
	// metadata block. Defaults to YAML only.
	MetadataLanguages []docx.CodeLanguage
	// HTML converts Markdown to HTML for blocks embedded as raw HTML.
	// Defaults to a goldmark parser with markdown.EmbedOptions.
	HTML interfaces.MarkdownParser
	// Logger receives metadata and depth warnings. Defaults to a no-op logger.
	Logger interfaces.Logger
}

// Renderer renders one document. A Renderer is not safe for concurrent use;
// separate instances share nothing and can run in parallel.
type Renderer struct {
	documentID string
	index      map[string]*docx.Block
	opts       Options
	logger     interfaces.Logger
	html       interfaces.MarkdownParser

	meta   map[string]any
	assets *AssetRegistry
}

// frame is the per-call rendering context.
type frame struct {
	indent int
	// next is the following sibling, resolved only for children of the page.
	next  *docx.Block
	depth int
}

// child returns the frame used to render a nested block.
func (f frame) child(indent int) frame {
	return frame{indent: indent, depth: f.depth + 1}
}

// New indexes the blocks of doc by id. A nil document yields a renderer whose
// Parse returns an empty string.
func New(doc *docx.Document, opts Options) *Renderer {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if len(opts.MetadataLanguages) == 0 {
		opts.MetadataLanguages = []docx.CodeLanguage{docx.LanguageYAML}
	}

	r := &Renderer{
		index:  map[string]*docx.Block{},
		opts:   opts,
		logger: opts.Logger,
		html:   opts.HTML,
		assets: NewAssetRegistry(),
	}
	if r.logger == nil {
		r.logger = logging.NoOp()
	}
	if r.html == nil {
		r.html = markdown.NewGoldmarkParser(markdown.EmbedOptions())
	}

	if doc == nil {
		return r
	}
	r.documentID = doc.DocumentID
	for _, block := range doc.Blocks {
		if block == nil {
			continue
		}
		r.index[block.ID] = block
	}
	return r
}

// Parse renders the document. It returns an empty string when the root block
// is missing. Metadata and assets are reset on every call.
func (r *Renderer) Parse() string {
	r.meta = nil
	r.assets = NewAssetRegistry()

	root := r.index[r.documentID]
	if root == nil {
		return ""
	}
	return r.render(root, frame{})
}

// Meta returns the metadata extracted by the last Parse, or nil.
func (r *Renderer) Meta() map[string]any {
	return r.meta
}

// Assets returns the assets referenced by the last Parse.
func (r *Renderer) Assets() *AssetRegistry {
	return r.assets
}

func (r *Renderer) block(id string) *docx.Block {
	if id == "" {
		return nil
	}
	return r.index[id]
}

// render dispatches on the block content. Missing blocks and blocks past the
// depth limit contribute nothing.
func (r *Renderer) render(block *docx.Block, f frame) string {
	if block == nil {
		return ""
	}
	if f.depth > r.opts.MaxDepth {
		r.logger.Warn("render.depth.exceeded",
			"block_id", block.ID,
			"depth", f.depth,
			"max_depth", r.opts.MaxDepth,
		)
		return ""
	}

	buf := &Buffer{}
	buf.WriteIndent(f.indent)

	switch content := block.Content.(type) {
	case docx.Page:
		buf.Write(r.renderPage(block, content, f))
	case docx.Paragraph:
		buf.Write(r.renderText(content.Text, false))
	case docx.Heading:
		buf.Write(headingPrefix(content.Level))
		buf.Write(r.renderText(content.Text, false))
	case docx.Bullet:
		buf.Write(r.renderBullet(block, content, f))
	case docx.Ordered:
		buf.Write(r.renderOrdered(block, content, f))
	case docx.Code:
		buf.Write(r.renderCode(content))
	case docx.Quote:
		buf.Write("> ")
		buf.Write(r.renderText(content.Text, false))
	case docx.Todo:
		if content.Text.Style.Done {
			buf.Write("- [x] ")
		} else {
			buf.Write("- [ ] ")
		}
		buf.Write(r.renderText(content.Text, false))
	case docx.Divider:
		buf.Write("---\n")
	case docx.Image:
		buf.Write(r.renderImage(content))
	case docx.File:
		buf.Write(r.renderFile(content))
	case docx.Table:
		buf.Write(r.renderTable(content, f))
	case docx.TableCell, docx.View, docx.SyncedBlock:
		buf.Write(r.renderChildren(block, f, ""))
	case docx.QuoteContainer:
		buf.Write(r.renderChildren(block, f, "> "))
	case docx.Grid:
		buf.Write(r.renderGrid(block, content, f))
	case docx.GridColumn:
		// Columns render through their grid.
	case docx.Callout:
		buf.Write(r.renderCallout(block, content, f))
	case docx.Iframe:
		buf.Write(r.renderIframe(content))
	default:
		buf.Write(r.renderUnsupported(block))
	}

	return buf.String()
}

func headingPrefix(level int) string {
	if level < 1 {
		level = 1
	}
	if level > 9 {
		level = 9
	}
	return strings.Repeat("#", level) + " "
}

// renderPage writes the title heading and the page body. The first child is
// offered to metadata extraction and skipped when consumed.
func (r *Renderer) renderPage(block *docx.Block, page docx.Page, f frame) string {
	buf := &Buffer{}
	buf.Write("# ")
	buf.Write(r.renderText(page.Text, false))
	buf.Write("\n")

	for idx, id := range block.Children {
		child := r.block(id)
		if idx == 0 && r.extractMetadata(child, f.depth+1) {
			continue
		}

		next := frame{depth: f.depth + 1}
		if idx+1 < len(block.Children) {
			next.next = r.block(block.Children[idx+1])
		}

		text := r.render(child, next)
		if text == "" {
			continue
		}
		buf.Write(text)
		buf.Write("\n")
	}
	return buf.String()
}

func (r *Renderer) renderCode(code docx.Code) string {
	buf := &Buffer{}
	buf.Write("```")
	buf.Write(code.Text.Style.Language.Name())
	buf.Write("\n")
	buf.Write(strings.TrimSpace(r.renderText(code.Text, true)))
	buf.Write("\n```\n")
	return buf.String()
}

// renderChildren concatenates the children of a container, each optionally
// preceded by prefix.
func (r *Renderer) renderChildren(block *docx.Block, f frame, prefix string) string {
	buf := &Buffer{}
	for _, id := range block.Children {
		if prefix != "" {
			buf.Write(prefix)
		}
		buf.Write(r.render(r.block(id), f.child(0)))
	}
	return buf.String()
}

// renderChildrenList renders every child at indent zero and returns the texts
// in order. Missing children yield empty strings.
func (r *Renderer) renderChildrenList(block *docx.Block, f frame) []string {
	parts := make([]string, 0, len(block.Children))
	for _, id := range block.Children {
		parts = append(parts, r.render(r.block(id), f.child(0)))
	}
	return parts
}

// markdownToHTML converts rendered Markdown for embedding in raw HTML. When
// conversion fails the Markdown is returned unchanged.
func (r *Renderer) markdownToHTML(source string) string {
	html, err := r.html.Parse([]byte(source))
	if err != nil {
		r.logger.Warn("render.html.failed", "error", err)
		return source
	}
	return string(html)
}

func (r *Renderer) renderUnsupported(block *docx.Block) string {
	r.logger.Debug("render.unsupported",
		"block_id", block.ID,
		"block_type", block.Type.String(),
	)
	if !r.opts.EmitUnsupported {
		return ""
	}

	buf := &Buffer{}
	buf.Write("```\n")
	buf.WriteLine("// [Unsupported] " + block.Type.String())
	buf.Write(block.DebugJSON())
	buf.Write("\n```\n")
	return buf.String()
}
