package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-docx-markdown/pkg/interfaces"
)

// GoldmarkParser implements interfaces.MarkdownParser using goldmark. The
// engine for the default options is built once and shared; goldmark engines
// are safe for concurrent Convert calls.
type GoldmarkParser struct {
	defaults interfaces.ParseOptions
	engine   goldmark.Markdown
}

// NewGoldmarkParser constructs a parser with the supplied defaults. Use
// EmbedOptions for the settings the block renderer expects.
func NewGoldmarkParser(defaults interfaces.ParseOptions) *GoldmarkParser {
	return &GoldmarkParser{
		defaults: defaults,
		engine:   newEngine(defaults),
	}
}

// EmbedOptions returns the options used when Markdown is converted to HTML
// for embedding inside raw HTML blocks: GFM, newlines as <br />, XHTML void
// elements and raw HTML passed through.
func EmbedOptions() interfaces.ParseOptions {
	return interfaces.ParseOptions{
		Extensions: []string{"gfm"},
		HardWraps:  true,
		XHTML:      true,
	}
}

// Parse converts markdown with the default options.
func (p *GoldmarkParser) Parse(markdown []byte) ([]byte, error) {
	return convert(p.engine, markdown)
}

// ParseWithOptions converts markdown with a one-off engine built from opts.
func (p *GoldmarkParser) ParseWithOptions(markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	return convert(newEngine(opts), markdown)
}

func convert(engine goldmark.Markdown, markdown []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := engine.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("markdown convert: %w", err)
	}
	return buf.Bytes(), nil
}

func newEngine(opts interfaces.ParseOptions) goldmark.Markdown {
	var parserOpts []parser.Option
	if opts.HeadingIDs {
		parserOpts = append(parserOpts, parser.WithAutoHeadingID())
	}

	var rendererOpts []renderer.Option
	if opts.HardWraps {
		rendererOpts = append(rendererOpts, html.WithHardWraps())
	}
	if opts.XHTML {
		rendererOpts = append(rendererOpts, html.WithXHTML())
	}
	// Raw HTML from table cells and callouts must survive unless either flag asks otherwise.
	if !opts.SafeMode && !opts.Sanitize {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}

	return goldmark.New(
		goldmark.WithExtensions(extensionsFor(opts.Extensions)...),
		goldmark.WithParserOptions(parserOpts...),
		goldmark.WithRendererOptions(rendererOpts...),
	)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

// KnownExtension reports whether name maps to a registered goldmark extension.
func KnownExtension(name string) bool {
	_, ok := extensionRegistry[normalizeName(name)]
	return ok
}

// extensionsFor resolves extension names, defaulting to GFM. Unknown and
// repeated names are skipped.
func extensionsFor(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{extension.GFM}
	}
	seen := make(map[string]bool, len(names))
	extenders := make([]goldmark.Extender, 0, len(names))
	for _, name := range names {
		key := normalizeName(name)
		ext, ok := extensionRegistry[key]
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		extenders = append(extenders, ext)
	}
	return extenders
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
