// Package docxmd renders Feishu/Lark docx block trees as GitHub-Flavored
// Markdown.
//
// A document is decoded from the block list JSON returned by the docx API,
// then walked from its root page block. Rendering never fails: blocks that
// cannot be rendered degrade to empty output (or to a fenced debug block when
// EmitUnsupported is set). Alongside the Markdown, the renderer exposes the
// metadata parsed from a leading YAML code block and the image and file
// tokens the document references.
package docxmd

import (
	"github.com/google/uuid"

	"github.com/goliatone/go-docx-markdown/internal/identity"
	"github.com/goliatone/go-docx-markdown/internal/logging"
	"github.com/goliatone/go-docx-markdown/internal/render"
	"github.com/goliatone/go-docx-markdown/pkg/docx"
	"github.com/goliatone/go-docx-markdown/pkg/interfaces"
)

type (
	Document      = docx.Document
	Block         = docx.Block
	Renderer      = render.Renderer
	RenderOptions = render.Options
	Asset         = render.Asset
	AssetKind     = render.AssetKind
	AssetRegistry = render.AssetRegistry
)

const (
	AssetImage = render.AssetImage
	AssetFile  = render.AssetFile
)

// Option customizes New and Render.
type Option func(*settings)

type settings struct {
	config Config
	logger interfaces.LoggerProvider
	html   interfaces.MarkdownParser
}

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(s *settings) {
		s.config = cfg
	}
}

// WithLoggerProvider routes renderer diagnostics to provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(s *settings) {
		s.logger = provider
	}
}

// WithHTMLParser overrides the Markdown to HTML converter used for table
// cells, grid columns and callouts.
func WithHTMLParser(parser interfaces.MarkdownParser) Option {
	return func(s *settings) {
		s.html = parser
	}
}

func resolve(opts []Option) (settings, error) {
	s := settings{config: DefaultConfig()}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	if err := s.config.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

func (s settings) renderOptions(documentID string) RenderOptions {
	logger := logging.WithDocumentContext(logging.RenderLogger(s.logger), documentID, renderID(documentID), "")
	opts := render.OptionsFromConfig(s.config, logger)
	if s.html != nil {
		opts.HTML = s.html
	}
	return opts
}

// New returns a renderer for doc. It fails only when the configuration is
// invalid.
func New(doc *Document, opts ...Option) (*Renderer, error) {
	s, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	documentID := ""
	if doc != nil {
		documentID = doc.DocumentID
	}
	return render.New(doc, s.renderOptions(documentID)), nil
}

// Result is the output of Render.
type Result struct {
	// RenderID is a stable identifier derived from the document id.
	RenderID string
	Markdown string
	Meta     map[string]any
	Assets   []Asset
}

// Render decodes a block list JSON payload and renders it.
func Render(data []byte, opts ...Option) (*Result, error) {
	s, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	doc, err := docx.Decode(data)
	if err != nil {
		return nil, err
	}

	r := render.New(doc, s.renderOptions(doc.DocumentID))
	markdown := r.Parse()
	return &Result{
		RenderID: renderID(doc.DocumentID),
		Markdown: markdown,
		Meta:     r.Meta(),
		Assets:   r.Assets().All(),
	}, nil
}

func renderID(documentID string) string {
	id := identity.RenderUUID(documentID)
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}
