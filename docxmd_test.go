package docxmd_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	docxmd "github.com/goliatone/go-docx-markdown"
	"github.com/goliatone/go-docx-markdown/internal/logging/console"
	"github.com/goliatone/go-docx-markdown/pkg/docx"
	"github.com/goliatone/go-docx-markdown/pkg/interfaces"
	"github.com/goliatone/go-docx-markdown/pkg/testsupport"
)

var fixtureDir = filepath.Join("internal", "render", "testdata")

func TestRenderMatchesFixture(t *testing.T) {
	raw, err := testsupport.LoadFixture(filepath.Join(fixtureDir, "document.json"))
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	want, err := testsupport.LoadFixture(filepath.Join(fixtureDir, "document.md"))
	if err != nil {
		t.Fatalf("load expected: %v", err)
	}

	result, err := docxmd.Render(raw)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if result.Markdown != string(want) {
		t.Fatalf("output mismatch\n--- got ---\n%s\n--- want ---\n%s", result.Markdown, want)
	}
	if result.Meta["slug"] != "getting-started" {
		t.Fatalf("unexpected meta %v", result.Meta)
	}
	if len(result.Assets) != 2 || result.Assets[0].Kind != docxmd.AssetImage || result.Assets[1].Kind != docxmd.AssetFile {
		t.Fatalf("unexpected assets %v", result.Assets)
	}
	if result.RenderID == "" {
		t.Fatalf("expected a render id")
	}
}

func TestRenderRejectsInvalidConfig(t *testing.T) {
	cfg := docxmd.DefaultConfig()
	cfg.Render.MaxDepth = -3

	_, err := docxmd.Render([]byte(`{}`), docxmd.WithConfig(cfg))
	if !errors.Is(err, docxmd.ErrRenderMaxDepthInvalid) {
		t.Fatalf("expected ErrRenderMaxDepthInvalid, got %v", err)
	}
}

func TestRenderRejectsMalformedJSON(t *testing.T) {
	if _, err := docxmd.Render([]byte(`{"blocks": [`)); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestNewLogsWithDocumentContext(t *testing.T) {
	var buf bytes.Buffer
	provider := console.NewProvider(console.Options{Writer: &buf})

	cfg := docxmd.DefaultConfig()
	cfg.Render.MaxDepth = 1
	doc := &docxmd.Document{
		DocumentID: "root",
		Blocks: []*docxmd.Block{
			{ID: "root", Children: []string{"a"}, Content: docx.Page{}},
			{ID: "a", ParentID: "root", Children: []string{"b"}, Content: docx.Page{}},
			{ID: "b", ParentID: "a", Content: docx.Page{}},
		},
	}

	r, err := docxmd.New(doc, docxmd.WithConfig(cfg), docxmd.WithLoggerProvider(provider))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	r.Parse()

	out := buf.String()
	if !strings.Contains(out, "render.depth.exceeded") ||
		!strings.Contains(out, "document_id=root") ||
		!strings.Contains(out, "module=docxmd.render") {
		t.Fatalf("expected depth warning with document context, got %s", out)
	}
}

func TestWithHTMLParserOverridesConverter(t *testing.T) {
	raw, err := testsupport.LoadFixture(filepath.Join(fixtureDir, "document.json"))
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	result, err := docxmd.Render(raw, docxmd.WithHTMLParser(upperParser{}))
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(result.Markdown, "<!--html-->") {
		t.Fatalf("expected custom parser output in callout, got %s", result.Markdown)
	}
}

type upperParser struct{}

func (upperParser) Parse(markdown []byte) ([]byte, error) {
	return append([]byte("<!--html-->"), markdown...), nil
}

func (p upperParser) ParseWithOptions(markdown []byte, _ interfaces.ParseOptions) ([]byte, error) {
	return p.Parse(markdown)
}
