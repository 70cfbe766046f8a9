package markdown

import (
	"context"
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
)

func docsFS() fstest.MapFS {
	return fstest.MapFS{
		"intro.md":            {Data: []byte("---\ntitle: Intro\nsidebar_position: 0\n---\n# Intro\n")},
		"guide/setup.md":      {Data: []byte("+++\ntitle = \"Setup\"\nhide = true\n+++\nSteps\n")},
		"guide/deep/plain.md": {Data: []byte("# Plain\n")},
		"guide/broken.md":     {Data: []byte("---\ntitle: [unclosed\n---\n")},
	}
}

func TestLoaderLoadFile(t *testing.T) {
	loader := NewLoader(docsFS())

	page, err := loader.LoadFile(context.Background(), "/guide/setup.md")
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if page.Path != "guide/setup.md" {
		t.Fatalf("unexpected path %q", page.Path)
	}
	if page.Meta["title"] != "Setup" || page.Meta["hide"] != true {
		t.Fatalf("unexpected meta %#v", page.Meta)
	}
	if string(page.Body) != "Steps\n" {
		t.Fatalf("unexpected body %q", page.Body)
	}
	if len(page.Checksum) != 32 {
		t.Fatalf("expected sha256 checksum, got %d bytes", len(page.Checksum))
	}

	plain, err := loader.LoadFile(context.Background(), "guide/deep/plain.md")
	if err != nil {
		t.Fatalf("load plain page: %v", err)
	}
	if len(plain.Meta) != 0 || string(plain.Body) != "# Plain\n" {
		t.Fatalf("expected page without front matter, got meta=%v body=%q", plain.Meta, plain.Body)
	}
}

func TestLoaderLoadFileErrors(t *testing.T) {
	loader := NewLoader(docsFS())

	if _, err := loader.LoadFile(context.Background(), "missing.md"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not exist error, got %v", err)
	}
	if _, err := loader.LoadFile(context.Background(), "guide/broken.md"); err == nil || errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected front matter error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := loader.LoadFile(ctx, "intro.md"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
