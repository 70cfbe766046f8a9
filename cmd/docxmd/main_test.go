package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-docx-markdown/internal/runtimeconfig"
)

var testdata = filepath.Join("..", "..", "internal", "render", "testdata")

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRenderCommandWritesMarkdown(t *testing.T) {
	want, err := os.ReadFile(filepath.Join(testdata, "document.md"))
	if err != nil {
		t.Fatalf("load expected: %v", err)
	}

	out, _, err := run(t, "", "render", filepath.Join(testdata, "document.json"),
		"--front-matter=false", "--asset-base-url=", "--log-level=error")
	if err != nil {
		t.Fatalf("render returned error: %v", err)
	}
	if out != string(want) {
		t.Fatalf("output mismatch\n--- got ---\n%s\n--- want ---\n%s", out, want)
	}
}

func TestRenderCommandReadsStdin(t *testing.T) {
	doc := `{"document": {"document_id": "root"}, "blocks": [
	  {"block_id": "root", "block_type": 1, "children": ["p"], "page": {"elements": [{"text_run": {"content": "Hello"}}]}},
	  {"block_id": "p", "parent_id": "root", "block_type": 2, "text": {"elements": [{"text_run": {"content": "World"}}]}}
	]}`

	out, _, err := run(t, doc, "render", "-", "--title", "Greeting", "--slug", "hello", "--position", "-1")
	if err != nil {
		t.Fatalf("render returned error: %v", err)
	}
	if !strings.HasPrefix(out, "---\ntitle: Greeting\nslug: hello\nsidebar_position: -1\n") {
		t.Fatalf("unexpected front matter:\n%s", out)
	}
	if !strings.HasSuffix(out, "---\n\n# Hello\n\nWorld\n\n") {
		t.Fatalf("unexpected body:\n%s", out)
	}
}

func TestRenderCommandLogsToStderr(t *testing.T) {
	_, stderr, err := run(t, "", "render", filepath.Join(testdata, "document.json"), "--front-matter=false", "--log-level=info")
	if err != nil {
		t.Fatalf("render returned error: %v", err)
	}
	if !strings.Contains(stderr, "render.command.document.completed") {
		t.Fatalf("expected completion log, got %s", stderr)
	}
}

func TestRenderCommandRejectsInvalidConfig(t *testing.T) {
	_, _, err := run(t, "", "render", "doc.json", "--log-provider=syslog")
	if !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}

	_, _, err = run(t, "", "render", "doc.json", "--metadata-languages=ini")
	if !errors.Is(err, runtimeconfig.ErrMetadataLanguageUnknown) {
		t.Fatalf("expected ErrMetadataLanguageUnknown, got %v", err)
	}
}

func TestSummaryCommand(t *testing.T) {
	nodes := `[{"node_token": "alpha", "title": "A", "depth": 0, "children": [{"node_token": "beta", "title": "B", "depth": 1}]}]`
	target := filepath.Join(t.TempDir(), "SUMMARY.md")

	if _, _, err := run(t, nodes, "summary", "-", "-o", target, "--root-slug", "docs"); err != nil {
		t.Fatalf("summary returned error: %v", err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if string(got) != "- [A](docs/alpha.md)\n  - [B](docs/alpha/beta.md)\n" {
		t.Fatalf("unexpected summary %q", got)
	}
}
