package markdown

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// Loader reads exported Markdown pages and their front matter from a
// filesystem, typically os.DirFS of the docs directory.
type Loader struct {
	fs fs.FS
}

// Page is one exported Markdown file.
type Page struct {
	// Path is slash separated and relative to the loader root.
	Path     string
	Meta     map[string]any
	Body     []byte
	Checksum []byte
}

// NewLoader constructs a Loader over filesystem.
func NewLoader(filesystem fs.FS) *Loader {
	return &Loader{fs: filesystem}
}

// LoadFile reads and parses the page at name, a node filename such as
// "guide/setup.md". A leading slash is ignored.
func (l *Loader) LoadFile(ctx context.Context, name string) (*Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rel := path.Clean(strings.TrimPrefix(name, "/"))
	data, err := fs.ReadFile(l.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("markdown loader read %s: %w", rel, err)
	}

	meta, body, err := ParseFrontMatter(data)
	if err != nil {
		return nil, fmt.Errorf("markdown loader %s: %w", rel, err)
	}
	sum := sha256.Sum256(data)

	return &Page{
		Path:     rel,
		Meta:     meta,
		Body:     body,
		Checksum: sum[:],
	}, nil
}
