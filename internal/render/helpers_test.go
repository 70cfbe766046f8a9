package render

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-docx-markdown/pkg/docx"
	"github.com/goliatone/go-docx-markdown/pkg/interfaces"
)

// docBuilder assembles block trees for tests. Blocks are linked to their
// parent as they are added.
type docBuilder struct {
	doc   *docx.Document
	index map[string]*docx.Block
}

func newDoc(title string) *docBuilder {
	root := &docx.Block{
		ID:      "root",
		Type:    docx.BlockTypePage,
		Content: docx.Page{Text: text(plain(title))},
	}
	return &docBuilder{
		doc:   &docx.Document{DocumentID: root.ID, Blocks: []*docx.Block{root}},
		index: map[string]*docx.Block{root.ID: root},
	}
}

func (b *docBuilder) add(parent, id string, blockType docx.BlockType, content docx.Content) *docBuilder {
	block := &docx.Block{ID: id, ParentID: parent, Type: blockType, Content: content}
	b.doc.Blocks = append(b.doc.Blocks, block)
	b.index[id] = block
	if p, ok := b.index[parent]; ok {
		p.Children = append(p.Children, id)
	}
	return b
}

// dangling appends a child id that has no block.
func (b *docBuilder) dangling(parent, id string) *docBuilder {
	p := b.index[parent]
	p.Children = append(p.Children, id)
	return b
}

func (b *docBuilder) paragraph(parent, id string, els ...docx.Element) *docBuilder {
	return b.add(parent, id, docx.BlockTypeText, docx.Paragraph{Text: text(els...)})
}

func (b *docBuilder) bullet(parent, id, content string) *docBuilder {
	return b.add(parent, id, docx.BlockTypeBullet, docx.Bullet{Text: text(plain(content))})
}

func (b *docBuilder) ordered(parent, id, content string) *docBuilder {
	return b.add(parent, id, docx.BlockTypeOrdered, docx.Ordered{Text: text(plain(content))})
}

func (b *docBuilder) code(parent, id string, lang docx.CodeLanguage, content string) *docBuilder {
	t := text(plain(content))
	t.Style.Language = lang
	return b.add(parent, id, docx.BlockTypeCode, docx.Code{Text: t})
}

func (b *docBuilder) build() *docx.Document {
	return b.doc
}

func text(els ...docx.Element) docx.Text {
	return docx.Text{Elements: els}
}

func plain(content string) docx.TextRun {
	return docx.TextRun{Content: content}
}

func styled(content string, style docx.ElementStyle) docx.TextRun {
	return docx.TextRun{Content: content, Style: &style}
}

// stubHTML wraps the trimmed Markdown in a marker so tests can assert on the
// surrounding structure without depending on goldmark output.
type stubHTML struct{}

func (stubHTML) Parse(markdown []byte) ([]byte, error) {
	return []byte("<md>" + strings.TrimSpace(string(markdown)) + "</md>\n"), nil
}

func (s stubHTML) ParseWithOptions(markdown []byte, _ interfaces.ParseOptions) ([]byte, error) {
	return s.Parse(markdown)
}

type logEntry struct {
	level string
	msg   string
	args  []any
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) record(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, args: args})
}

func (l *recordingLogger) Trace(msg string, args ...any) { l.record("trace", msg, args) }
func (l *recordingLogger) Debug(msg string, args ...any) { l.record("debug", msg, args) }
func (l *recordingLogger) Info(msg string, args ...any)  { l.record("info", msg, args) }
func (l *recordingLogger) Warn(msg string, args ...any)  { l.record("warn", msg, args) }
func (l *recordingLogger) Error(msg string, args ...any) { l.record("error", msg, args) }

func (l *recordingLogger) WithContext(context.Context) interfaces.Logger { return l }

func (l *recordingLogger) has(level, msg string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, entry := range l.entries {
		if entry.level == level && entry.msg == msg {
			return true
		}
	}
	return false
}

func (l *recordingLogger) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out strings.Builder
	for _, entry := range l.entries {
		fmt.Fprintf(&out, "%s %s %v\n", entry.level, entry.msg, entry.args)
	}
	return out.String()
}
