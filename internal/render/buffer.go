package render

import "strings"

const indentUnit = "    "

// Buffer is an append-only list of text fragments. Fragments stay separate
// until Render so TrimIfEndsWith can inspect the most recent write.
type Buffer struct {
	fragments []string
	length    int
}

// Write appends text as a new fragment.
func (b *Buffer) Write(text string) {
	b.fragments = append(b.fragments, text)
	b.length += len(text)
}

// WriteBuffer appends every fragment of other, keeping fragment boundaries.
func (b *Buffer) WriteBuffer(other *Buffer) {
	if other == nil {
		return
	}
	for _, part := range other.fragments {
		b.Write(part)
	}
}

// WriteLine appends text followed by a newline.
func (b *Buffer) WriteLine(text string) {
	b.Write(text)
	b.Write("\n")
}

// WriteIndent appends level indentation units.
func (b *Buffer) WriteIndent(level int) {
	if level <= 0 {
		return
	}
	b.Write(strings.Repeat(indentUnit, level))
}

// TrimIfEndsWith removes suffix from the last fragment when that fragment ends
// with it. An empty suffix never matches.
func (b *Buffer) TrimIfEndsWith(suffix string) bool {
	if suffix == "" || len(b.fragments) == 0 {
		return false
	}
	last := len(b.fragments) - 1
	if !strings.HasSuffix(b.fragments[last], suffix) {
		return false
	}
	b.fragments[last] = b.fragments[last][:len(b.fragments[last])-len(suffix)]
	b.length -= len(suffix)
	return true
}

// Len reports the total byte length of the buffered text.
func (b *Buffer) Len() int {
	return b.length
}

// Render joins the fragments. With a positive indent every non-blank line
// after the first is prefixed with indent units.
func (b *Buffer) Render(indent int) string {
	text := strings.Join(b.fragments, "")
	if indent <= 0 {
		return text
	}
	prefix := strings.Repeat(indentUnit, indent)
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}

// String renders the buffer without indentation.
func (b *Buffer) String() string {
	return b.Render(0)
}
