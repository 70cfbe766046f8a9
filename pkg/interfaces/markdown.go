package interfaces

// MarkdownParser converts Markdown into HTML. The renderer uses it for the
// blocks that can only be expressed as raw HTML (complex tables, grid columns
// and callouts), so their inner Markdown has to be converted first.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
	// XHTML closes void elements (`<br />`) so the output can be embedded in
	// JSX based site generators.
	XHTML bool
	// HeadingIDs adds generated id attributes to headings.
	HeadingIDs bool
}
