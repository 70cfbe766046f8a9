package docx

import "strings"

// Text is the payload shared by every text-bearing block.
type Text struct {
	Style    TextStyle
	Elements []Element
}

// Inline reports whether the payload renders several elements on one line.
func (t Text) Inline() bool {
	return len(t.Elements) > 1
}

// Plain returns the unstyled text of runs, equations and mention titles.
func (t Text) Plain() string {
	var out strings.Builder
	for _, el := range t.Elements {
		switch el := el.(type) {
		case TextRun:
			out.WriteString(el.Content)
		case Equation:
			out.WriteString(el.Content)
		case MentionDoc:
			out.WriteString(el.Title)
		}
	}
	return out.String()
}

// TextStyle holds block level text attributes.
type TextStyle struct {
	Align    Align
	Done     bool
	Folded   bool
	Language CodeLanguage
	Wrap     bool
}

// Element is the closed set of inline text elements.
type Element interface {
	isElement()
}

// TextRun is a span of plain text with an optional style.
type TextRun struct {
	Content string
	Style   *ElementStyle
}

// Equation is a TeX formula.
type Equation struct {
	Content string
}

// MentionDoc links to another document. Token is percent-encoded.
type MentionDoc struct {
	Token string
	Title string
	URL   string
}

// InlineObject is an inline file or block reference. It has no textual form.
type InlineObject struct{}

func (TextRun) isElement()      {}
func (Equation) isElement()     {}
func (MentionDoc) isElement()   {}
func (InlineObject) isElement() {}

// ElementStyle carries inline formatting flags. At most one flag is honoured
// when rendering.
type ElementStyle struct {
	Bold          bool
	Italic        bool
	Strikethrough bool
	Underline     bool
	InlineCode    bool
	// Link is the percent-encoded target URL, empty when the run is not a link.
	Link string
}
