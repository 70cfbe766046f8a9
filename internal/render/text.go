package render

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/goliatone/go-docx-markdown/pkg/docx"
)

var htmlTagEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// span is one rendered inline element: an opening wrapper, the content and a
// closing wrapper. Unstyled elements leave both wrappers empty.
type span struct {
	open  string
	text  string
	close string
}

// renderText renders a text payload. Inside code blocks content is written
// verbatim. A trailing newline is added when anything was produced.
func (r *Renderer) renderText(text docx.Text, code bool) string {
	spans := mergeSpans(textSpans(text, code))

	var out strings.Builder
	for _, s := range spans {
		out.WriteString(s.open)
		out.WriteString(s.text)
		out.WriteString(s.close)
	}
	if out.Len() > 0 {
		out.WriteByte('\n')
	}
	return out.String()
}

func textSpans(text docx.Text, code bool) []span {
	inline := text.Inline()
	spans := make([]span, 0, len(text.Elements))
	for _, el := range text.Elements {
		switch el := el.(type) {
		case docx.TextRun:
			spans = append(spans, runSpan(el, code))
		case docx.Equation:
			delim := "$$"
			if inline {
				delim = "$"
			}
			spans = append(spans, span{text: delim + strings.TrimRightFunc(el.Content, unicode.IsSpace) + delim})
		case docx.MentionDoc:
			spans = append(spans, span{text: "[" + el.Title + "](" + decodeURL(el.Token) + ")"})
		case docx.InlineObject:
			// No textual form; adjacent runs may still merge across it.
		}
	}
	return spans
}

// runSpan resolves the wrapper of a run. Only the highest priority style is
// honoured: bold, italic, strikethrough, underline, inline code, link.
func runSpan(run docx.TextRun, code bool) span {
	s := span{text: run.Content}
	escape := !code

	if style := run.Style; style != nil {
		switch {
		case style.Bold:
			s.open, s.close = "**", "**"
		case style.Italic:
			s.open, s.close = "_", "_"
		case style.Strikethrough:
			s.open, s.close = "~~", "~~"
		case style.Underline:
			s.open, s.close = "<u>", "</u>"
		case style.InlineCode:
			s.open, s.close = "`", "`"
			escape = false
		case style.Link != "":
			s.open, s.close = "[", "]("+decodeURL(style.Link)+")"
		}
	}

	if escape {
		s.text = htmlTagEscaper.Replace(s.text)
	}
	return s
}

// mergeSpans joins adjacent runs that share a wrapper: when the previous
// span closes with the current opener, both are dropped so `**He**` followed
// by `**llo**` becomes `**Hello**`.
func mergeSpans(spans []span) []span {
	for i := 1; i < len(spans); i++ {
		prev, cur := &spans[i-1], &spans[i]
		if cur.open == "" || !strings.HasSuffix(prev.close, cur.open) {
			continue
		}
		prev.close = strings.TrimSuffix(prev.close, cur.open)
		cur.open = ""
	}
	return spans
}

// decodeURL percent-decodes a URL, returning it unchanged when malformed.
func decodeURL(raw string) string {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}
