package render

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark-emoji/definition"

	"github.com/goliatone/go-docx-markdown/pkg/docx"
)

var emojis = definition.Github()

// emojiGlyph resolves an emoji id to its Unicode glyph. Unknown ids yield an
// empty string.
func emojiGlyph(id string) string {
	emoji, ok := emojis.Get(id)
	if !ok || emoji == nil {
		return ""
	}
	return string(emoji.Unicode)
}

// renderGrid wraps the grid columns in a flex container.
func (r *Renderer) renderGrid(block *docx.Block, grid docx.Grid, f frame) string {
	size := strconv.Itoa(grid.ColumnSize)

	buf := &Buffer{}
	buf.WriteLine(`<div class="flex gap-3 columns-` + size + `" column-size="` + size + `">`)
	for _, id := range block.Children {
		child := r.block(id)
		column, ok := contentOf(child).(docx.GridColumn)
		if !ok {
			continue
		}
		buf.Write(r.renderGridColumn(child, column, f.child(0)))
	}
	buf.WriteLine("</div>")

	return buf.Render(f.indent)
}

func (r *Renderer) renderGridColumn(block *docx.Block, column docx.GridColumn, f frame) string {
	ratio := strconv.Itoa(column.WidthRatio)

	buf := &Buffer{}
	buf.WriteLine(`<div class="w-[` + ratio + `%]" width-ratio="` + ratio + `">`)
	buf.Write(r.markdownToHTML(strings.Join(r.renderChildrenList(block, f), "\n")))
	buf.WriteLine("</div>")
	return buf.String()
}

// renderCallout writes a styled box. Class names carry the colour enums and
// the inline style their resolved values; the body is converted to HTML.
func (r *Renderer) renderCallout(block *docx.Block, callout docx.Callout, f frame) string {
	classes := []string{"callout"}
	var styles []string

	if callout.BackgroundColor != 0 {
		if color, ok := docx.CalloutBackgroundColor(callout.BackgroundColor); ok {
			styles = append(styles, "background: "+color)
		}
		classes = append(classes, "callout-bg-"+strconv.Itoa(callout.BackgroundColor))
	}
	if callout.BorderColor != 0 {
		if color, ok := docx.CalloutBorderColor(callout.BorderColor); ok {
			styles = append(styles, "border: 1px solid "+color)
		}
		classes = append(classes, "callout-border-"+strconv.Itoa(callout.BorderColor))
	}
	if callout.TextColor != 0 {
		color, ok := docx.FontColor(callout.TextColor)
		if !ok {
			color = docx.DefaultFontColor
		}
		styles = append(styles, "color: "+color)
		classes = append(classes, "callout-color-"+strconv.Itoa(callout.TextColor))
	}

	open := `<div class="` + strings.Join(classes, " ") + `"`
	if len(styles) > 0 {
		open += ` style="` + strings.Join(styles, "; ") + `"`
	}

	buf := &Buffer{}
	buf.WriteLine(open + ">")
	if callout.EmojiID != "" {
		buf.Write("<div class='callout-emoji'>")
		buf.Write(emojiGlyph(callout.EmojiID))
		buf.WriteLine("</div>")
	}
	buf.Write(r.markdownToHTML(strings.Join(r.renderChildrenList(block, f), "\n")))
	buf.WriteLine("</div>")

	return buf.Render(f.indent)
}
