package render

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-docx-markdown/pkg/docx"
)

const (
	// complexColumnWidth is the widest column a pipe table may carry.
	complexColumnWidth = 100
	blankCell          = "   "
)

// isComplexTable reports whether the table needs HTML output: any merged
// cell or any column wider than complexColumnWidth.
func isComplexTable(table docx.Table) bool {
	for _, info := range table.Property.MergeInfo {
		if info.RowSpan > 1 || info.ColSpan > 1 {
			return true
		}
	}
	for _, width := range table.Property.ColumnWidth {
		if width > complexColumnWidth {
			return true
		}
	}
	return false
}

func (r *Renderer) renderTable(table docx.Table, f frame) string {
	if table.Property.ColumnSize <= 0 {
		return ""
	}
	if isComplexTable(table) {
		return r.renderHTMLTable(table, f)
	}
	return r.renderPipeTable(table, f)
}

// tableRows renders every cell with convert and splits the results into rows
// of ColumnSize cells.
func (r *Renderer) tableRows(table docx.Table, f frame, convert func(string) string) [][]string {
	cols := table.Property.ColumnSize
	var rows [][]string
	for idx, id := range table.Cells {
		cell := convert(r.render(r.block(id), f.child(0)))
		row := idx / cols
		for len(rows) <= row {
			rows = append(rows, make([]string, 0, cols))
		}
		rows[row] = append(rows[row], cell)
	}
	return rows
}

func (r *Renderer) renderPipeTable(table docx.Table, f frame) string {
	cols := table.Property.ColumnSize
	rows := r.tableRows(table, f, func(text string) string {
		return strings.ReplaceAll(strings.TrimSuffix(text, "\n"), "\n", "<br/>")
	})

	var head []string
	if table.Property.HeaderRow && len(rows) > 0 {
		head, rows = rows[0], rows[1:]
	}

	buf := &Buffer{}
	buf.Write("|")
	for i := 0; i < cols; i++ {
		if i < len(head) && head[i] != "" {
			buf.Write(head[i])
		} else {
			buf.Write(blankCell)
		}
		buf.Write("|")
	}
	buf.Write("\n")

	buf.Write("|")
	buf.Write(strings.Repeat("---|", cols))
	buf.Write("\n")

	for _, row := range rows {
		buf.Write("|")
		for i := 0; i < cols; i++ {
			if i < len(row) {
				buf.Write(row[i])
			} else {
				buf.Write(blankCell)
			}
			buf.Write("|")
		}
		buf.Write("\n")
	}
	return buf.String()
}

// htmlTable tracks the flat cell cursor while HTML rows are written.
type htmlTable struct {
	merge  []docx.MergeInfo
	emit   []bool
	cursor int
}

// newHTMLTable marks the slots covered by a span. Row spans cover the slots
// below a cell and column spans the slots to its right; the two are marked
// independently, so the inner area of a cell spanning both ways is not
// covered.
func newHTMLTable(table docx.Table) *htmlTable {
	cols := table.Property.ColumnSize
	merge := table.Property.MergeInfo

	slots := len(table.Cells)
	if len(merge) > slots {
		slots = len(merge)
	}
	emit := make([]bool, slots)
	for i := range emit {
		emit[i] = true
	}

	skip := func(idx int) {
		if idx >= 0 && idx < len(emit) {
			emit[idx] = false
		}
	}
	for i, info := range merge {
		for j := 1; j < info.RowSpan; j++ {
			skip(i + j*cols)
		}
		for j := 1; j < info.ColSpan; j++ {
			skip(i + j)
		}
	}
	return &htmlTable{merge: merge, emit: emit}
}

func (t *htmlTable) writeCell(buf *Buffer, tag, cell string) {
	idx := t.cursor
	t.cursor++
	if idx >= len(t.emit) || !t.emit[idx] {
		return
	}
	buf.Write("<" + tag + t.spanAttrs(idx) + ">" + cell + "</" + tag + ">")
}

func (t *htmlTable) spanAttrs(idx int) string {
	if idx >= len(t.merge) {
		return ""
	}
	info := t.merge[idx]
	var attrs string
	if info.RowSpan > 1 {
		attrs += ` rowspan="` + strconv.Itoa(info.RowSpan) + `"`
	}
	if info.ColSpan > 1 {
		attrs += ` colspan="` + strconv.Itoa(info.ColSpan) + `"`
	}
	return attrs
}

// renderHTMLTable writes the table as raw HTML. Cell content is converted
// from Markdown so rich cells survive.
func (r *Renderer) renderHTMLTable(table docx.Table, f frame) string {
	prop := table.Property
	cols := prop.ColumnSize
	rows := r.tableRows(table, f, func(text string) string {
		return strings.TrimSpace(r.markdownToHTML(text))
	})

	buf := &Buffer{}
	open := "<table"
	if prop.HeaderColumn {
		open += ` header_column="1"`
	}
	if prop.HeaderRow {
		open += ` header_row="1"`
	}
	buf.WriteLine(open + ">")

	buf.WriteLine("<colgroup>")
	for i := 0; i < cols; i++ {
		if i < len(prop.ColumnWidth) && prop.ColumnWidth[i] > 0 {
			buf.WriteLine(`<col width="` + strconv.Itoa(prop.ColumnWidth[i]) + `"/>`)
		} else {
			buf.WriteLine("<col/>")
		}
	}
	buf.WriteLine("</colgroup>")

	cells := newHTMLTable(table)

	if prop.HeaderRow {
		var head []string
		if len(rows) > 0 {
			head, rows = rows[0], rows[1:]
		}
		buf.WriteLine("<thead>")
		buf.Write("<tr>")
		for i := 0; i < cols; i++ {
			var cell string
			if i < len(head) {
				cell = head[i]
			}
			cells.writeCell(buf, "th", cell)
		}
		buf.WriteLine("</tr>")
		buf.WriteLine("</thead>")
	}

	buf.WriteLine("<tbody>")
	for _, row := range rows {
		buf.Write("<tr>")
		for _, cell := range row {
			cells.writeCell(buf, "td", cell)
		}
		buf.WriteLine("</tr>")
	}
	buf.WriteLine("</tbody>")
	buf.WriteLine("</table>")

	return buf.Render(f.indent)
}
