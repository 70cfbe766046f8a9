package docx

import (
	"bytes"
	"encoding/json"
	"io"

	goerrors "github.com/goliatone/go-errors"
)

const decodeFailedCode = "DOCX_DECODE_FAILED"

// Decode parses the document API JSON shape
//
//	{"document": {"document_id": "..."}, "blocks": [...]}
//
// into a Document. Unknown block types decode into Unsupported content; only
// malformed JSON is reported as an error.
func Decode(data []byte) (*Document, error) {
	var wire wireDocument
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "docx: decode document").
			WithTextCode(decodeFailedCode)
	}

	doc := &Document{
		DocumentID: wire.Document.DocumentID,
		Blocks:     make([]*Block, 0, len(wire.Blocks)),
	}
	for _, raw := range wire.Blocks {
		if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			continue
		}
		block, err := decodeBlock(raw)
		if err != nil {
			return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "docx: decode block").
				WithTextCode(decodeFailedCode)
		}
		doc.Blocks = append(doc.Blocks, block)
	}
	return doc, nil
}

// DecodeReader reads the whole stream and decodes it with Decode.
func DecodeReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "docx: read document").
			WithTextCode(decodeFailedCode)
	}
	return Decode(data)
}

// DebugJSON returns the block as indented JSON. Decoded blocks use their raw
// payload; blocks built in code fall back to their identifying fields.
func (b *Block) DebugJSON() string {
	if b == nil {
		return "null"
	}
	if len(b.Raw) > 0 {
		var out bytes.Buffer
		if err := json.Indent(&out, b.Raw, "", "  "); err == nil {
			return out.String()
		}
	}
	data, err := json.MarshalIndent(struct {
		BlockID   string    `json:"block_id"`
		ParentID  string    `json:"parent_id,omitempty"`
		Children  []string  `json:"children,omitempty"`
		BlockType BlockType `json:"block_type"`
	}{b.ID, b.ParentID, b.Children, b.Type}, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

func decodeBlock(raw json.RawMessage) (*Block, error) {
	var wire wireBlock
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, err
	}
	block := &Block{
		ID:       wire.BlockID,
		ParentID: wire.ParentID,
		Children: wire.Children,
		Type:     wire.BlockType,
		Raw:      append([]byte(nil), raw...),
	}
	block.Content = wire.content()
	return block, nil
}

type wireDocument struct {
	Document struct {
		DocumentID string `json:"document_id"`
	} `json:"document"`
	Blocks []json.RawMessage `json:"blocks"`
}

type wireBlock struct {
	BlockID   string    `json:"block_id"`
	ParentID  string    `json:"parent_id"`
	Children  []string  `json:"children"`
	BlockType BlockType `json:"block_type"`

	Page     *wireText `json:"page"`
	Text     *wireText `json:"text"`
	Heading1 *wireText `json:"heading1"`
	Heading2 *wireText `json:"heading2"`
	Heading3 *wireText `json:"heading3"`
	Heading4 *wireText `json:"heading4"`
	Heading5 *wireText `json:"heading5"`
	Heading6 *wireText `json:"heading6"`
	Heading7 *wireText `json:"heading7"`
	Heading8 *wireText `json:"heading8"`
	Heading9 *wireText `json:"heading9"`
	Bullet   *wireText `json:"bullet"`
	Ordered  *wireText `json:"ordered"`
	Code     *wireText `json:"code"`
	Quote    *wireText `json:"quote"`
	Todo     *wireText `json:"todo"`

	Callout *struct {
		BackgroundColor int    `json:"background_color"`
		BorderColor     int    `json:"border_color"`
		TextColor       int    `json:"text_color"`
		EmojiID         string `json:"emoji_id"`
	} `json:"callout"`
	File *struct {
		Name  string `json:"name"`
		Token string `json:"token"`
	} `json:"file"`
	Grid *struct {
		ColumnSize int `json:"column_size"`
	} `json:"grid"`
	GridColumn *struct {
		WidthRatio int `json:"width_ratio"`
	} `json:"grid_column"`
	Iframe *struct {
		Component struct {
			IframeType int    `json:"iframe_type"`
			URL        string `json:"url"`
		} `json:"component"`
	} `json:"iframe"`
	Image *struct {
		Width  int    `json:"width"`
		Height int    `json:"height"`
		Token  string `json:"token"`
		Align  int    `json:"align"`
	} `json:"image"`
	Table *struct {
		Cells    []string `json:"cells"`
		Property struct {
			RowSize      int   `json:"row_size"`
			ColumnSize   int   `json:"column_size"`
			ColumnWidth  []int `json:"column_width"`
			HeaderRow    bool  `json:"header_row"`
			HeaderColumn bool  `json:"header_column"`
			MergeInfo    []struct {
				RowSpan int `json:"row_span"`
				ColSpan int `json:"col_span"`
			} `json:"merge_info"`
		} `json:"property"`
	} `json:"table"`
}

func (w wireBlock) content() Content {
	switch w.BlockType {
	case BlockTypePage:
		return Page{Text: w.Page.text()}
	case BlockTypeText:
		return Paragraph{Text: w.Text.text()}
	case BlockTypeHeading1, BlockTypeHeading2, BlockTypeHeading3,
		BlockTypeHeading4, BlockTypeHeading5, BlockTypeHeading6,
		BlockTypeHeading7, BlockTypeHeading8, BlockTypeHeading9:
		level := int(w.BlockType-BlockTypeHeading1) + 1
		headings := []*wireText{w.Heading1, w.Heading2, w.Heading3, w.Heading4,
			w.Heading5, w.Heading6, w.Heading7, w.Heading8, w.Heading9}
		return Heading{Level: level, Text: headings[level-1].text()}
	case BlockTypeBullet:
		return Bullet{Text: w.Bullet.text()}
	case BlockTypeOrdered:
		return Ordered{Text: w.Ordered.text()}
	case BlockTypeCode:
		return Code{Text: w.Code.text()}
	case BlockTypeQuote:
		return Quote{Text: w.Quote.text()}
	case BlockTypeTodo:
		return Todo{Text: w.Todo.text()}
	case BlockTypeDivider:
		return Divider{}
	case BlockTypeImage:
		if w.Image == nil {
			return Image{}
		}
		return Image{
			Width:  w.Image.Width,
			Height: w.Image.Height,
			Token:  w.Image.Token,
			Align:  Align(w.Image.Align),
		}
	case BlockTypeFile:
		if w.File == nil {
			return File{}
		}
		return File{Name: w.File.Name, Token: w.File.Token}
	case BlockTypeTable:
		if w.Table == nil {
			return Table{}
		}
		prop := w.Table.Property
		merge := make([]MergeInfo, len(prop.MergeInfo))
		for i, info := range prop.MergeInfo {
			merge[i] = MergeInfo{RowSpan: info.RowSpan, ColSpan: info.ColSpan}
		}
		return Table{
			Cells: w.Table.Cells,
			Property: TableProperty{
				RowSize:      prop.RowSize,
				ColumnSize:   prop.ColumnSize,
				ColumnWidth:  prop.ColumnWidth,
				HeaderRow:    prop.HeaderRow,
				HeaderColumn: prop.HeaderColumn,
				MergeInfo:    merge,
			},
		}
	case BlockTypeTableCell:
		return TableCell{}
	case BlockTypeQuoteContainer:
		return QuoteContainer{}
	case BlockTypeView:
		return View{}
	case BlockTypeGrid:
		if w.Grid == nil {
			return Grid{}
		}
		return Grid{ColumnSize: w.Grid.ColumnSize}
	case BlockTypeGridColumn:
		if w.GridColumn == nil {
			return GridColumn{}
		}
		return GridColumn{WidthRatio: w.GridColumn.WidthRatio}
	case BlockTypeCallout:
		if w.Callout == nil {
			return Callout{}
		}
		return Callout{
			BackgroundColor: w.Callout.BackgroundColor,
			BorderColor:     w.Callout.BorderColor,
			TextColor:       w.Callout.TextColor,
			EmojiID:         w.Callout.EmojiID,
		}
	case BlockTypeIframe:
		if w.Iframe == nil {
			return Iframe{}
		}
		return Iframe{
			Type: IframeType(w.Iframe.Component.IframeType),
			URL:  w.Iframe.Component.URL,
		}
	case BlockTypeSyncedBlock:
		return SyncedBlock{}
	default:
		return Unsupported{}
	}
}

type wireText struct {
	Style struct {
		Align    int  `json:"align"`
		Done     bool `json:"done"`
		Folded   bool `json:"folded"`
		Language int  `json:"language"`
		Wrap     bool `json:"wrap"`
	} `json:"style"`
	Elements []wireElement `json:"elements"`
}

func (w *wireText) text() Text {
	if w == nil {
		return Text{}
	}
	text := Text{
		Style: TextStyle{
			Align:    Align(w.Style.Align),
			Done:     w.Style.Done,
			Folded:   w.Style.Folded,
			Language: CodeLanguage(w.Style.Language),
			Wrap:     w.Style.Wrap,
		},
	}
	if len(w.Elements) == 0 {
		return text
	}
	text.Elements = make([]Element, 0, len(w.Elements))
	for _, el := range w.Elements {
		if converted := el.element(); converted != nil {
			text.Elements = append(text.Elements, converted)
		}
	}
	return text
}

type wireElement struct {
	TextRun    *wireRun `json:"text_run"`
	Equation   *wireRun `json:"equation"`
	MentionDoc *struct {
		Token string `json:"token"`
		Title string `json:"title"`
		URL   string `json:"url"`
	} `json:"mention_doc"`
}

// element keeps inline files and inline blocks as InlineObject so element
// counts stay aligned with the source.
func (w wireElement) element() Element {
	switch {
	case w.TextRun != nil:
		return TextRun{Content: w.TextRun.Content, Style: w.TextRun.Style.style()}
	case w.Equation != nil:
		return Equation{Content: w.Equation.Content}
	case w.MentionDoc != nil:
		return MentionDoc{Token: w.MentionDoc.Token, Title: w.MentionDoc.Title, URL: w.MentionDoc.URL}
	default:
		return InlineObject{}
	}
}

type wireRun struct {
	Content string            `json:"content"`
	Style   *wireElementStyle `json:"text_element_style"`
}

type wireElementStyle struct {
	Bold          bool `json:"bold"`
	Italic        bool `json:"italic"`
	Strikethrough bool `json:"strikethrough"`
	Underline     bool `json:"underline"`
	InlineCode    bool `json:"inline_code"`
	Link          *struct {
		URL string `json:"url"`
	} `json:"link"`
}

func (w *wireElementStyle) style() *ElementStyle {
	if w == nil {
		return nil
	}
	style := &ElementStyle{
		Bold:          w.Bold,
		Italic:        w.Italic,
		Strikethrough: w.Strikethrough,
		Underline:     w.Underline,
		InlineCode:    w.InlineCode,
	}
	if w.Link != nil {
		style.Link = w.Link.URL
	}
	return style
}
