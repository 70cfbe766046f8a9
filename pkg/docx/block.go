// Package docx models the block tree exported by the cloud document API. A
// document is a flat list of blocks linked by parent and children ids; every
// block carries exactly one Content variant selected by its BlockType.
package docx

import "strings"

// BlockType is the numeric tag used by the document API to select the payload
// carried by a block.
type BlockType int

const (
	BlockTypePage           BlockType = 1
	BlockTypeText           BlockType = 2
	BlockTypeHeading1       BlockType = 3
	BlockTypeHeading2       BlockType = 4
	BlockTypeHeading3       BlockType = 5
	BlockTypeHeading4       BlockType = 6
	BlockTypeHeading5       BlockType = 7
	BlockTypeHeading6       BlockType = 8
	BlockTypeHeading7       BlockType = 9
	BlockTypeHeading8       BlockType = 10
	BlockTypeHeading9       BlockType = 11
	BlockTypeBullet         BlockType = 12
	BlockTypeOrdered        BlockType = 13
	BlockTypeCode           BlockType = 14
	BlockTypeQuote          BlockType = 15
	BlockTypeMentionDoc     BlockType = 16
	BlockTypeTodo           BlockType = 17
	BlockTypeBitable        BlockType = 18
	BlockTypeCallout        BlockType = 19
	BlockTypeChatCard       BlockType = 20
	BlockTypeDiagram        BlockType = 21
	BlockTypeDivider        BlockType = 22
	BlockTypeFile           BlockType = 23
	BlockTypeGrid           BlockType = 24
	BlockTypeGridColumn     BlockType = 25
	BlockTypeIframe         BlockType = 26
	BlockTypeImage          BlockType = 27
	BlockTypeWidget         BlockType = 28
	BlockTypeMindNote       BlockType = 29
	BlockTypeSheet          BlockType = 30
	BlockTypeTable          BlockType = 31
	BlockTypeTableCell      BlockType = 32
	BlockTypeView           BlockType = 33
	BlockTypeQuoteContainer BlockType = 34
	BlockTypeSyncedBlock    BlockType = 999
)

var blockTypeNames = map[BlockType]string{
	BlockTypePage:           "Page",
	BlockTypeText:           "Text",
	BlockTypeHeading1:       "Heading1",
	BlockTypeHeading2:       "Heading2",
	BlockTypeHeading3:       "Heading3",
	BlockTypeHeading4:       "Heading4",
	BlockTypeHeading5:       "Heading5",
	BlockTypeHeading6:       "Heading6",
	BlockTypeHeading7:       "Heading7",
	BlockTypeHeading8:       "Heading8",
	BlockTypeHeading9:       "Heading9",
	BlockTypeBullet:         "Bullet",
	BlockTypeOrdered:        "Ordered",
	BlockTypeCode:           "Code",
	BlockTypeQuote:          "Quote",
	BlockTypeMentionDoc:     "MentionDoc",
	BlockTypeTodo:           "TodoList",
	BlockTypeBitable:        "Bitable",
	BlockTypeCallout:        "Callout",
	BlockTypeChatCard:       "ChatCard",
	BlockTypeDiagram:        "Diagram",
	BlockTypeDivider:        "Divider",
	BlockTypeFile:           "File",
	BlockTypeGrid:           "Grid",
	BlockTypeGridColumn:     "GridColumn",
	BlockTypeIframe:         "Iframe",
	BlockTypeImage:          "Image",
	BlockTypeWidget:         "Widget",
	BlockTypeMindNote:       "MindNote",
	BlockTypeSheet:          "Sheet",
	BlockTypeTable:          "Table",
	BlockTypeTableCell:      "TableCell",
	BlockTypeView:           "View",
	BlockTypeQuoteContainer: "QuoteContainer",
	BlockTypeSyncedBlock:    "SyncedBlock",
}

// String returns the API name of the block type, or "Unknown" for tags the
// package does not recognise.
func (t BlockType) String() string {
	if name, ok := blockTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Document is a fully materialised block tree. DocumentID doubles as the id of
// the root page block.
type Document struct {
	DocumentID string
	Blocks     []*Block
}

// Root returns the root page block, or nil.
func (d *Document) Root() *Block {
	if d == nil {
		return nil
	}
	for _, block := range d.Blocks {
		if block != nil && block.ID == d.DocumentID {
			return block
		}
	}
	return nil
}

// Title returns the plain text title of the root page.
func (d *Document) Title() string {
	root := d.Root()
	if root == nil {
		return ""
	}
	page, ok := root.Content.(Page)
	if !ok {
		return ""
	}
	return strings.TrimSpace(page.Text.Plain())
}

// Block is one node of the document tree.
type Block struct {
	ID       string
	ParentID string
	// Children lists child block ids in reading order.
	Children []string
	Type     BlockType
	Content  Content
	// Raw holds the block JSON as received, when the block was decoded.
	Raw []byte
}

// Content is the closed set of block payloads.
type Content interface {
	isContent()
}

// Page is the document root; its text is the document title.
type Page struct{ Text Text }

// Paragraph is a plain text block.
type Paragraph struct{ Text Text }

// Heading is a heading with a level between 1 and 9.
type Heading struct {
	Level int
	Text  Text
}

// Bullet is an unordered list item.
type Bullet struct{ Text Text }

// Ordered is an ordered list item. Its number is derived from its siblings.
type Ordered struct{ Text Text }

// Code is a fenced code block; the language lives in Text.Style.Language.
type Code struct{ Text Text }

// Quote is a single quoted paragraph.
type Quote struct{ Text Text }

// Todo is a checklist item; completion lives in Text.Style.Done.
type Todo struct{ Text Text }

// Divider is a horizontal rule.
type Divider struct{}

// Image references an image asset by token.
type Image struct {
	Width  int
	Height int
	Token  string
	Align  Align
}

// File references a file attachment by token.
type File struct {
	Name  string
	Token string
}

// Table is a grid of TableCell blocks laid out row-major.
type Table struct {
	Cells    []string
	Property TableProperty
}

// TableProperty carries table geometry.
type TableProperty struct {
	RowSize      int
	ColumnSize   int
	ColumnWidth  []int
	HeaderRow    bool
	HeaderColumn bool
	// MergeInfo has one entry per cell slot.
	MergeInfo []MergeInfo
}

// MergeInfo describes how many rows and columns a cell spans.
type MergeInfo struct {
	RowSpan int
	ColSpan int
}

// TableCell is a container for the blocks of one table cell.
type TableCell struct{}

// QuoteContainer quotes every child block.
type QuoteContainer struct{}

// View groups children without markup.
type View struct{}

// Grid lays its GridColumn children out side by side.
type Grid struct{ ColumnSize int }

// GridColumn is one column of a Grid; WidthRatio is a percentage.
type GridColumn struct{ WidthRatio int }

// Callout is a highlighted box with optional emoji.
type Callout struct {
	BackgroundColor int
	BorderColor     int
	TextColor       int
	EmojiID         string
}

// Iframe embeds an external page. URL is percent-encoded.
type Iframe struct {
	Type IframeType
	URL  string
}

// SyncedBlock references content synchronised from another document.
type SyncedBlock struct{}

// Unsupported stands in for any block type without a rendering rule.
type Unsupported struct{}

func (Page) isContent()           {}
func (Paragraph) isContent()      {}
func (Heading) isContent()        {}
func (Bullet) isContent()         {}
func (Ordered) isContent()        {}
func (Code) isContent()           {}
func (Quote) isContent()          {}
func (Todo) isContent()           {}
func (Divider) isContent()        {}
func (Image) isContent()          {}
func (File) isContent()           {}
func (Table) isContent()          {}
func (TableCell) isContent()      {}
func (QuoteContainer) isContent() {}
func (View) isContent()           {}
func (Grid) isContent()           {}
func (GridColumn) isContent()     {}
func (Callout) isContent()        {}
func (Iframe) isContent()         {}
func (SyncedBlock) isContent()    {}
func (Unsupported) isContent()    {}

// IframeType identifies the embedded provider.
type IframeType int

// Align is the horizontal alignment of a block.
type Align int

const (
	AlignLeft   Align = 1
	AlignCenter Align = 2
	AlignRight  Align = 3
)

// String returns the HTML align value. Unknown values fall back to left.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}
