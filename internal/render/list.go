package render

import (
	"strconv"

	"github.com/goliatone/go-docx-markdown/pkg/docx"
)

func (r *Renderer) renderBullet(block *docx.Block, bullet docx.Bullet, f frame) string {
	_, tight := contentOf(f.next).(docx.Bullet)
	return r.renderListItem(block, "- ", bullet.Text, tight, f)
}

func (r *Renderer) renderOrdered(block *docx.Block, ordered docx.Ordered, f frame) string {
	_, tight := contentOf(f.next).(docx.Ordered)
	prefix := strconv.Itoa(r.orderNumber(block)) + ". "
	return r.renderListItem(block, prefix, ordered.Text, tight, f)
}

// renderListItem writes marker and item text, then the children one level
// deeper. A childless item followed by an item of the same kind under the
// same parent drops its trailing newline so the list stays tight.
func (r *Renderer) renderListItem(block *docx.Block, marker string, text docx.Text, sameKindNext bool, f frame) string {
	buf := &Buffer{}
	buf.Write(marker)
	buf.Write(r.renderText(text, false))

	if sameKindNext && f.next.ParentID == block.ParentID && len(block.Children) == 0 {
		buf.TrimIfEndsWith("\n")
	}

	for _, id := range block.Children {
		buf.Write(r.render(r.block(id), f.child(f.indent+1)))
	}
	return buf.String()
}

// orderNumber counts the ordered items directly preceding block among its
// siblings. Any other sibling, including a missing one, restarts the count.
func (r *Renderer) orderNumber(block *docx.Block) int {
	parent := r.block(block.ParentID)
	if parent == nil {
		return 1
	}

	order := 1
	for idx, id := range parent.Children {
		if id != block.ID {
			continue
		}
		for i := idx - 1; i >= 0; i-- {
			sibling := r.block(parent.Children[i])
			if _, ok := contentOf(sibling).(docx.Ordered); !ok {
				break
			}
			order++
		}
		break
	}
	return order
}

// contentOf returns the content of block, or nil for a missing block.
func contentOf(block *docx.Block) docx.Content {
	if block == nil {
		return nil
	}
	return block.Content
}
