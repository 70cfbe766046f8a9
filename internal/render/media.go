package render

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-docx-markdown/pkg/docx"
)

// renderImage emits an <img> element pointing at the asset token. Height is
// only written when width is unknown so the aspect ratio is never forced.
func (r *Renderer) renderImage(image docx.Image) string {
	attrs := []html.Attribute{{Key: "src", Val: image.Token}}
	if image.Width > 0 {
		attrs = append(attrs, html.Attribute{Key: "src-width", Val: strconv.Itoa(image.Width)})
	} else if image.Height > 0 {
		attrs = append(attrs, html.Attribute{Key: "src-height", Val: strconv.Itoa(image.Height)})
	}
	if align := image.Align.String(); align != "left" {
		attrs = append(attrs, html.Attribute{Key: "align", Val: align})
	}

	r.assets.Add(AssetImage, image.Token)
	return renderElement(atom.Img, attrs) + "\n"
}

func (r *Renderer) renderFile(file docx.File) string {
	r.assets.Add(AssetFile, file.Token)
	return "[" + file.Name + "](" + file.Token + ")\n"
}

func (r *Renderer) renderIframe(iframe docx.Iframe) string {
	if iframe.URL == "" {
		return ""
	}
	attrs := []html.Attribute{{Key: "src", Val: decodeURL(iframe.URL)}}
	return renderElement(atom.Iframe, attrs) + "\n"
}

// renderElement serializes an empty element. Void elements are closed with
// "/>" and attribute values are escaped.
func renderElement(tag atom.Atom, attrs []html.Attribute) string {
	node := &html.Node{
		Type:     html.ElementNode,
		DataAtom: tag,
		Data:     tag.String(),
		Attr:     attrs,
	}
	var out strings.Builder
	if err := html.Render(&out, node); err != nil {
		return ""
	}
	return out.String()
}
