package export

import (
	"path"
	"strings"
)

// Node is one entry of a wiki space tree.
type Node struct {
	NodeToken       string         `json:"node_token"`
	ParentNodeToken string         `json:"parent_node_token,omitempty"`
	ObjToken        string         `json:"obj_token,omitempty"`
	ObjCreateTime   string         `json:"obj_create_time,omitempty"`
	ObjEditTime     string         `json:"obj_edit_time,omitempty"`
	Title           string         `json:"title"`
	Depth           int            `json:"depth"`
	HasChild        bool           `json:"has_child,omitempty"`
	Slug            string         `json:"slug,omitempty"`
	Position        int            `json:"position"`
	Filename        string         `json:"filename,omitempty"`
	Meta            map[string]any `json:"meta,omitempty"`
	Children        []*Node        `json:"children,omitempty"`
}

// Hidden reports whether the node's metadata sets hide: true.
func (n *Node) Hidden() bool {
	hide, _ := n.Meta["hide"].(bool)
	return hide
}

// PrepareSlugs assigns slug, position and filename to every node below
// parent and returns the node token to slug map.
func PrepareSlugs(nodes []*Node, parent string) map[string]string {
	slugs := map[string]string{}
	prepareSlugs(nodes, parent, slugs)
	return slugs
}

func prepareSlugs(nodes []*Node, parent string, slugs map[string]string) {
	for idx, node := range nodes {
		if node == nil {
			continue
		}
		nodeSlug := path.Join(parent, NormalizeSlug(node.NodeToken))
		node.Slug = nodeSlug
		node.Position = idx
		node.Filename = nodeSlug + ".md"
		slugs[node.NodeToken] = nodeSlug

		prepareSlugs(node.Children, nodeSlug, slugs)
	}
}

// Summary renders a SUMMARY.md listing, indenting two spaces per depth.
func Summary(nodes []*Node) string {
	var out strings.Builder
	writeSummary(&out, nodes)
	return out.String()
}

func writeSummary(out *strings.Builder, nodes []*Node) {
	for _, node := range nodes {
		if node == nil {
			continue
		}
		out.WriteString(strings.Repeat("  ", max(node.Depth, 0)))
		out.WriteString("- [")
		out.WriteString(node.Title)
		out.WriteString("](")
		out.WriteString(node.Filename)
		out.WriteString(")\n")
		writeSummary(out, node.Children)
	}
}

// CleanupNodes removes hidden nodes, with their subtrees, at every level.
func CleanupNodes(nodes []*Node) []*Node {
	kept := make([]*Node, 0, len(nodes))
	for _, node := range nodes {
		if node == nil || node.Hidden() {
			continue
		}
		node.Children = CleanupNodes(node.Children)
		if len(node.Children) == 0 {
			node.Children = nil
		}
		kept = append(kept, node)
	}
	return kept
}
