package export

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/goliatone/go-slug"
	"gopkg.in/yaml.v3"
)

const frontMatterDelimiter = "---\n"

// leadingKeys are written first, in this order, when present.
var leadingKeys = []string{"title", "slug", "sidebar_position"}

// PageInfo describes where a rendered page sits in the exported site.
type PageInfo struct {
	Title    string
	Slug     string
	Position int
	RenderID string
}

// PageFrontMatter merges page placement fields with metadata extracted from
// the document. Metadata wins on conflicts. The resulting slug is normalized
// segment by segment.
func PageFrontMatter(page PageInfo, meta map[string]any) map[string]any {
	fields := map[string]any{
		"title":            page.Title,
		"slug":             page.Slug,
		"sidebar_position": page.Position,
	}
	if page.RenderID != "" {
		fields["render_id"] = page.RenderID
	}
	maps.Copy(fields, meta)

	if value, ok := fields["slug"].(string); ok {
		fields["slug"] = NormalizePageSlug(value)
	}
	return fields
}

// NormalizePageSlug normalizes every path segment of value. Segments that
// cannot be normalized are kept as given.
func NormalizePageSlug(value string) string {
	segments := strings.Split(strings.Trim(value, "/"), "/")
	out := segments[:0]
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		normalized, err := slug.Normalize(segment)
		if err != nil || normalized == "" {
			normalized = segment
		}
		out = append(out, normalized)
	}
	return strings.Join(out, "/")
}

// FrontMatter renders fields as a YAML front matter block. Nil values are
// skipped; title, slug and sidebar_position lead, the rest follow sorted.
// An empty field set renders as an empty string.
func FrontMatter(fields map[string]any) (string, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range orderedKeys(fields) {
		value := fields[key]
		if value == nil {
			continue
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(value); err != nil {
			return "", fmt.Errorf("export: encode front matter %q: %w", key, err)
		}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			valueNode,
		)
	}
	if len(doc.Content) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("export: encode front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("export: encode front matter: %w", err)
	}
	return frontMatterDelimiter + buf.String() + frontMatterDelimiter, nil
}

func orderedKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for _, key := range leadingKeys {
		if _, ok := fields[key]; ok {
			keys = append(keys, key)
		}
	}
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		if !slices.Contains(leadingKeys, key) {
			keys = append(keys, key)
		}
	}
	return keys
}
