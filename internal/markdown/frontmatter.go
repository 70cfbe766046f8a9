package markdown

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// Metadata formats accepted in leading code blocks and front matter.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatTOML = "toml"
)

var (
	// ErrUnknownFormat is returned when a metadata format has no registered codec.
	ErrUnknownFormat = errors.New("markdown: unknown metadata format")
	// ErrTrailingMetadata is returned when metadata content holds a delimiter
	// line, which would otherwise end the section early and drop the rest.
	ErrTrailingMetadata = errors.New("markdown: content after metadata delimiter")
)

type metadataFormat struct {
	start     string
	end       string
	unmarshal func([]byte, any) error
}

var metadataFormats = map[string]metadataFormat{
	FormatYAML: {start: "---", end: "---", unmarshal: yaml.Unmarshal},
	FormatJSON: {start: ";;;", end: ";;;", unmarshal: json.Unmarshal},
	FormatTOML: {start: "+++", end: "+++", unmarshal: toml.Unmarshal},
}

func (f metadataFormat) frontmatter() *frontmatter.Format {
	return frontmatter.NewFormat(f.start, f.end, f.unmarshal)
}

// KnownFormat reports whether name is a supported metadata format.
func KnownFormat(name string) bool {
	_, ok := metadataFormats[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// ParseMetadata decodes content written in the named format into a map. The
// content is framed with the format delimiters and handed to the front matter
// parser so every format shares one decoding path. Content that closes the
// section early is rejected with ErrTrailingMetadata.
func ParseMetadata(format, content string) (map[string]any, error) {
	key := strings.ToLower(strings.TrimSpace(format))
	f, ok := metadataFormats[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	var source strings.Builder
	source.WriteString(f.start)
	source.WriteByte('\n')
	source.WriteString(content)
	source.WriteByte('\n')
	source.WriteString(f.end)
	source.WriteByte('\n')

	meta := map[string]any{}
	rest, err := frontmatter.MustParse(strings.NewReader(source.String()), &meta, f.frontmatter())
	if err != nil {
		return nil, fmt.Errorf("parse %s metadata: %w", key, err)
	}
	if len(bytes.TrimSpace(rest)) > 0 {
		return nil, fmt.Errorf("parse %s metadata: %w", key, ErrTrailingMetadata)
	}
	return meta, nil
}

// ParseFrontMatter extracts the YAML, TOML or JSON front matter of a Markdown
// file. It returns the decoded fields and the body without delimiters. Files
// without front matter yield an empty map and the full source as body.
func ParseFrontMatter(source []byte) (map[string]any, []byte, error) {
	meta := map[string]any{}

	formats := []*frontmatter.Format{
		metadataFormats[FormatYAML].frontmatter(),
		metadataFormats[FormatTOML].frontmatter(),
		metadataFormats[FormatJSON].frontmatter(),
	}

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta, formats...)
	if err != nil {
		return nil, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return meta, body, nil
}
