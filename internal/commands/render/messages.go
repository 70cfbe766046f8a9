package rendercmd

import (
	"io"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	renderDocumentMessageType = "docxmd.render.document"
	buildSummaryMessageType   = "docxmd.render.summary"
)

// RenderDocumentCommand renders one block list JSON document to Markdown.
// Input and Output override the file paths when set.
type RenderDocumentCommand struct {
	// InputPath is the block list JSON file to read.
	InputPath string `json:"input_path"`
	// OutputPath receives the Markdown. Parent directories are created.
	OutputPath string `json:"output_path,omitempty"`
	// Title, Slug and Position populate the front matter. Title defaults to
	// the page title.
	Title    string `json:"title,omitempty"`
	Slug     string `json:"slug,omitempty"`
	Position int    `json:"position,omitempty"`
	// EmitUnsupported renders unsupported blocks as fenced debug blocks.
	EmitUnsupported bool `json:"emit_unsupported,omitempty"`
	// FrontMatter prepends a YAML front matter block.
	FrontMatter bool `json:"front_matter,omitempty"`
	// AssetBaseURL overrides the configured asset base URL.
	AssetBaseURL string `json:"asset_base_url,omitempty"`

	Input  io.Reader `json:"-"`
	Output io.Writer `json:"-"`
}

// Type implements command.Message.
func (RenderDocumentCommand) Type() string { return renderDocumentMessageType }

// Validate requires an input source and a well formed asset base URL.
func (cmd RenderDocumentCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.InputPath,
			validation.When(cmd.Input == nil, validation.Required, validation.By(notBlank("input_path"))),
		),
		validation.Field(&cmd.AssetBaseURL, validation.By(noWhitespace("asset_base_url"))),
		validation.Field(&cmd.Position, validation.Min(-1)),
	)
}

// BuildSummaryCommand writes SUMMARY.md for a wiki node tree stored as JSON.
type BuildSummaryCommand struct {
	// InputPath is the node tree JSON file.
	InputPath string `json:"input_path"`
	// OutputPath receives SUMMARY.md.
	OutputPath string `json:"output_path,omitempty"`
	// ManifestPath, when set, receives the cleaned node tree as JSON.
	ManifestPath string `json:"manifest_path,omitempty"`
	// RootSlug prefixes every generated slug.
	RootSlug string `json:"root_slug,omitempty"`
	// DocsDir holds previously rendered pages. Their front matter fills in
	// node metadata, so pages marked hide: true leave the summary.
	DocsDir string `json:"docs_dir,omitempty"`

	Input  io.Reader `json:"-"`
	Output io.Writer `json:"-"`
}

// Type implements command.Message.
func (BuildSummaryCommand) Type() string { return buildSummaryMessageType }

// Validate requires an input source.
func (cmd BuildSummaryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.InputPath,
			validation.When(cmd.Input == nil, validation.Required, validation.By(notBlank("input_path"))),
		),
	)
}

func notBlank(field string) validation.RuleFunc {
	return func(value any) error {
		if s, _ := value.(string); strings.TrimSpace(s) == "" {
			return validation.NewError("docxmd.render."+field+"_required", field+" is required")
		}
		return nil
	}
}

func noWhitespace(field string) validation.RuleFunc {
	return func(value any) error {
		if s, _ := value.(string); strings.ContainsAny(s, " \t\r\n") {
			return validation.NewError("docxmd.render."+field+"_invalid", field+" must not contain whitespace")
		}
		return nil
	}
}
