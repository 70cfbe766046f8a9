package render

import (
	"strings"

	"github.com/goliatone/go-docx-markdown/internal/markdown"
	"github.com/goliatone/go-docx-markdown/pkg/docx"
)

var metadataFormatsByLanguage = map[docx.CodeLanguage]string{
	docx.LanguageYAML: markdown.FormatYAML,
	docx.LanguageJSON: markdown.FormatJSON,
	docx.LanguageTOML: markdown.FormatTOML,
}

// MetadataLanguage maps a metadata format name (yaml, json, toml) to its code
// language.
func MetadataLanguage(format string) (docx.CodeLanguage, bool) {
	key := strings.ToLower(strings.TrimSpace(format))
	for lang, name := range metadataFormatsByLanguage {
		if name == key {
			return lang, true
		}
	}
	return 0, false
}

// extractMetadata follows the first-child chain from block until it reaches a
// code block and reports whether that code block was consumed as metadata.
// When it returns true the page skips block entirely.
func (r *Renderer) extractMetadata(block *docx.Block, depth int) bool {
	for ; depth <= r.opts.MaxDepth; depth++ {
		if block == nil {
			return false
		}
		code, ok := block.Content.(docx.Code)
		if ok {
			return r.consumeMetadata(block, code)
		}
		if len(block.Children) == 0 {
			return false
		}
		block = r.block(block.Children[0])
	}
	return false
}

func (r *Renderer) consumeMetadata(block *docx.Block, code docx.Code) bool {
	format, ok := r.metadataFormat(code.Text.Style.Language)
	if !ok {
		return false
	}

	content := strings.TrimSpace(r.renderText(code.Text, true))
	if content == "" {
		return false
	}

	meta, err := markdown.ParseMetadata(format, content)
	if err != nil {
		r.logger.Warn("render.metadata.invalid",
			"block_id", block.ID,
			"language", format,
			"content", content,
			"error", err,
		)
		return !r.opts.KeepInvalidMetadata
	}

	r.meta = meta
	return true
}

func (r *Renderer) metadataFormat(lang docx.CodeLanguage) (string, bool) {
	for _, accepted := range r.opts.MetadataLanguages {
		if accepted != lang {
			continue
		}
		format, ok := metadataFormatsByLanguage[lang]
		return format, ok
	}
	return "", false
}
