package render

import (
	"github.com/goliatone/go-docx-markdown/internal/markdown"
	"github.com/goliatone/go-docx-markdown/internal/runtimeconfig"
	"github.com/goliatone/go-docx-markdown/pkg/docx"
	"github.com/goliatone/go-docx-markdown/pkg/interfaces"
)

// OptionsFromConfig builds renderer options from runtime configuration.
// Metadata formats that do not map to a code language are ignored; Validate
// reports them earlier.
func OptionsFromConfig(cfg runtimeconfig.Config, logger interfaces.Logger) Options {
	langs := make([]docx.CodeLanguage, 0, len(cfg.Render.MetadataLanguages))
	for _, name := range cfg.Render.MetadataLanguages {
		if lang, ok := MetadataLanguage(name); ok {
			langs = append(langs, lang)
		}
	}

	return Options{
		EmitUnsupported:     cfg.Render.EmitUnsupported,
		MaxDepth:            cfg.Render.MaxDepth,
		KeepInvalidMetadata: cfg.Render.KeepInvalidMetadata,
		MetadataLanguages:   langs,
		HTML:                markdown.NewGoldmarkParser(cfg.Markdown.ParseOptions()),
		Logger:              logger,
	}
}
