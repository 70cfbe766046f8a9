package runtimeconfig

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-docx-markdown/internal/markdown"
	"github.com/goliatone/go-docx-markdown/pkg/interfaces"
)

var ErrRenderMaxDepthInvalid = errors.New("docxmd config: render max depth must be zero or positive")
var ErrMetadataLanguageUnknown = errors.New("docxmd config: metadata language is not supported")
var ErrMarkdownExtensionUnknown = errors.New("docxmd config: markdown extension is not supported")
var ErrAssetBaseURLInvalid = errors.New("docxmd config: asset base url is invalid")
var ErrLoggingProviderUnknown = errors.New("docxmd config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("docxmd config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("docxmd config: logging format is invalid")

// Config aggregates renderer, export and logging settings.
type Config struct {
	Render   RenderConfig
	Markdown MarkdownParserConfig
	Export   ExportConfig
	Logging  LoggingConfig
}

// RenderConfig controls the block tree renderer.
type RenderConfig struct {
	EmitUnsupported bool
	// MaxDepth limits block nesting. Zero selects the renderer default.
	MaxDepth            int
	KeepInvalidMetadata bool
	// MetadataLanguages lists the formats (yaml, json, toml) accepted for the
	// leading metadata code block.
	MetadataLanguages []string
}

// MarkdownParserConfig mirrors interfaces.ParseOptions for the Markdown to
// HTML conversion of embedded blocks.
type MarkdownParserConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
	XHTML      bool
}

// ParseOptions converts the configuration into parser options.
func (cfg MarkdownParserConfig) ParseOptions() interfaces.ParseOptions {
	return interfaces.ParseOptions{
		Extensions: append([]string(nil), cfg.Extensions...),
		Sanitize:   cfg.Sanitize,
		HardWraps:  cfg.HardWraps,
		SafeMode:   cfg.SafeMode,
		XHTML:      cfg.XHTML,
	}
}

// ExportConfig captures how rendered pages are written for a site generator.
type ExportConfig struct {
	OutputDir string
	// AssetBaseURL prefixes asset tokens when links are rewritten.
	AssetBaseURL string
	// FrontMatter prepends a YAML front matter block to exported pages.
	FrontMatter bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the settings used by the CLI when no flags are given.
func DefaultConfig() Config {
	embed := markdown.EmbedOptions()
	return Config{
		Render: RenderConfig{
			MaxDepth:          128,
			MetadataLanguages: []string{markdown.FormatYAML},
		},
		Markdown: MarkdownParserConfig{
			Extensions: embed.Extensions,
			HardWraps:  embed.HardWraps,
			XHTML:      embed.XHTML,
		},
		Export: ExportConfig{
			OutputDir:    "dist",
			AssetBaseURL: "/assets",
			FrontMatter:  true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if cfg.Render.MaxDepth < 0 {
		return fmt.Errorf("%w: %d", ErrRenderMaxDepthInvalid, cfg.Render.MaxDepth)
	}
	for _, lang := range cfg.Render.MetadataLanguages {
		if !markdown.KnownFormat(lang) {
			return fmt.Errorf("%w: %s", ErrMetadataLanguageUnknown, lang)
		}
	}
	for _, ext := range cfg.Markdown.Extensions {
		if !markdown.KnownExtension(ext) {
			return fmt.Errorf("%w: %s", ErrMarkdownExtensionUnknown, ext)
		}
	}
	if base := cfg.Export.AssetBaseURL; base != "" {
		if strings.TrimSpace(base) != base || strings.ContainsAny(base, " \t\n") {
			return fmt.Errorf("%w: %q", ErrAssetBaseURLInvalid, base)
		}
		if _, err := url.Parse(base); err != nil {
			return fmt.Errorf("%w: %v", ErrAssetBaseURLInvalid, err)
		}
	}

	provider := normalizeProvider(cfg.Logging.Provider)
	if provider != "" && !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
