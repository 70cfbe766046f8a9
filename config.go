package docxmd

import "github.com/goliatone/go-docx-markdown/internal/runtimeconfig"

var (
	ErrRenderMaxDepthInvalid    = runtimeconfig.ErrRenderMaxDepthInvalid
	ErrMetadataLanguageUnknown  = runtimeconfig.ErrMetadataLanguageUnknown
	ErrMarkdownExtensionUnknown = runtimeconfig.ErrMarkdownExtensionUnknown
	ErrAssetBaseURLInvalid      = runtimeconfig.ErrAssetBaseURLInvalid
	ErrLoggingProviderUnknown   = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid      = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid     = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config               = runtimeconfig.Config
	RenderConfig         = runtimeconfig.RenderConfig
	MarkdownParserConfig = runtimeconfig.MarkdownParserConfig
	ExportConfig         = runtimeconfig.ExportConfig
	LoggingConfig        = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
