package logging

import (
	"context"

	"github.com/goliatone/go-docx-markdown/pkg/interfaces"
)

const (
	rootModule     = "docxmd"
	renderModule   = "docxmd.render"
	exportModule   = "docxmd.export"
	commandsModule = "docxmd.commands"
)

const (
	fieldDocumentID = "document_id"
	fieldRenderID   = "render_id"
	fieldOutputPath = "output_path"
)

// ModuleLogger returns a logger scoped to module, annotated with a module
// field. Without a provider, or when the provider returns nil, entries are
// dropped.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}
	return WithFields(logger, map[string]any{"module": module})
}

// RenderLogger returns the logger used by the block tree renderer.
func RenderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, renderModule)
}

// ExportLogger returns the logger used when writing pages and summaries.
func ExportLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, exportModule)
}

// CommandsLogger returns the logger used by command handlers.
func CommandsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commandsModule)
}

// WithDocumentContext adds the document id, render id and output path to the
// logger. Blank values are skipped.
func WithDocumentContext(logger interfaces.Logger, documentID, renderID, outputPath string) interfaces.Logger {
	return WithFields(logger, map[string]any{
		fieldDocumentID: documentID,
		fieldRenderID:   renderID,
		fieldOutputPath: outputPath,
	})
}

// NoOp returns a logger that discards every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.FieldsLogger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
