package interfaces

import "context"

// Logger receives renderer and command diagnostics. Entries are event names
// such as "render.block.unsupported" or "command.execute.failed" followed by
// key/value pairs. There is no Fatal level: a conversion failure is returned
// to the caller and never ends the host process.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out loggers by module name ("render", "export",
// "commands").
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is implemented by loggers that can pin fields such as
// document_id or block_id onto every later entry.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
