package logging

import (
	"strings"

	"github.com/goliatone/go-docx-markdown/pkg/interfaces"
)

// WithFields pins fields onto logger for the rest of a document or command.
// String values are trimmed and blank or nil values are skipped, so an
// unknown render id or output path never shows up as an empty field.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil {
		return logger
	}
	fieldsLogger, ok := logger.(interfaces.FieldsLogger)
	if !ok {
		return logger
	}

	kept := make(map[string]any, len(fields))
	for key, value := range fields {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			kept[key] = v
		default:
			kept[key] = value
		}
	}
	if len(kept) == 0 {
		return logger
	}
	return fieldsLogger.WithFields(kept)
}
