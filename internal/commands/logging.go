package commands

import (
	"strings"

	"github.com/goliatone/go-docx-markdown/internal/logging"
	"github.com/goliatone/go-docx-markdown/pkg/interfaces"
)

// CommandLogger returns the commands logger tagged with the command module
// name, "core" when blank.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	return logging.WithFields(logging.CommandsLogger(provider), map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
