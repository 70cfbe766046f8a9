package commands

import (
	"context"
	"time"

	"github.com/goliatone/go-docx-markdown/internal/logging"
	"github.com/goliatone/go-docx-markdown/pkg/interfaces"
)

// DefaultCommandTimeout bounds one render or summary command, including the
// output write.
const DefaultCommandTimeout = 30 * time.Second

// commandScope derives the context a command function runs under. A nil ctx
// is treated as Background and a positive timeout is applied. fields are
// stored on the context so console entries written with it, including the
// renderer's block warnings, carry the command name.
func commandScope(ctx context.Context, timeout time.Duration, fields map[string]any) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.ContextWithFields(ctx, fields)
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func loggerOrNoop(logger interfaces.Logger) interfaces.Logger {
	if logger == nil {
		return logging.NoOp()
	}
	return logger
}
