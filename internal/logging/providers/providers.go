// Package providers builds the logger provider selected by LoggingConfig.
package providers

import (
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-docx-markdown/internal/logging/console"
	"github.com/goliatone/go-docx-markdown/internal/logging/gologger"
	"github.com/goliatone/go-docx-markdown/internal/runtimeconfig"
	"github.com/goliatone/go-docx-markdown/pkg/interfaces"
)

// New returns a console provider writing to w, or a go-logger provider when
// cfg.Provider is "gologger". An empty provider selects console.
func New(cfg runtimeconfig.LoggingConfig, w io.Writer) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "console":
		opts := console.Options{Writer: w}
		if level, ok := console.ParseLevel(cfg.Level); ok {
			opts.MinLevel = &level
		}
		return console.NewProvider(opts), nil
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("%w: %s", runtimeconfig.ErrLoggingProviderUnknown, cfg.Provider)
	}
}
