package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	rendercmd "github.com/goliatone/go-docx-markdown/internal/commands/render"
	"github.com/goliatone/go-docx-markdown/internal/logging/providers"
	"github.com/goliatone/go-docx-markdown/internal/runtimeconfig"
)

// app carries the configuration shared by every subcommand. Flags write into
// cfg directly.
type app struct {
	cfg runtimeconfig.Config
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: runtimeconfig.DefaultConfig()}

	root := &cobra.Command{
		Use:           "docxmd",
		Short:         "Render docx block trees as GitHub-Flavored Markdown",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	bindLoggingFlags(root.PersistentFlags(), &a.cfg.Logging)

	root.AddCommand(newRenderCmd(a), newSummaryCmd(a))
	return root
}

func bindLoggingFlags(fs *pflag.FlagSet, cfg *runtimeconfig.LoggingConfig) {
	fs.StringVar(&cfg.Provider, "log-provider", cfg.Provider, "logging provider: console or gologger")
	fs.StringVar(&cfg.Level, "log-level", cfg.Level, "minimum log level")
	fs.StringVar(&cfg.Format, "log-format", cfg.Format, "gologger output format: json, console or pretty")
	fs.BoolVar(&cfg.AddSource, "log-add-source", cfg.AddSource, "include source locations (gologger)")
	fs.StringSliceVar(&cfg.Focus, "log-focus", cfg.Focus, "only log these logger names (gologger)")
}

// setup validates the configuration and subscribes the command handlers. The
// returned function must be called once the command finishes.
func (a *app) setup(cmd *cobra.Command) (func(), error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}
	provider, err := providers.New(a.cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return rendercmd.Register(a.cfg, provider), nil
}
