// Package rendercmd exposes document rendering and summary generation as
// go-command handlers.
package rendercmd

import (
	"github.com/goliatone/go-command/dispatcher"

	"github.com/goliatone/go-docx-markdown/internal/runtimeconfig"
	"github.com/goliatone/go-docx-markdown/pkg/interfaces"
)

// Register subscribes the render and summary handlers to the global
// dispatcher. The returned function removes both subscriptions.
func Register(cfg runtimeconfig.Config, provider interfaces.LoggerProvider) func() {
	renderSub := dispatcher.SubscribeCommand[RenderDocumentCommand](NewRenderDocumentHandler(cfg, provider))
	summarySub := dispatcher.SubscribeCommand[BuildSummaryCommand](NewBuildSummaryHandler(provider))
	return func() {
		renderSub.Unsubscribe()
		summarySub.Unsubscribe()
	}
}
