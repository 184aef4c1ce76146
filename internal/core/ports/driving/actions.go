package driving

import (
	"context"

	"github.com/custodia-labs/diacritice/internal/core/domain"
)

// ResultActionService provides actions on restoration results for external actors.
// This is used by the TUI.
type ResultActionService interface {
	// CopyToClipboard copies the restored text to the system clipboard.
	CopyToClipboard(ctx context.Context, result *domain.EngineResult) error
}
