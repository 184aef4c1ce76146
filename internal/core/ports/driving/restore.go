package driving

import (
	"context"

	"github.com/custodia-labs/diacritice/internal/core/domain"
)

// RestoreService restores diacritics for external actors.
type RestoreService interface {
	// Restore validates text and returns the restored text with its engine.
	// Only input errors (domain.ErrInvalidInput) and internal faults are returned;
	// external model failures are absorbed by the heuristic fallback.
	Restore(ctx context.Context, text string) (*domain.EngineResult, error)

	// ExternalEnabled reports whether requests will try the external model first.
	ExternalEnabled() bool

	// ModelName returns the configured external model identifier.
	ModelName() string
}
