package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/diacritice/internal/core/domain"
	"github.com/custodia-labs/diacritice/internal/core/ports/driven"
	"github.com/custodia-labs/diacritice/internal/core/ports/driving"
)

// Ensure ResultActionService implements the interface.
var _ driving.ResultActionService = (*ResultActionService)(nil)

// ErrClipboardUnavailable is returned when no clipboard is wired.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// ResultActionService provides actions on restoration results.
type ResultActionService struct {
	clipboard driven.Clipboard
}

// NewResultActionService creates a new result action service.
// clipboard may be nil, in which case copying fails with ErrClipboardUnavailable.
func NewResultActionService(clipboard driven.Clipboard) *ResultActionService {
	return &ResultActionService{clipboard: clipboard}
}

// CopyToClipboard copies the restored text to the system clipboard.
func (s *ResultActionService) CopyToClipboard(_ context.Context, result *domain.EngineResult) error {
	if result == nil {
		return fmt.Errorf("%w: result is nil", domain.ErrInvalidInput)
	}
	if s.clipboard == nil {
		return ErrClipboardUnavailable
	}
	if err := s.clipboard.WriteAll(result.Text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
