// Package tui provides an interactive terminal user interface for diacritice.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/diacritice/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Restore performs diacritic restoration.
	Restore driving.RestoreService

	// ResultAction provides actions on restored text. Optional.
	ResultAction driving.ResultActionService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(restore driving.RestoreService, resultAction driving.ResultActionService) *Ports {
	return &Ports{
		Restore:      restore,
		ResultAction: resultAction,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Restore == nil {
		return ErrMissingRestoreService
	}
	return nil
}
