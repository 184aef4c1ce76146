package mcp

import (
	"github.com/custodia-labs/diacritice/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Restore restores diacritics.
	Restore driving.RestoreService

	// Settings exposes the effective restoration limits (optional).
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Restore == nil {
		return ErrMissingRestoreService
	}
	return nil
}
