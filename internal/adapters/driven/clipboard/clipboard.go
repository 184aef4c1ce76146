// Package clipboard provides the system clipboard adapter.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"

	"github.com/custodia-labs/diacritice/internal/core/ports/driven"
)

// Ensure System implements the interface.
var _ driven.Clipboard = (*System)(nil)

// ErrUnsupported is returned when the platform has no clipboard utility.
var ErrUnsupported = errors.New("no clipboard utility found (install xclip, xsel or wl-clipboard)")

// System writes to the operating system clipboard.
type System struct{}

// New creates a system clipboard adapter.
func New() *System {
	return &System{}
}

// WriteAll replaces the clipboard content with text.
func (c *System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}
