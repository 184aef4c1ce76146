// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/diacritice/internal/core/domain"
)

// RestoreCompleted carries a restoration result back to the model.
type RestoreCompleted struct {
	Result *domain.EngineResult
	Err    error
}

// Copied signals that a clipboard copy finished.
type Copied struct {
	Err error
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewEditor is the input and output editor.
	ViewEditor ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewEditor:
		return "editor"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
