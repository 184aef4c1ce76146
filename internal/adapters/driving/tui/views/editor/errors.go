package editor

import "errors"

// Error definitions for the editor view.
var (
	// ErrNoRestoreService indicates that no restore service was provided.
	ErrNoRestoreService = errors.New("restore service is required")

	// ErrNothingToCopy indicates that no restoration has completed yet.
	ErrNothingToCopy = errors.New("nothing to copy")

	// ErrCopyUnavailable indicates that no clipboard action was wired.
	ErrCopyUnavailable = errors.New("copy not available")
)
