package tui

import "errors"

// ErrMissingRestoreService is returned when the restore service is not provided.
var ErrMissingRestoreService = errors.New("tui: restore service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
