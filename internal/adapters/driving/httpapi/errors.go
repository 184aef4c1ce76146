// Package httpapi provides the HTTP adapter for diacritic restoration.
// It serves the JSON endpoint used by the web editor and existing clients.
package httpapi

import "errors"

// ErrMissingRestoreService is returned when the restore service is not provided.
var ErrMissingRestoreService = errors.New("httpapi: restore service is required")

// Response messages.
const (
	msgProvideText      = "Provide 'text' string"
	msgServerError      = "Server error"
	msgMethodNotAllowed = "Method Not Allowed"
)
