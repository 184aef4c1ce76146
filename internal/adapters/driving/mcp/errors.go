// Package mcp provides an MCP (Model Context Protocol) server adapter for diacritice.
// It lets AI assistants restore Romanian diacritics through a tool call.
package mcp

import "errors"

// ErrMissingRestoreService is returned when the restore service is not provided.
var ErrMissingRestoreService = errors.New("mcp: restore service is required")
