package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	// Input errors are reported to the caller and never retried.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInputTooLong indicates the input exceeds the accepted length.
	// It always wraps ErrInvalidInput.
	ErrInputTooLong = fmt.Errorf("%w: text too long", ErrInvalidInput)

	// ErrInvalidConfig indicates the restoration configuration is unusable.
	// This is a logic fault and is surfaced to the caller.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrExternalService indicates the external model failed for at least one chunk.
	// It is absorbed by the fallback path and never reaches the caller.
	ErrExternalService = errors.New("external service error")

	// ErrModelUnavailable indicates the external model is not configured.
	// Restoration degrades to the heuristic engine.
	ErrModelUnavailable = errors.New("model service unavailable")

	// ErrUnsupportedProvider indicates an unknown model provider.
	ErrUnsupportedProvider = errors.New("unsupported provider")
)

// HTTPStatusError reports a non-success status returned by a remote model.
type HTTPStatusError struct {
	// StatusCode is the HTTP status returned by the service.
	StatusCode int

	// Body is the (possibly truncated) response body.
	Body string
}

// MaxStatusBody bounds the response body kept in an HTTPStatusError.
const MaxStatusBody = 512

// NewHTTPStatusError builds a status error with a trimmed, truncated body.
// The body is cut on a rune boundary, and a partial rune left by a bounded
// read is dropped.
func NewHTTPStatusError(code int, body []byte) *HTTPStatusError {
	text := strings.TrimSpace(string(body))
	if len(text) > MaxStatusBody {
		cut := MaxStatusBody
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	return &HTTPStatusError{StatusCode: code, Body: strings.ToValidUTF8(text, "")}
}

// Error implements the error interface.
func (e *HTTPStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Body)
}

// IsInputError reports whether err should be shown to the caller as bad input.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
