package domain

import (
	"fmt"
	"unicode/utf8"
)

// Boundary limits for a single restoration request.
const (
	// DefaultMaxChunkSize is the default chunk size in characters.
	DefaultMaxChunkSize = 1500

	// DefaultMaxInputLength is the largest accepted input in characters.
	DefaultMaxInputLength = 30000

	// DefaultModel is the published diacritic restoration model.
	DefaultModel = "iliemihai/mt5-base-romanian-diacritics"
)

// Engine identifies the restoration strategy that produced a result.
type Engine string

// Available engines.
const (
	// EngineExternal is the external generative model.
	EngineExternal Engine = "external"

	// EngineHeuristic is the local rule-based restorer.
	EngineHeuristic Engine = "heuristic"
)

// String returns the string representation.
func (e Engine) String() string {
	return string(e)
}

// WireName returns the name reported to clients.
// The external engine keeps the "huggingface" name existing clients expect.
func (e Engine) WireName() string {
	if e == EngineExternal {
		return "huggingface"
	}
	return string(e)
}

// Chunk is a contiguous, non-empty slice of the original text.
// Chunks concatenate in Index order to exactly the original text.
type Chunk struct {
	// Index is the ordinal position of the chunk.
	Index int

	// Text is the chunk content.
	Text string
}

// Len returns the chunk length in characters.
func (c Chunk) Len() int {
	return utf8.RuneCountInString(c.Text)
}

// JoinChunks concatenates chunk texts in order.
func JoinChunks(chunks []Chunk) string {
	n := 0
	for _, c := range chunks {
		n += len(c.Text)
	}
	buf := make([]byte, 0, n)
	for _, c := range chunks {
		buf = append(buf, c.Text...)
	}
	return string(buf)
}

// EngineResult is the final output of a restoration plus its provenance.
type EngineResult struct {
	// Text is the restored text.
	Text string

	// Engine is the engine that produced Text.
	Engine Engine
}

// RestoreConfig is the explicit configuration of one restoration call.
type RestoreConfig struct {
	// MaxChunkSize is the soft upper bound of a chunk in characters.
	// Zero selects DefaultMaxChunkSize.
	MaxChunkSize int

	// Model is the external model identifier.
	Model string

	// HasCredential reports whether the external model may be used.
	HasCredential bool
}

// DefaultRestoreConfig returns a configuration without credential.
func DefaultRestoreConfig() RestoreConfig {
	return RestoreConfig{
		MaxChunkSize: DefaultMaxChunkSize,
		Model:        DefaultModel,
	}
}

// EffectiveChunkSize resolves the chunk size, applying the default for zero.
func (c RestoreConfig) EffectiveChunkSize() (int, error) {
	switch {
	case c.MaxChunkSize == 0:
		return DefaultMaxChunkSize, nil
	case c.MaxChunkSize < 0:
		return 0, fmt.Errorf("%w: max chunk size %d", ErrInvalidConfig, c.MaxChunkSize)
	default:
		return c.MaxChunkSize, nil
	}
}

// ValidateText checks the boundary preconditions on restoration input.
// maxLen <= 0 selects DefaultMaxInputLength.
func ValidateText(text string, maxLen int) error {
	if maxLen <= 0 {
		maxLen = DefaultMaxInputLength
	}
	if text == "" {
		return fmt.Errorf("%w: text is empty", ErrInvalidInput)
	}
	if !utf8.ValidString(text) {
		return fmt.Errorf("%w: text is not valid UTF-8", ErrInvalidInput)
	}
	if n := utf8.RuneCountInString(text); n > maxLen {
		return fmt.Errorf("%w: %d characters, limit is %d", ErrInputTooLong, n, maxLen)
	}
	return nil
}
