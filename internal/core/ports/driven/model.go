package driven

import (
	"context"

	"github.com/custodia-labs/diacritice/internal/core/domain"
)

// ModelService is an external text-in/text-out diacritic restoration model.
// This is an optional service - when nil, restoration degrades to the heuristic engine.
//
// Implementations may include:
//   - Hugging Face inference API (seq2seq restoration model)
//   - OpenAI-compatible chat completions
//   - Ollama (local models)
type ModelService interface {
	// Generate sends one chunk to the model.
	// It never returns a Go error: every outcome is a domain.Generation variant.
	Generate(ctx context.Context, input string) domain.Generation

	// ModelName returns the identifier of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// TextRestorer restores diacritics locally without failure modes.
type TextRestorer interface {
	// Restore returns text with diacritics restored where rules apply.
	Restore(text string) string
}
