package driven

import "github.com/custodia-labs/diacritice/internal/core/domain"

// ModelConfigValidator validates external model configurations.
// Implementations verify that configurations are valid by testing connectivity
// to the underlying model service.
type ModelConfigValidator interface {
	// ValidateModel validates a model configuration by pinging the provider.
	// Returns nil if configuration is valid or not configured.
	ValidateModel(settings *domain.ModelSettings) error
}
