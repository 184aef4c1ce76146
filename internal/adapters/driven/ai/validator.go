package ai

import (
	"github.com/custodia-labs/diacritice/internal/core/domain"
	"github.com/custodia-labs/diacritice/internal/core/ports/driven"
)

// Ensure ConfigValidator implements the interface.
var _ driven.ModelConfigValidator = (*ConfigValidator)(nil)

// ConfigValidator validates model provider configurations.
type ConfigValidator struct{}

// NewConfigValidator creates a new model config validator.
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{}
}

// ValidateModel validates a model configuration by pinging the provider.
func (v *ConfigValidator) ValidateModel(settings *domain.ModelSettings) error {
	return ValidateModelConfig(settings)
}
