// Package ai provides factory functions for creating model service adapters.
package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/diacritice/internal/adapters/driven/model/huggingface"
	"github.com/custodia-labs/diacritice/internal/adapters/driven/model/ollama"
	"github.com/custodia-labs/diacritice/internal/adapters/driven/model/openai"
	"github.com/custodia-labs/diacritice/internal/core/domain"
	"github.com/custodia-labs/diacritice/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// CreateAndValidateModelService creates a model service and validates connectivity.
// Returns nil without error when no model is configured.
func CreateAndValidateModelService(
	settings *domain.ModelSettings,
	prompts driven.PromptStore,
) (driven.ModelService, error) {
	svc, err := CreateModelService(settings, prompts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w. Run 'diacritice settings set-model' to fix",
			domain.ErrModelUnavailable, err)
	}
	if svc == nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w). Run 'diacritice settings set-model' to fix",
			domain.ErrModelUnavailable, err)
	}

	return svc, nil
}

// ValidateModelConfig validates a model configuration by creating a service and pinging it.
// An unconfigured model has nothing to validate.
func ValidateModelConfig(settings *domain.ModelSettings) error {
	svc, err := CreateModelService(settings, nil)
	if err != nil {
		return err
	}
	if svc == nil {
		return nil
	}
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return svc.Ping(ctx)
}

// CreateModelService creates the model service for the configured provider.
// Returns nil if the model is not configured. Chat-style services load
// their system prompt from prompts when it is non-nil.
func CreateModelService(settings *domain.ModelSettings, prompts driven.PromptStore) (driven.ModelService, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	var (
		svc driven.ModelService
		err error
	)
	switch settings.Provider {
	case domain.ModelProviderHuggingFace:
		svc, err = createHuggingFace(settings)
	case domain.ModelProviderOpenAI:
		svc, err = createOpenAI(settings)
	case domain.ModelProviderOllama:
		svc = createOllama(settings)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedProvider, settings.Provider)
	}
	if err != nil {
		return nil, err
	}

	if aware, ok := svc.(driven.PromptStoreAware); ok && prompts != nil {
		aware.SetPromptStore(prompts)
	}
	return svc, nil
}

func timeout(settings *domain.ModelSettings) time.Duration {
	if settings.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(settings.TimeoutSeconds) * time.Second
}

// createHuggingFace creates a Hugging Face inference service.
func createHuggingFace(settings *domain.ModelSettings) (driven.ModelService, error) {
	svc, err := huggingface.NewModelService(huggingface.Config{
		APIKey:            settings.APIKey,
		BaseURL:           settings.BaseURL,
		Model:             settings.Model,
		Timeout:           timeout(settings),
		RequestsPerSecond: settings.RequestsPerSecond,
	})
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// createOpenAI creates an OpenAI chat completions service.
func createOpenAI(settings *domain.ModelSettings) (driven.ModelService, error) {
	svc, err := openai.NewModelService(openai.Config{
		APIKey:            settings.APIKey,
		BaseURL:           settings.BaseURL,
		Model:             settings.Model,
		Timeout:           timeout(settings),
		RequestsPerSecond: settings.RequestsPerSecond,
	})
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// createOllama creates an Ollama chat service.
func createOllama(settings *domain.ModelSettings) driven.ModelService {
	return ollama.NewModelService(ollama.Config{
		BaseURL:           settings.BaseURL,
		Model:             settings.Model,
		Timeout:           timeout(settings),
		RequestsPerSecond: settings.RequestsPerSecond,
	})
}
