package driving

import "github.com/custodia-labs/diacritice/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, including environment overrides.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetModel configures the external model provider.
	SetModel(provider domain.ModelProvider, model, apiKey string) error

	// SetModelEnabled opts a local provider in or out.
	SetModelEnabled(enabled bool) error

	// RestoreConfig resolves the explicit configuration for the next restoration.
	RestoreConfig() (domain.RestoreConfig, error)

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
