package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/custodia-labs/diacritice/internal/core/domain"
	"github.com/custodia-labs/diacritice/internal/core/ports/driven"
	"github.com/custodia-labs/diacritice/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyModelProvider     = "model.provider"
	keyModelName         = "model.name"
	keyModelBaseURL      = "model.base_url"
	keyModelAPIKey       = "model.api_key"
	keyModelTimeout      = "model.timeout_seconds"
	keyModelRPS          = "model.requests_per_second"
	keyModelEnabled      = "model.enabled"
	keyRestoreChunkSize  = "restore.max_chunk_size"
	keyRestoreInputLimit = "restore.max_input_length"
	keyServerAddr        = "server.addr"
)

// Environment overrides. They take precedence over the config file and
// are never written back to it.
//
//nolint:gosec // G101: These are variable names, not actual credentials.
const (
	EnvToken    = "HF_TOKEN"
	EnvModel    = "HF_MODEL"
	EnvProvider = "DIACRITICE_PROVIDER"
	EnvBaseURL  = "DIACRITICE_BASE_URL"
	EnvAddr     = "DIACRITICE_ADDR"
)

const defaultOllamaURL = "http://localhost:11434"

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	validator   driven.ModelConfigValidator
	lookupEnv   func(string) (string, bool)
}

// NewSettingsService creates a new settings service.
// The validator is optional (can be nil).
func NewSettingsService(configStore driven.ConfigStore, validator driven.ModelConfigValidator) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		validator:   validator,
		lookupEnv:   os.LookupEnv,
	}
}

// SetEnvLookup replaces the environment lookup. Useful for testing.
func (s *SettingsService) SetEnvLookup(fn func(string) (string, bool)) {
	if fn == nil {
		fn = func(string) (string, bool) { return "", false }
	}
	s.lookupEnv = fn
}

// Get retrieves current application settings with environment overrides applied.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	settings := s.stored()
	s.applyEnv(settings)
	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: nil settings", domain.ErrInvalidConfig)
	}

	// Save model settings
	if err := s.configStore.Set(keyModelProvider, settings.Model.Provider.String()); err != nil {
		return fmt.Errorf("save model provider: %w", err)
	}
	if err := s.configStore.Set(keyModelName, settings.Model.Model); err != nil {
		return fmt.Errorf("save model name: %w", err)
	}
	if err := s.configStore.Set(keyModelBaseURL, settings.Model.BaseURL); err != nil {
		return fmt.Errorf("save model base_url: %w", err)
	}
	if settings.Model.APIKey != "" {
		if err := s.configStore.Set(keyModelAPIKey, settings.Model.APIKey); err != nil {
			return fmt.Errorf("save model api_key: %w", err)
		}
	}
	if err := s.configStore.Set(keyModelTimeout, settings.Model.TimeoutSeconds); err != nil {
		return fmt.Errorf("save model timeout: %w", err)
	}
	if err := s.configStore.Set(keyModelRPS, settings.Model.RequestsPerSecond); err != nil {
		return fmt.Errorf("save model rate: %w", err)
	}
	if err := s.configStore.Set(keyModelEnabled, settings.Model.Enabled); err != nil {
		return fmt.Errorf("save model enabled: %w", err)
	}

	// Save restore limits
	if err := s.configStore.Set(keyRestoreChunkSize, settings.Restore.MaxChunkSize); err != nil {
		return fmt.Errorf("save max chunk size: %w", err)
	}
	if err := s.configStore.Set(keyRestoreInputLimit, settings.Restore.MaxInputLength); err != nil {
		return fmt.Errorf("save max input length: %w", err)
	}

	// Save server settings
	if err := s.configStore.Set(keyServerAddr, settings.Server.Addr); err != nil {
		return fmt.Errorf("save server addr: %w", err)
	}

	return nil
}

// SetModel configures the external model provider.
func (s *SettingsService) SetModel(provider domain.ModelProvider, model, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedProvider, provider)
	}

	settings := s.stored()

	// Validate API key if required. HF_TOKEN in the environment counts.
	if provider.RequiresAPIKey() && apiKey == "" && settings.Model.APIKey == "" && !s.envTokenFor(provider) {
		return fmt.Errorf("%w: API key required for %s", domain.ErrInvalidConfig, provider)
	}

	settings.Model.Provider = provider

	// Set model - use provided or default
	if model != "" {
		settings.Model.Model = model
	} else if defaultModel, ok := domain.DefaultModels()[provider]; ok {
		settings.Model.Model = defaultModel
	}

	// Set base URL based on provider type
	if provider.IsLocal() {
		if settings.Model.BaseURL == "" {
			settings.Model.BaseURL = defaultOllamaURL
		}
	} else {
		settings.Model.BaseURL = ""
	}

	if apiKey != "" {
		settings.Model.APIKey = apiKey
	}

	return s.Save(settings)
}

// SetModelEnabled opts a local provider in or out. Hosted providers are
// enabled by their credential and ignore the setting.
func (s *SettingsService) SetModelEnabled(enabled bool) error {
	if err := s.configStore.Set(keyModelEnabled, enabled); err != nil {
		return fmt.Errorf("save model enabled: %w", err)
	}
	return nil
}

// RestoreConfig resolves the explicit configuration for the next restoration.
func (s *SettingsService) RestoreConfig() (domain.RestoreConfig, error) {
	settings, err := s.Get()
	if err != nil {
		return domain.RestoreConfig{}, err
	}
	cfg := settings.RestoreConfig()
	if _, err := cfg.EffectiveChunkSize(); err != nil {
		return domain.RestoreConfig{}, err
	}
	return cfg, nil
}

// Validate checks the model configuration by pinging the provider.
// Settings without a credential are valid: they select the heuristic engine.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	if settings.Restore.MaxChunkSize < 0 {
		return fmt.Errorf("%w: max chunk size %d", domain.ErrInvalidConfig, settings.Restore.MaxChunkSize)
	}
	if s.validator == nil || !settings.Model.IsConfigured() {
		return nil
	}
	return s.validator.ValidateModel(&settings.Model)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// stored reads settings from the config store only.
func (s *SettingsService) stored() *domain.AppSettings {
	defaults := domain.DefaultAppSettings()

	return &domain.AppSettings{
		Model: domain.ModelSettings{
			Provider:          s.getProvider(keyModelProvider, defaults.Model.Provider),
			Model:             s.getString(keyModelName, defaults.Model.Model),
			BaseURL:           s.configStore.GetString(keyModelBaseURL), // Empty selects the provider default
			APIKey:            s.configStore.GetString(keyModelAPIKey),
			TimeoutSeconds:    s.getInt(keyModelTimeout, defaults.Model.TimeoutSeconds),
			RequestsPerSecond: s.configStore.GetFloat(keyModelRPS),
			Enabled:           s.getBool(keyModelEnabled),
		},
		Restore: domain.RestoreSettings{
			MaxChunkSize:   s.getInt(keyRestoreChunkSize, defaults.Restore.MaxChunkSize),
			MaxInputLength: s.getInt(keyRestoreInputLimit, defaults.Restore.MaxInputLength),
		},
		Server: domain.ServerSettings{
			Addr: s.getString(keyServerAddr, defaults.Server.Addr),
		},
	}
}

func (s *SettingsService) applyEnv(settings *domain.AppSettings) {
	if v, ok := s.env(EnvProvider); ok {
		if p := domain.ModelProvider(strings.ToLower(v)); p.IsValid() {
			settings.Model.Provider = p
		}
	}
	if v, ok := s.env(EnvModel); ok {
		settings.Model.Model = v
	}
	if v, ok := s.env(EnvBaseURL); ok {
		settings.Model.BaseURL = v
	}
	if v, ok := s.env(EnvToken); ok && settings.Model.Provider == domain.ModelProviderHuggingFace {
		settings.Model.APIKey = v
	}
	if v, ok := s.env(EnvAddr); ok {
		settings.Server.Addr = v
	}
}

func (s *SettingsService) envTokenFor(provider domain.ModelProvider) bool {
	if provider != domain.ModelProviderHuggingFace {
		return false
	}
	_, ok := s.env(EnvToken)
	return ok
}

// env returns a non-empty, trimmed environment value.
func (s *SettingsService) env(key string) (string, bool) {
	v, ok := s.lookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string) bool {
	val, ok := s.configStore.Get(key)
	if !ok {
		return false
	}
	b, _ := val.(bool)
	return b
}

func (s *SettingsService) getProvider(key string, defaultVal domain.ModelProvider) domain.ModelProvider {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	provider := domain.ModelProvider(val)
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}
