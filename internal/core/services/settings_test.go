package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/diacritice/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/diacritice/internal/core/domain"
)

func newTestSettingsService(env map[string]string) (*SettingsService, *memory.ConfigStore) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)
	service.SetEnvLookup(envMap(env))
	return service, store
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service, _ := newTestSettingsService(nil)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
	assert.False(t, settings.Model.IsConfigured())
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	service, store := newTestSettingsService(nil)
	_ = store.Set("model.provider", "openai")
	_ = store.Set("model.name", "gpt-4o")
	_ = store.Set("model.api_key", "sk-test")
	_ = store.Set("model.requests_per_second", 2.5)
	_ = store.Set("restore.max_chunk_size", 800)
	_ = store.Set("server.addr", ":9000")

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.ModelProviderOpenAI, settings.Model.Provider)
	assert.Equal(t, "gpt-4o", settings.Model.Model)
	assert.Equal(t, "sk-test", settings.Model.APIKey)
	assert.InDelta(t, 2.5, settings.Model.RequestsPerSecond, 1e-9)
	assert.Equal(t, 800, settings.Restore.MaxChunkSize)
	assert.Equal(t, domain.DefaultMaxInputLength, settings.Restore.MaxInputLength)
	assert.Equal(t, ":9000", settings.Server.Addr)
}

func TestSettingsService_Get_InvalidProviderReturnsDefault(t *testing.T) {
	service, store := newTestSettingsService(nil)
	_ = store.Set("model.provider", "invalid_provider")

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.ModelProviderHuggingFace, settings.Model.Provider)
}

func TestSettingsService_Get_EnvironmentOverrides(t *testing.T) {
	service, store := newTestSettingsService(map[string]string{
		EnvToken:   " hf_env ",
		EnvModel:   "someone/other-model",
		EnvBaseURL: "http://localhost:9999",
		EnvAddr:    "127.0.0.1:3000",
	})
	_ = store.Set("model.name", "stored/model")

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "hf_env", settings.Model.APIKey)
	assert.Equal(t, "someone/other-model", settings.Model.Model)
	assert.Equal(t, "http://localhost:9999", settings.Model.BaseURL)
	assert.Equal(t, "127.0.0.1:3000", settings.Server.Addr)
	assert.True(t, settings.Model.IsConfigured())
}

func TestSettingsService_Get_EmptyEnvironmentIgnored(t *testing.T) {
	service, _ := newTestSettingsService(map[string]string{
		EnvToken: "  ",
		EnvModel: "",
	})

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Empty(t, settings.Model.APIKey)
	assert.Equal(t, domain.DefaultModel, settings.Model.Model)
}

func TestSettingsService_Get_TokenOnlyAppliesToHuggingFace(t *testing.T) {
	service, _ := newTestSettingsService(map[string]string{
		EnvToken:    "hf_env",
		EnvProvider: "OLLAMA",
	})

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.ModelProviderOllama, settings.Model.Provider)
	assert.Empty(t, settings.Model.APIKey)
}

func TestSettingsService_Save(t *testing.T) {
	service, _ := newTestSettingsService(nil)

	settings := domain.DefaultAppSettings()
	settings.Model.Provider = domain.ModelProviderOpenAI
	settings.Model.Model = "gpt-4o-mini"
	settings.Model.APIKey = "sk-test"
	settings.Model.TimeoutSeconds = 30
	settings.Model.RequestsPerSecond = 1.5
	settings.Model.Enabled = true
	settings.Restore.MaxChunkSize = 500
	settings.Restore.MaxInputLength = 10000
	settings.Server.Addr = ":8181"

	require.NoError(t, service.Save(&settings))

	retrieved, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, *retrieved)
}

func TestSettingsService_Save_Nil(t *testing.T) {
	service, _ := newTestSettingsService(nil)
	assert.ErrorIs(t, service.Save(nil), domain.ErrInvalidConfig)
}

func TestSettingsService_SetModel(t *testing.T) {
	tests := []struct {
		name      string
		provider  domain.ModelProvider
		model     string
		apiKey    string
		wantModel string
		wantURL   string
	}{
		{"huggingface default model", domain.ModelProviderHuggingFace, "", "hf_x", domain.DefaultModel, ""},
		{"openai custom model", domain.ModelProviderOpenAI, "gpt-4o", "sk-x", "gpt-4o", ""},
		{"ollama without key", domain.ModelProviderOllama, "", "", "llama3.2", defaultOllamaURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestSettingsService(nil)

			require.NoError(t, service.SetModel(tt.provider, tt.model, tt.apiKey))

			settings, err := service.Get()
			require.NoError(t, err)
			assert.Equal(t, tt.provider, settings.Model.Provider)
			assert.Equal(t, tt.wantModel, settings.Model.Model)
			assert.Equal(t, tt.wantURL, settings.Model.BaseURL)
			assert.Equal(t, tt.apiKey, settings.Model.APIKey)
		})
	}
}

func TestSettingsService_SetModel_InvalidProvider(t *testing.T) {
	service, _ := newTestSettingsService(nil)

	err := service.SetModel("bogus", "", "key")

	assert.ErrorIs(t, err, domain.ErrUnsupportedProvider)
}

func TestSettingsService_SetModel_RequiresKey(t *testing.T) {
	service, _ := newTestSettingsService(nil)

	err := service.SetModel(domain.ModelProviderOpenAI, "", "")

	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestSettingsService_SetModel_EnvironmentTokenNotPersisted(t *testing.T) {
	service, store := newTestSettingsService(map[string]string{EnvToken: "hf_env"})

	require.NoError(t, service.SetModel(domain.ModelProviderHuggingFace, "", ""))

	assert.Empty(t, store.GetString("model.api_key"))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, "hf_env", settings.Model.APIKey)
}

func TestSettingsService_RestoreConfig(t *testing.T) {
	service, store := newTestSettingsService(map[string]string{EnvToken: "hf_env"})
	_ = store.Set("restore.max_chunk_size", 700)

	cfg, err := service.RestoreConfig()

	require.NoError(t, err)
	assert.Equal(t, domain.RestoreConfig{
		MaxChunkSize:  700,
		Model:         domain.DefaultModel,
		HasCredential: true,
	}, cfg)
}

func TestSettingsService_RestoreConfig_LocalProviderNeedsOptIn(t *testing.T) {
	service, store := newTestSettingsService(nil)

	require.NoError(t, service.SetModel(domain.ModelProviderOllama, "", ""))

	cfg, err := service.RestoreConfig()
	require.NoError(t, err)
	assert.False(t, cfg.HasCredential)

	require.NoError(t, service.SetModelEnabled(true))

	cfg, err = service.RestoreConfig()
	require.NoError(t, err)
	assert.True(t, cfg.HasCredential)
	assert.Equal(t, true, mustGet(t, store, "model.enabled"))

	require.NoError(t, service.SetModelEnabled(false))

	cfg, err = service.RestoreConfig()
	require.NoError(t, err)
	assert.False(t, cfg.HasCredential)
}

func TestSettingsService_Get_EnabledIgnoresNonBool(t *testing.T) {
	service, store := newTestSettingsService(nil)
	_ = store.Set("model.provider", "ollama")
	_ = store.Set("model.enabled", "yes")

	settings, err := service.Get()

	require.NoError(t, err)
	assert.False(t, settings.Model.Enabled)
	assert.False(t, settings.Model.IsConfigured())
}

func mustGet(t *testing.T, store *memory.ConfigStore, key string) any {
	t.Helper()
	val, ok := store.Get(key)
	require.True(t, ok, key)
	return val
}

func TestSettingsService_RestoreConfig_NoCredential(t *testing.T) {
	service, _ := newTestSettingsService(nil)

	cfg, err := service.RestoreConfig()

	require.NoError(t, err)
	assert.False(t, cfg.HasCredential)
}

func TestSettingsService_RestoreConfig_NegativeChunkSize(t *testing.T) {
	service, store := newTestSettingsService(nil)
	_ = store.Set("restore.max_chunk_size", -5)

	_, err := service.RestoreConfig()

	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestSettingsService_Validate(t *testing.T) {
	t.Run("unconfigured skips validator", func(t *testing.T) {
		validator := &mockValidator{err: errors.New("unreachable")}
		service := NewSettingsService(memory.NewConfigStore(), validator)
		service.SetEnvLookup(nil)

		assert.NoError(t, service.Validate())
		assert.Nil(t, validator.called)
	})

	t.Run("configured pings provider", func(t *testing.T) {
		validator := &mockValidator{err: errors.New("unreachable")}
		service := NewSettingsService(memory.NewConfigStore(), validator)
		service.SetEnvLookup(envMap(map[string]string{EnvToken: "hf_env"}))

		err := service.Validate()

		assert.EqualError(t, err, "unreachable")
		require.NotNil(t, validator.called)
		assert.Equal(t, "hf_env", validator.called.APIKey)
	})

	t.Run("negative chunk size", func(t *testing.T) {
		store := memory.NewConfigStore()
		_ = store.Set("restore.max_chunk_size", -1)
		service := NewSettingsService(store, nil)
		service.SetEnvLookup(nil)

		assert.ErrorIs(t, service.Validate(), domain.ErrInvalidConfig)
	})
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service, _ := newTestSettingsService(nil)
	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}
