package mcp

import (
	"context"

	"github.com/custodia-labs/diacritice/internal/core/domain"
)

// mockRestoreService is a mock implementation of driving.RestoreService.
type mockRestoreService struct {
	result   *domain.EngineResult
	err      error
	external bool
	model    string
}

func (m *mockRestoreService) Restore(_ context.Context, _ string) (*domain.EngineResult, error) {
	return m.result, m.err
}

func (m *mockRestoreService) ExternalEnabled() bool { return m.external }

func (m *mockRestoreService) ModelName() string { return m.model }

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error { return m.err }

func (m *mockSettingsService) SetModel(_ domain.ModelProvider, _, _ string) error { return m.err }

func (m *mockSettingsService) SetModelEnabled(_ bool) error { return m.err }

func (m *mockSettingsService) RestoreConfig() (domain.RestoreConfig, error) {
	return domain.DefaultRestoreConfig(), m.err
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}
