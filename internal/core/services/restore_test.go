package services

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/diacritice/internal/core/domain"
	"github.com/custodia-labs/diacritice/internal/heuristic"
	"github.com/custodia-labs/diacritice/internal/normalisers/romanian"
)

func configuredSettings() domain.AppSettings {
	settings := domain.DefaultAppSettings()
	settings.Model.APIKey = "hf_test"
	return settings
}

func newTestRestoreService(model *mockModelService, settings domain.AppSettings) *RestoreService {
	if model == nil {
		return NewRestoreService(nil, heuristic.New(), romanian.New(), settings)
	}
	return NewRestoreService(model, heuristic.New(), romanian.New(), settings)
}

func TestRestoreService_RejectsEmptyInput(t *testing.T) {
	model := newMockModel()
	s := newTestRestoreService(model, configuredSettings())

	result, err := s.Restore(context.Background(), "")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, domain.IsInputError(err))
	assert.Empty(t, model.calls())
}

func TestRestoreService_RejectsTooLongInput(t *testing.T) {
	model := newMockModel()
	s := newTestRestoreService(model, configuredSettings())

	result, err := s.Restore(context.Background(), strings.Repeat("a", domain.DefaultMaxInputLength+1))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInputTooLong)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, model.calls())
}

func TestRestoreService_AcceptsInputAtLimit(t *testing.T) {
	s := newTestRestoreService(nil, domain.DefaultAppSettings())

	// Multi-byte letters count once each.
	text := strings.Repeat("ă", domain.DefaultMaxInputLength)
	result, err := s.Restore(context.Background(), text)

	require.NoError(t, err)
	assert.Equal(t, text, result.Text)
}

func TestRestoreService_CustomInputLimit(t *testing.T) {
	settings := domain.DefaultAppSettings()
	settings.Restore.MaxInputLength = 5
	s := newTestRestoreService(nil, settings)

	_, err := s.Restore(context.Background(), "abcdef")
	assert.ErrorIs(t, err, domain.ErrInputTooLong)
}

func TestRestoreService_HeuristicWithoutCredential(t *testing.T) {
	model := newMockModel()
	s := newTestRestoreService(model, domain.DefaultAppSettings())

	result, err := s.Restore(context.Background(), "Si ai vazut ca intre timp a plecat?")

	require.NoError(t, err)
	assert.Equal(t, domain.EngineHeuristic, result.Engine)
	assert.Equal(t, "Și ai vazut ca între timp a plecat?", result.Text)
	assert.False(t, s.ExternalEnabled())
	assert.Empty(t, model.calls())
}

func TestRestoreService_ExternalWithCredential(t *testing.T) {
	model := newMockModel(domain.WellFormed("Șapte zile"))
	s := newTestRestoreService(model, configuredSettings())

	result, err := s.Restore(context.Background(), "Sapte zile")

	require.NoError(t, err)
	assert.Equal(t, domain.EngineExternal, result.Engine)
	assert.Equal(t, "huggingface", result.Engine.WireName())
	assert.Equal(t, "Șapte zile", result.Text)
	assert.True(t, s.ExternalEnabled())
	assert.Equal(t, "mock-model", s.ModelName())
}

func TestRestoreService_RestoreWithConfigOverridesCredential(t *testing.T) {
	model := newMockModel()
	s := newTestRestoreService(model, configuredSettings())

	cfg := s.Config()
	cfg.HasCredential = false
	result, err := s.RestoreWithConfig(context.Background(), "fara", cfg)

	require.NoError(t, err)
	assert.Equal(t, domain.EngineHeuristic, result.Engine)
	assert.Equal(t, "fără", result.Text)
	assert.Empty(t, model.calls())
}

func TestRestoreService_InvalidConfigIsNotInputError(t *testing.T) {
	settings := configuredSettings()
	settings.Restore.MaxChunkSize = -10
	s := newTestRestoreService(newMockModel(), settings)

	_, err := s.Restore(context.Background(), "si")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.False(t, domain.IsInputError(err))
}

func TestRestoreService_ModelNameWithoutModel(t *testing.T) {
	s := newTestRestoreService(nil, domain.DefaultAppSettings())
	assert.Equal(t, domain.DefaultModel, s.ModelName())
	assert.NoError(t, s.Close())
}

func TestRestoreService_Reload(t *testing.T) {
	first := newMockModel()
	s := newTestRestoreService(first, domain.DefaultAppSettings())
	assert.False(t, s.ExternalEnabled())

	second := newMockModel(domain.WellFormed("încă"))
	second.name = "second-model"
	s.Reload(second, configuredSettings())

	assert.Equal(t, 1, first.closed)
	assert.True(t, s.ExternalEnabled())
	assert.Equal(t, "second-model", s.ModelName())

	result, err := s.Restore(context.Background(), "inca")
	require.NoError(t, err)
	assert.Equal(t, domain.EngineExternal, result.Engine)
	assert.Equal(t, "încă", result.Text)

	require.NoError(t, s.Close())
	assert.Equal(t, 1, second.closed)
}

func TestRestoreService_ReloadSameModelDoesNotClose(t *testing.T) {
	model := newMockModel()
	s := newTestRestoreService(model, configuredSettings())

	s.Reload(model, configuredSettings())

	assert.Equal(t, 0, model.closed)
}

func TestRestoreService_ConcurrentRestoreAndReload(t *testing.T) {
	s := newTestRestoreService(newMockModel(), configuredSettings())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			result, err := s.Restore(context.Background(), "si")
			assert.NoError(t, err)
			assert.NotEmpty(t, result.Text)
		}()
		go func() {
			defer wg.Done()
			s.Reload(newMockModel(), configuredSettings())
		}()
	}
	wg.Wait()
}
