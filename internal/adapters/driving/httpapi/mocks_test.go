package httpapi

import (
	"context"

	"github.com/custodia-labs/diacritice/internal/core/domain"
	"github.com/custodia-labs/diacritice/internal/core/ports/driving"
)

// mockRestoreService is a mock implementation of RestoreService for testing.
type mockRestoreService struct {
	result   *domain.EngineResult
	err      error
	external bool
	model    string
	got      string
}

var _ driving.RestoreService = (*mockRestoreService)(nil)

func (m *mockRestoreService) Restore(_ context.Context, text string) (*domain.EngineResult, error) {
	m.got = text
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockRestoreService) ExternalEnabled() bool { return m.external }

func (m *mockRestoreService) ModelName() string { return m.model }
