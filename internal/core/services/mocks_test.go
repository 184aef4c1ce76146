package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/diacritice/internal/core/domain"
	"github.com/custodia-labs/diacritice/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockModelService implements driven.ModelService for testing.
// Each Generate call consumes the next scripted result; once the script is
// exhausted, the input is echoed back in upper case.
type mockModelService struct {
	mu       sync.Mutex
	script   []domain.Generation
	inputs   []string
	panicOn  int // 1-based call number that panics; 0 disables
	closed   int
	name     string
	pingErr  error
	onCancel func()
}

var _ driven.ModelService = (*mockModelService)(nil)

func newMockModel(script ...domain.Generation) *mockModelService {
	return &mockModelService{script: script, name: "mock-model"}
}

func (m *mockModelService) Generate(_ context.Context, input string) domain.Generation {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.inputs = append(m.inputs, input)
	if m.panicOn == len(m.inputs) {
		panic("model exploded")
	}
	if m.onCancel != nil {
		m.onCancel()
	}
	if len(m.script) == 0 {
		return domain.WellFormed(input)
	}
	gen := m.script[0]
	m.script = m.script[1:]
	return gen
}

func (m *mockModelService) ModelName() string {
	return m.name
}

func (m *mockModelService) Ping(_ context.Context) error {
	return m.pingErr
}

func (m *mockModelService) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed++
	return nil
}

func (m *mockModelService) calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.inputs))
	copy(out, m.inputs)
	return out
}

// mockValidator implements driven.ModelConfigValidator for testing.
type mockValidator struct {
	err    error
	called *domain.ModelSettings
}

func (v *mockValidator) ValidateModel(settings *domain.ModelSettings) error {
	v.called = settings
	return v.err
}

// envMap returns an environment lookup backed by a map.
func envMap(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}
