package services

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/custodia-labs/diacritice/internal/core/domain"
	"github.com/custodia-labs/diacritice/internal/core/ports/driven"
	"github.com/custodia-labs/diacritice/internal/core/ports/driving"
	"github.com/custodia-labs/diacritice/internal/logger"
)

// Ensure RestoreService implements the interface.
var _ driving.RestoreService = (*RestoreService)(nil)

// restoreBinding is the model and configuration serving requests.
// It is replaced as a whole on reload and never mutated.
type restoreBinding struct {
	orchestrator   *Orchestrator
	model          driven.ModelService
	config         domain.RestoreConfig
	maxInputLength int
}

// RestoreService validates restoration requests and runs them through
// the orchestrator. The model binding can be swapped while serving.
type RestoreService struct {
	heuristic  driven.TextRestorer
	normaliser driven.TextNormaliser
	binding    atomic.Pointer[restoreBinding]
}

// NewRestoreService creates a restore service.
// model may be nil, in which case every request uses the heuristic engine.
func NewRestoreService(
	model driven.ModelService,
	heuristic driven.TextRestorer,
	normaliser driven.TextNormaliser,
	settings domain.AppSettings,
) *RestoreService {
	s := &RestoreService{
		heuristic:  heuristic,
		normaliser: normaliser,
	}
	s.binding.Store(s.bind(model, settings))
	return s
}

// Restore validates text and restores it with the current configuration.
func (s *RestoreService) Restore(ctx context.Context, text string) (*domain.EngineResult, error) {
	return s.RestoreWithConfig(ctx, text, s.Config())
}

// RestoreWithConfig restores text with an explicit configuration.
// Input limits still come from the current binding.
func (s *RestoreService) RestoreWithConfig(
	ctx context.Context, text string, cfg domain.RestoreConfig,
) (*domain.EngineResult, error) {
	b := s.binding.Load()

	if err := domain.ValidateText(text, b.maxInputLength); err != nil {
		logger.Debug("Rejected input: %v", err)
		return nil, err
	}

	result, err := b.orchestrator.Restore(ctx, text, cfg)
	if err != nil {
		return nil, fmt.Errorf("restore: %w", err)
	}
	return result, nil
}

// Config returns the configuration applied by Restore.
func (s *RestoreService) Config() domain.RestoreConfig {
	return s.binding.Load().config
}

// ExternalEnabled reports whether requests will try the external model first.
func (s *RestoreService) ExternalEnabled() bool {
	b := s.binding.Load()
	return b.orchestrator.CanUseExternal(b.config)
}

// ModelName returns the configured external model identifier.
func (s *RestoreService) ModelName() string {
	b := s.binding.Load()
	if b.model != nil {
		return b.model.ModelName()
	}
	return b.config.Model
}

// Reload swaps in a new model and settings. Requests already running keep
// the previous binding. The previous model is closed.
func (s *RestoreService) Reload(model driven.ModelService, settings domain.AppSettings) {
	old := s.binding.Swap(s.bind(model, settings))
	logger.Info("Reloaded restore settings (external=%t, model=%s)", s.ExternalEnabled(), s.ModelName())

	if old != nil && old.model != nil && old.model != model {
		if err := old.model.Close(); err != nil {
			logger.Warn("Failed to close previous model: %v", err)
		}
	}
}

// Close releases the bound model.
func (s *RestoreService) Close() error {
	b := s.binding.Load()
	if b.model == nil {
		return nil
	}
	if err := b.model.Close(); err != nil {
		return fmt.Errorf("close model: %w", err)
	}
	return nil
}

func (s *RestoreService) bind(model driven.ModelService, settings domain.AppSettings) *restoreBinding {
	return &restoreBinding{
		orchestrator:   NewOrchestrator(model, s.heuristic, s.normaliser),
		model:          model,
		config:         settings.RestoreConfig(),
		maxInputLength: settings.Restore.MaxInputLength,
	}
}
