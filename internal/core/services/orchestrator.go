package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/diacritice/internal/chunker"
	"github.com/custodia-labs/diacritice/internal/core/domain"
	"github.com/custodia-labs/diacritice/internal/core/ports/driven"
	"github.com/custodia-labs/diacritice/internal/logger"
)

// Orchestrator picks the restoration engine for one request.
//
// It tries the external model when a credential is configured and falls
// back to the heuristic restorer on the original input when the external
// attempt fails for any reason. Each call is one sequential unit of work.
type Orchestrator struct {
	external   *ExternalRestorer
	heuristic  driven.TextRestorer
	normaliser driven.TextNormaliser
	chunker    *chunker.Chunker
}

// NewOrchestrator creates an orchestrator.
// model and normaliser are optional (can be nil); heuristic is required.
func NewOrchestrator(
	model driven.ModelService,
	heuristic driven.TextRestorer,
	normaliser driven.TextNormaliser,
) *Orchestrator {
	o := &Orchestrator{
		heuristic:  heuristic,
		normaliser: normaliser,
		chunker:    chunker.New(),
	}
	if model != nil {
		o.external = NewExternalRestorer(model)
	}
	return o
}

// CanUseExternal reports whether cfg would route a request to the model.
func (o *Orchestrator) CanUseExternal(cfg domain.RestoreConfig) bool {
	return o.external != nil && cfg.HasCredential
}

// Restore restores text using the external model or the heuristic fallback.
// External failures never surface: only invalid configuration is returned
// as an error. text is assumed to be validated by the caller.
func (o *Orchestrator) Restore(
	ctx context.Context, text string, cfg domain.RestoreConfig,
) (*domain.EngineResult, error) {
	logger.Section("Restore")

	size, err := cfg.EffectiveChunkSize()
	if err != nil {
		return nil, err
	}

	text = o.normalise(text)

	if o.CanUseExternal(cfg) {
		restored, err := o.tryExternal(ctx, text, size)
		if err == nil {
			logger.Info("Restored %d chars with model %s", len([]rune(text)), cfg.Model)
			return &domain.EngineResult{
				Text:   o.normalise(restored),
				Engine: domain.EngineExternal,
			}, nil
		}
		logger.Warn("External restoration failed, falling back to heuristic: %v", err)
	} else {
		logger.Debug("External model not configured, using heuristic")
	}

	return &domain.EngineResult{
		Text:   o.heuristic.Restore(text),
		Engine: domain.EngineHeuristic,
	}, nil
}

// tryExternal runs the external path. A panic anywhere on the path is
// treated like any other external failure.
func (o *Orchestrator) tryExternal(ctx context.Context, text string, size int) (restored string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", domain.ErrExternalService, r)
		}
	}()

	chunks := o.chunkerFor(size).Split(text)
	logger.Debug("Split input into %d chunks (max %d chars)", len(chunks), size)

	return o.external.Restore(ctx, chunks)
}

// chunkerFor returns a chunker bounded by size, reusing the default one.
func (o *Orchestrator) chunkerFor(size int) *chunker.Chunker {
	if size == o.chunker.MaxSize() {
		return o.chunker
	}
	return chunker.New(chunker.WithMaxSize(size))
}

func (o *Orchestrator) normalise(text string) string {
	if o.normaliser == nil {
		return text
	}
	return o.normaliser.Normalise(text)
}
