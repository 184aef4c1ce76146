package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/diacritice/internal/core/domain"
	"github.com/custodia-labs/diacritice/internal/core/ports/driven"
	"github.com/custodia-labs/diacritice/internal/logger"
)

// ExternalRestorer restores chunked text through an external model.
type ExternalRestorer struct {
	model driven.ModelService
}

// NewExternalRestorer creates an external restorer backed by model.
func NewExternalRestorer(model driven.ModelService) *ExternalRestorer {
	return &ExternalRestorer{model: model}
}

// Restore sends the chunks to the model one at a time, in order, and
// concatenates the results.
//
// A transport failure on any chunk aborts the whole attempt: no partial
// output is returned. A payload of the wrong shape contributes nothing.
func (r *ExternalRestorer) Restore(ctx context.Context, chunks []domain.Chunk) (string, error) {
	if r.model == nil {
		return "", domain.ErrModelUnavailable
	}

	restored := make([]domain.Chunk, 0, len(chunks))
	for _, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("%w: chunk %d: %w", domain.ErrExternalService, chunk.Index, err)
		}

		gen := r.model.Generate(ctx, chunk.Text)
		logger.Debug("Chunk %d/%d (%d chars): %s", chunk.Index+1, len(chunks), chunk.Len(), gen.Kind)

		if gen.Failed() {
			err := gen.Err
			if err == nil {
				err = errors.New(gen.Kind.String())
			}
			return "", fmt.Errorf("%w: chunk %d: %w", domain.ErrExternalService, chunk.Index, err)
		}
		if gen.Kind == domain.GenerationUnexpectedShape {
			logger.Warn("Model %s returned an unexpected payload for chunk %d", r.model.ModelName(), chunk.Index)
		}

		restored = append(restored, domain.Chunk{Index: chunk.Index, Text: gen.Contribution()})
	}

	return domain.JoinChunks(restored), nil
}
