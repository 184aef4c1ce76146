package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/diacritice/internal/core/domain"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view ViewType
		want string
	}{
		{ViewEditor, "editor"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.view.String())
		})
	}
}

func TestRestoreCompleted(t *testing.T) {
	result := &domain.EngineResult{Text: "și", Engine: domain.EngineHeuristic}
	msg := RestoreCompleted{Result: result}

	assert.Equal(t, "și", msg.Result.Text)
	assert.NoError(t, msg.Err)
}

func TestCopied_WithError(t *testing.T) {
	err := errors.New("no clipboard")
	msg := Copied{Err: err}

	assert.ErrorIs(t, msg.Err, err)
}

func TestViewChanged(t *testing.T) {
	msg := ViewChanged{View: ViewHelp}

	assert.Equal(t, ViewHelp, msg.View)
}
