package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	assert.NotEqual(t, ErrMissingRestoreService.Error(), ErrInvalidPorts.Error())
}

func TestErrMissingRestoreService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingRestoreService.Error(), "restore service")
}

func TestErrInvalidPorts_Message(t *testing.T) {
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
