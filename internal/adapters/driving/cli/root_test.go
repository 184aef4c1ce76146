package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "diacritice", rootCmd.Use)
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"restore", "serve", "settings", "mcp", "tui", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config-dir"))
}

func TestSkipsServices(t *testing.T) {
	assert.True(t, skipsServices(rootCmd))
	assert.True(t, skipsServices(versionCmd))
	assert.False(t, skipsServices(restoreCmd))
	assert.False(t, skipsServices(serveCmd))
	assert.False(t, skipsServices(settingsShowCmd))
}

func TestEnsureServices_KeepsInjected(t *testing.T) {
	s, _ := newTestServices(t)
	SetServices(s)
	t.Cleanup(func() { SetServices(nil) })

	require.NoError(t, ensureServices("/nonexistent/never/created"))

	assert.Same(t, s, app)
}

func TestNewServices_ConfigDir(t *testing.T) {
	dir := t.TempDir()

	s, err := NewServices(dir)

	require.NoError(t, err)
	require.NotNil(t, s.Restore)
	require.NotNil(t, s.Settings)
	assert.NotNil(t, s.Prompts)
	assert.NotNil(t, s.Actions)
	assert.NotNil(t, s.Watcher)
	assert.NoError(t, s.Restore.Close())
}

func TestReloadServices(t *testing.T) {
	s, store := newTestServices(t)
	require.NoError(t, store.Set("restore.max_chunk_size", 42))

	require.NoError(t, reloadServices(s))

	assert.Equal(t, 42, s.Restore.Config().MaxChunkSize)
	assert.False(t, s.Restore.ExternalEnabled())
}
