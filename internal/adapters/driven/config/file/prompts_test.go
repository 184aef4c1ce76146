package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/diacritice/internal/core/ports/driven"
)

const restorePromptFile = "restore_system.txt"

func TestNewPromptStore_WithCustomDir(t *testing.T) {
	dir := t.TempDir()

	store, err := NewPromptStore(dir)

	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())
}

func TestNewPromptStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewPromptStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".diacritice", "prompts"), store.Dir())
}

func TestPromptStore_Load_CreatesDefaultFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	// Nothing is written before the first load.
	_, err = os.Stat(filepath.Join(dir, restorePromptFile))
	assert.True(t, os.IsNotExist(err))

	_, err = store.Load(driven.PromptRestoreSystem)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, restorePromptFile))
	assert.NoError(t, err)
}

func TestPromptStore_Load_ReturnsDefaultContent(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	prompt, err := store.Load(driven.PromptRestoreSystem)

	require.NoError(t, err)
	assert.Contains(t, prompt, "Romanian diacritics")
	assert.Contains(t, prompt, "Return ONLY the restored text")
}

func TestPromptStore_Load_ReturnsCustomContent(t *testing.T) {
	dir := t.TempDir()
	customContent := "Adaugă diacriticele."
	require.NoError(t, os.WriteFile(filepath.Join(dir, restorePromptFile), []byte(customContent), 0600))

	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	prompt, err := store.Load(driven.PromptRestoreSystem)

	require.NoError(t, err)
	assert.Equal(t, customContent, prompt)
}

func TestPromptStore_Load_FallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	_, _ = store.Load(driven.PromptRestoreSystem) // Trigger init
	require.NoError(t, os.Remove(filepath.Join(dir, restorePromptFile)))
	store.Reload()

	prompt, err := store.Load(driven.PromptRestoreSystem)

	require.NoError(t, err)
	assert.Equal(t, defaultPrompts[driven.PromptRestoreSystem], prompt)
}

func TestPromptStore_Load_EmptyFileFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, restorePromptFile), []byte("  \n"), 0600))

	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	prompt, err := store.Load(driven.PromptRestoreSystem)

	require.NoError(t, err)
	assert.Equal(t, defaultPrompts[driven.PromptRestoreSystem], prompt)
}

func TestPromptStore_Load_UnknownPrompt(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("nonexistent_prompt")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent_prompt")
}

func TestPromptStore_Load_InitFailureUsesDefaults(t *testing.T) {
	store, err := NewPromptStore("/dev/null/prompts")
	require.NoError(t, err)

	prompt, err := store.Load(driven.PromptRestoreSystem)
	require.NoError(t, err)
	assert.Equal(t, defaultPrompts[driven.PromptRestoreSystem], prompt)

	_, err = store.Load("nonexistent_prompt")
	assert.Error(t, err)
}

func TestPromptStore_Load_CachesResults(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	prompt1, err := store.Load(driven.PromptRestoreSystem)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, restorePromptFile), []byte("modified content"), 0600))

	prompt2, err := store.Load(driven.PromptRestoreSystem)
	require.NoError(t, err)
	assert.Equal(t, prompt1, prompt2)

	store.Reload()

	prompt3, err := store.Load(driven.PromptRestoreSystem)
	require.NoError(t, err)
	assert.Equal(t, "modified content", prompt3)
}

func TestPromptStore_Load_ConcurrentAccess(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)

	prompts := make(chan string, goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			prompt, err := store.Load(driven.PromptRestoreSystem)
			assert.NoError(t, err)
			prompts <- prompt
		}()
	}

	wg.Wait()
	close(prompts)

	for prompt := range prompts {
		assert.Equal(t, defaultPrompts[driven.PromptRestoreSystem], prompt)
	}
}

func TestPromptStore_DoesNotOverwriteExistingFiles(t *testing.T) {
	dir := t.TempDir()
	customContent := "pre-existing custom prompt"
	require.NoError(t, os.WriteFile(filepath.Join(dir, restorePromptFile), []byte(customContent), 0600))

	store, err := NewPromptStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.ensureDir())

	data, err := os.ReadFile(filepath.Join(dir, restorePromptFile))
	require.NoError(t, err)
	assert.Equal(t, customContent, string(data))
}

func TestPromptStore_TrimsWhitespace(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, restorePromptFile), []byte("\n\n  prompt content  \n\n"), 0600))

	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	prompt, err := store.Load(driven.PromptRestoreSystem)
	require.NoError(t, err)
	assert.Equal(t, "prompt content", prompt)
}
