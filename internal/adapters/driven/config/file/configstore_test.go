package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".diacritice", "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("model.name", "some/model"))

	val, ok := store.Get("model.name")
	assert.True(t, ok)
	assert.Equal(t, "some/model", val)

	val, ok = store.Get("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("model.name", "some/model"))
	require.NoError(t, store.Set("restore.max_chunk_size", 1200))
	require.NoError(t, store.Set("model.requests_per_second", 0.5))

	assert.Equal(t, "some/model", store.GetString("model.name"))
	assert.Equal(t, "", store.GetString("restore.max_chunk_size"))
	assert.Equal(t, 1200, store.GetInt("restore.max_chunk_size"))
	assert.Equal(t, 0, store.GetInt("model.name"))
	assert.InDelta(t, 0.5, store.GetFloat("model.requests_per_second"), 1e-9)
	assert.InDelta(t, 1200.0, store.GetFloat("restore.max_chunk_size"), 1e-9)
	assert.InDelta(t, 0.0, store.GetFloat("model.name"), 1e-9)
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("model.provider", "huggingface"))
	require.NoError(t, store1.Set("restore.max_chunk_size", 900))
	require.NoError(t, store1.Set("model.requests_per_second", 2.5))

	// A new instance reads the file; TOML integers come back as int64.
	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "huggingface", store2.GetString("model.provider"))
	assert.Equal(t, 900, store2.GetInt("restore.max_chunk_size"))
	assert.InDelta(t, 2.5, store2.GetFloat("model.requests_per_second"), 1e-9)
}

func TestConfigStore_WritesTables(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("model.name", "some/model"))
	require.NoError(t, store.Set("server.addr", ":8080"))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[model]")
	assert.Contains(t, string(data), "[server]")
}

func TestConfigStore_ReadsHandWrittenTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[model]
provider = "ollama"
name = "llama3.2"
requests_per_second = 2

[restore]
max_chunk_size = 1000
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "ollama", store.GetString("model.provider"))
	assert.Equal(t, "llama3.2", store.GetString("model.name"))
	assert.InDelta(t, 2.0, store.GetFloat("model.requests_per_second"), 1e-9)
	assert.Equal(t, 1000, store.GetInt("restore.max_chunk_size"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("test", "value"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte{}, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.Get("any_key")
	assert.False(t, ok)
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			key := "key" + string(rune('0'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_ = store.GetString(key)
			_ = store.GetFloat(key)
			_, _ = store.Get(key)
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("this is not valid TOML {{{[["), 0600))

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_Set_WriteFileError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("test", "value"))

	// Replace the file with a directory to cause write error
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	assert.Error(t, store.Set("another", "value"))
}

func TestConfigStore_Load_InvalidTOML(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("valid", "data"))

	require.NoError(t, os.WriteFile(store.Path(), []byte("invalid toml syntax ][}{"), 0600))

	assert.Error(t, store.Load())
	// Previous values survive a failed load.
	assert.Equal(t, "data", store.GetString("valid"))
}

func TestConfigStore_SetWithUnmarshallableValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Set("channel", make(chan int)))
}

func TestNestMap(t *testing.T) {
	flat := map[string]any{
		"model.name":      "m",
		"model.provider":  "p",
		"restore.max":     int64(1),
		"top":             "t",
		"top.child":       "collides",
		"server.tls.cert": "c",
	}

	nested := nestMap(flat)

	assert.Equal(t, map[string]any{"name": "m", "provider": "p"}, nested["model"])
	assert.Equal(t, map[string]any{"max": int64(1)}, nested["restore"])
	assert.Equal(t, "t", nested["top"])
	assert.Equal(t, "collides", nested["top.child"])
	assert.Equal(t, map[string]any{"tls": map[string]any{"cert": "c"}}, nested["server"])

	assert.Equal(t, flat, flattenMap(nested, ""))
}
