package file

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/diacritice/internal/core/ports/driven"
	"github.com/custodia-labs/diacritice/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.ConfigWatcher = (*Watcher)(nil)

// defaultDebounce batches the burst of events an editor save produces.
const defaultDebounce = 250 * time.Millisecond

// Watcher reloads the config store, and optionally a prompt store, when
// files in their directories change on disk.
type Watcher struct {
	store    *ConfigStore
	prompts  *PromptStore
	debounce time.Duration
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithPromptStore also watches the prompt directory and clears the prompt
// cache on changes.
func WithPromptStore(prompts *PromptStore) WatcherOption {
	return func(w *Watcher) {
		w.prompts = prompts
	}
}

// WithDebounce sets the quiet period before a reload. Values <= 0 are ignored.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// NewWatcher creates a watcher for store.
func NewWatcher(store *ConfigStore, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		store:    store,
		debounce: defaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Watch blocks until ctx is done. After each burst of relevant file events
// it reloads the stores and calls onChange. A config file that fails to
// parse is logged and the previous values are kept.
func (w *Watcher) Watch(ctx context.Context, onChange func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	configDir := filepath.Dir(w.store.Path())
	if err := fw.Add(configDir); err != nil {
		return fmt.Errorf("watch %s: %w", configDir, err)
	}
	logger.Debug("Watching %s", configDir)

	if w.prompts != nil {
		if err := w.prompts.ensureDir(); err != nil {
			logger.Warn("Prompt directory unavailable, not watching: %v", err)
		} else if err := fw.Add(w.prompts.Dir()); err != nil {
			logger.Warn("Failed to watch %s: %v", w.prompts.Dir(), err)
		}
	}

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	fire := func() {
		if err := w.reload(); err != nil {
			logger.Warn("Config reload failed, keeping previous settings: %v", err)
			return
		}
		if onChange != nil {
			onChange()
		}
	}
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debug("Config event: %s", event)

			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, fire)
			mu.Unlock()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Config watcher error: %v", err)
		}
	}
}

func (w *Watcher) reload() error {
	if err := w.store.Load(); err != nil {
		return err
	}
	if w.prompts != nil {
		w.prompts.Reload()
	}
	return nil
}

// relevant reports whether event touches the config file or a prompt file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	name := filepath.Clean(event.Name)
	if name == filepath.Clean(w.store.Path()) {
		return true
	}
	if w.prompts != nil && filepath.Dir(name) == filepath.Clean(w.prompts.Dir()) {
		return strings.HasSuffix(name, promptExt)
	}
	return false
}
