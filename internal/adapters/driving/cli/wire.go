package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/diacritice/internal/adapters/driven/ai"
	"github.com/custodia-labs/diacritice/internal/adapters/driven/clipboard"
	"github.com/custodia-labs/diacritice/internal/adapters/driven/config/file"
	"github.com/custodia-labs/diacritice/internal/core/domain"
	"github.com/custodia-labs/diacritice/internal/core/ports/driven"
	"github.com/custodia-labs/diacritice/internal/core/services"
	"github.com/custodia-labs/diacritice/internal/heuristic"
	"github.com/custodia-labs/diacritice/internal/logger"
	"github.com/custodia-labs/diacritice/internal/normalisers/romanian"
)

// Services holds the application services used by commands.
type Services struct {
	Restore  *services.RestoreService
	Settings *services.SettingsService
	Prompts  driven.PromptStore
	Actions  *services.ResultActionService

	// Watcher reports configuration changes. Nil disables serve --watch.
	Watcher driven.ConfigWatcher
}

// app is the wired service set. Tests inject it with SetServices.
var app *Services

// SetServices injects the services used by commands.
func SetServices(s *Services) {
	app = s
}

// NewServices wires the services for a configuration directory.
// Empty configDir selects ~/.diacritice.
func NewServices(configDir string) (*Services, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	prompts, err := file.NewPromptStore(filepath.Join(filepath.Dir(store.Path()), "prompts"))
	if err != nil {
		return nil, fmt.Errorf("open prompts: %w", err)
	}

	settingsSvc := services.NewSettingsService(store, ai.NewConfigValidator())
	settingsSvc.SetEnvLookup(os.LookupEnv)

	settings, err := settingsSvc.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	restoreSvc := services.NewRestoreService(createModel(settings, prompts), heuristic.New(), romanian.New(), *settings)

	return &Services{
		Restore:  restoreSvc,
		Settings: settingsSvc,
		Prompts:  prompts,
		Actions:  services.NewResultActionService(clipboard.New()),
		Watcher:  file.NewWatcher(store, file.WithPromptStore(prompts)),
	}, nil
}

// createModel builds the configured model service. Failures are logged and
// leave restoration on the heuristic engine.
func createModel(settings *domain.AppSettings, prompts driven.PromptStore) driven.ModelService {
	model, err := ai.CreateModelService(&settings.Model, prompts)
	if err != nil {
		logger.Warn("External model unavailable, using heuristic engine: %v", err)
		return nil
	}
	if model == nil {
		logger.Debug("No model credential configured, using heuristic engine")
	}
	return model
}

// reloadServices rebinds the restore service to freshly loaded settings.
func reloadServices(s *Services) error {
	settings, err := s.Settings.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	s.Restore.Reload(createModel(settings, s.Prompts), *settings)
	return nil
}

// checkModel pings the configured model and rebinds the restore service to
// it. An unreachable model is dropped, leaving the heuristic engine, and the
// ping error is returned.
func checkModel(s *Services) error {
	settings, err := s.Settings.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	model, pingErr := ai.CreateAndValidateModelService(&settings.Model, s.Prompts)
	s.Restore.Reload(model, *settings)
	return pingErr
}

func ensureServices(configDir string) error {
	if app != nil {
		return nil
	}
	s, err := NewServices(configDir)
	if err != nil {
		return err
	}
	app = s
	return nil
}

func closeServices() {
	if app == nil || app.Restore == nil {
		return
	}
	if err := app.Restore.Close(); err != nil {
		logger.Warn("Failed to close services: %v", err)
	}
}
