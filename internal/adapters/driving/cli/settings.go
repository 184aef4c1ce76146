package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/diacritice/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the external restoration model and limits.

Environment variables override the config file and are never saved:
  HF_TOKEN             Hugging Face access token
  HF_MODEL             model id
  DIACRITICE_PROVIDER  huggingface, openai or ollama
  DIACRITICE_BASE_URL  provider endpoint
  DIACRITICE_ADDR      serve listen address`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetModelCmd = &cobra.Command{
	Use:   "set-model",
	Short: "Configure the external model provider",
	Long: `Configure the external restoration model.

Without --provider, prompts interactively for the provider, model and key.

Examples:
  diacritice settings set-model
  diacritice settings set-model --provider huggingface --api-key hf_xxx
  diacritice settings set-model --provider ollama --model llama3.2 --enable

Local providers take no key and stay off until enabled.`,
	RunE: runSettingsSetModel,
}

func init() {
	settingsSetModelCmd.Flags().String("provider", "", "Provider: huggingface, openai or ollama")
	settingsSetModelCmd.Flags().String("model", "", "Model id (default depends on provider)")
	settingsSetModelCmd.Flags().String("api-key", "", "API key or access token")
	settingsSetModelCmd.Flags().Bool("no-validate", false, "Save without contacting the provider")
	settingsSetModelCmd.Flags().Bool("enable", false, "Use a local provider for restoration")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetModelCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if app == nil || app.Settings == nil {
		return errors.New("settings service not configured")
	}

	settings, err := app.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	// Model settings
	model := settings.Model
	cmd.Println("[Model]")
	cmd.Printf("  Provider: %s\n", model.Provider.Description())
	cmd.Printf("  Model: %s\n", model.Model)
	if model.BaseURL != "" {
		cmd.Printf("  Base URL: %s\n", model.BaseURL)
	}
	if model.Provider.IsLocal() {
		cmd.Printf("  Enabled: %t\n", model.Enabled)
	}
	if model.Provider.RequiresAPIKey() {
		if model.APIKey != "" {
			cmd.Printf("  API Key: %s\n", maskAPIKey(model.APIKey))
		} else {
			cmd.Printf("  API Key: (not set)\n")
		}
	}
	if model.TimeoutSeconds > 0 {
		cmd.Printf("  Timeout: %ds\n", model.TimeoutSeconds)
	}
	if model.RequestsPerSecond > 0 {
		cmd.Printf("  Rate limit: %g requests/s\n", model.RequestsPerSecond)
	}
	status := "configured"
	if !model.IsConfigured() {
		status = "not configured (heuristic engine only)"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	// Restore limits
	cmd.Println("[Restore]")
	cmd.Printf("  Max chunk size: %d\n", settings.Restore.MaxChunkSize)
	cmd.Printf("  Max input length: %d\n", settings.Restore.MaxInputLength)
	cmd.Println()

	// Server settings
	cmd.Println("[Server]")
	cmd.Printf("  Address: %s\n", settings.Server.Addr)
	cmd.Println()

	// Validation
	if err := app.Settings.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'diacritice settings set-model' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSetModel(cmd *cobra.Command, _ []string) error {
	if app == nil || app.Settings == nil {
		return errors.New("settings service not configured")
	}

	providerName, _ := cmd.Flags().GetString("provider") //nolint:errcheck // flag is registered
	model, _ := cmd.Flags().GetString("model")           //nolint:errcheck // flag is registered
	apiKey, _ := cmd.Flags().GetString("api-key")        //nolint:errcheck // flag is registered
	noValidate, _ := cmd.Flags().GetBool("no-validate")  //nolint:errcheck // flag is registered
	enable, _ := cmd.Flags().GetBool("enable")           //nolint:errcheck // flag is registered

	provider := domain.ModelProvider(strings.ToLower(strings.TrimSpace(providerName)))
	if providerName == "" {
		var err error
		provider, model, apiKey, enable, err = promptModel(cmd)
		if err != nil {
			return err
		}
	}

	if err := app.Settings.SetModel(provider, model, apiKey); err != nil {
		return fmt.Errorf("failed to configure model: %w", err)
	}
	if err := app.Settings.SetModelEnabled(provider.IsLocal() && enable); err != nil {
		return fmt.Errorf("failed to configure model: %w", err)
	}

	if !noValidate {
		// Validate the configuration by pinging the service
		cmd.Print("Validating configuration... ")
		if err := app.Settings.Validate(); err != nil {
			cmd.Printf("FAILED: %v\n", err)
			return fmt.Errorf("model configuration validation failed: %w", err)
		}
		cmd.Println("OK")
	}

	settings, err := app.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	cmd.Printf("Model configured: %s (%s)\n", settings.Model.Provider.Description(), settings.Model.Model)
	if settings.Model.Provider.IsLocal() && !settings.Model.Enabled {
		cmd.Println("Local model is disabled; pass --enable to use it.")
	}
	return nil
}

// promptModel asks for the provider, model and key on the command input.
func promptModel(cmd *cobra.Command) (domain.ModelProvider, string, string, bool, error) {
	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Println("Select Model Provider")
	providers := domain.AllModelProviders()
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	idx := parseChoice(readLine(reader), len(providers), 1)
	selected := providers[idx-1]

	defaultModel := domain.DefaultModels()[selected]
	cmd.Printf("Enter model name [%s]: ", defaultModel)
	model := readLine(reader)
	if model == "" {
		model = defaultModel
	}

	var apiKey string
	if selected.RequiresAPIKey() {
		cmd.Print("Enter API key (empty keeps the current one): ")
		apiKey = readPassword(cmd.InOrStdin(), reader)
		cmd.Println()
	}

	var enable bool
	if selected.IsLocal() {
		cmd.Print("Use this model for restoration? [Y/n]: ")
		answer := strings.ToLower(readLine(reader))
		enable = answer == "" || answer == "y" || answer == "yes"
	}

	return selected, model, apiKey, enable, nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

// readPassword reads without echo when in is a terminal.
func readPassword(in io.Reader, reader *bufio.Reader) string {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	// Fallback to regular input
	return readLine(reader)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
