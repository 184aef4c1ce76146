package domain

const unknownDescription = "Unknown"

// ModelProvider identifies the service hosting the external restoration model.
type ModelProvider string

// Available model providers.
const (
	// ModelProviderHuggingFace is the Hugging Face inference API.
	ModelProviderHuggingFace ModelProvider = "huggingface"

	// ModelProviderOpenAI is an OpenAI-compatible chat completions API.
	ModelProviderOpenAI ModelProvider = "openai"

	// ModelProviderOllama is a local Ollama instance.
	ModelProviderOllama ModelProvider = "ollama"
)

// IsValid returns true if the provider is recognised.
func (p ModelProvider) IsValid() bool {
	switch p {
	case ModelProviderHuggingFace, ModelProviderOpenAI, ModelProviderOllama:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs a credential.
func (p ModelProvider) RequiresAPIKey() bool {
	return p == ModelProviderHuggingFace || p == ModelProviderOpenAI
}

// IsLocal returns true if this provider runs locally.
func (p ModelProvider) IsLocal() bool {
	return p == ModelProviderOllama
}

// String returns the string representation.
func (p ModelProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p ModelProvider) Description() string {
	switch p {
	case ModelProviderHuggingFace:
		return "Hugging Face (inference API)"
	case ModelProviderOpenAI:
		return "OpenAI (chat completions)"
	case ModelProviderOllama:
		return "Ollama (local)"
	default:
		return unknownDescription
	}
}

// ModelSettings holds external model configuration.
type ModelSettings struct {
	// Provider is the model service provider.
	Provider ModelProvider

	// Model is the model identifier.
	Model string

	// BaseURL overrides the provider endpoint.
	BaseURL string

	// APIKey is the credential (Hugging Face token or OpenAI key).
	APIKey string

	// TimeoutSeconds bounds a single model request. Zero uses the adapter default.
	TimeoutSeconds int

	// RequestsPerSecond throttles outbound calls. Zero disables throttling.
	RequestsPerSecond float64

	// Enabled opts a local provider in. Local providers take no credential,
	// so without it they never serve requests. Hosted providers ignore it.
	Enabled bool
}

// IsConfigured returns true if the external model can be used.
// Hosted providers need a credential; local providers need Enabled.
func (m ModelSettings) IsConfigured() bool {
	switch {
	case !m.Provider.IsValid():
		return false
	case m.Provider.IsLocal():
		return m.Enabled
	default:
		return m.APIKey != ""
	}
}

// RestoreSettings holds restoration limits.
type RestoreSettings struct {
	// MaxChunkSize is the soft chunk size in characters.
	MaxChunkSize int

	// MaxInputLength is the largest accepted input in characters.
	MaxInputLength int
}

// ServerSettings holds HTTP server configuration.
type ServerSettings struct {
	// Addr is the listen address.
	Addr string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Model holds external model settings.
	Model ModelSettings

	// Restore holds restoration limits.
	Restore RestoreSettings

	// Server holds HTTP server settings.
	Server ServerSettings
}

// RestoreConfig derives the per-call restoration configuration.
func (s AppSettings) RestoreConfig() RestoreConfig {
	return RestoreConfig{
		MaxChunkSize:  s.Restore.MaxChunkSize,
		Model:         s.Model.Model,
		HasCredential: s.Model.IsConfigured(),
	}
}

// DefaultAppSettings returns settings with sensible defaults.
// The credential is left empty, so restoration uses the heuristic engine
// until a token is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Model: ModelSettings{
			Provider:          ModelProviderHuggingFace,
			Model:             DefaultModel,
			TimeoutSeconds:    60,
			RequestsPerSecond: 0,
		},
		Restore: RestoreSettings{
			MaxChunkSize:   DefaultMaxChunkSize,
			MaxInputLength: DefaultMaxInputLength,
		},
		Server: ServerSettings{
			Addr: ":8080",
		},
	}
}

// AllModelProviders returns all supported providers.
func AllModelProviders() []ModelProvider {
	return []ModelProvider{
		ModelProviderHuggingFace,
		ModelProviderOpenAI,
		ModelProviderOllama,
	}
}

// DefaultModels returns the default model for each provider.
func DefaultModels() map[ModelProvider]string {
	return map[ModelProvider]string{
		ModelProviderHuggingFace: DefaultModel,
		ModelProviderOpenAI:      "gpt-4o-mini",
		ModelProviderOllama:      "llama3.2",
	}
}
