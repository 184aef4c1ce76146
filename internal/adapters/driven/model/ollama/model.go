// Package ollama provides a model service adapter using a local Ollama instance.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/diacritice/internal/adapters/driven/model/chat"
	"github.com/custodia-labs/diacritice/internal/adapters/driven/model/throttle"
	"github.com/custodia-labs/diacritice/internal/core/domain"
	"github.com/custodia-labs/diacritice/internal/core/ports/driven"
)

// Ensure ModelService implements the interfaces.
var (
	_ driven.ModelService     = (*ModelService)(nil)
	_ driven.PromptStoreAware = (*ModelService)(nil)
)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "llama3.2"
	DefaultTimeout = 120 * time.Second
)

// Config holds configuration for the Ollama model service.
type Config struct {
	// BaseURL is the Ollama API base URL (default: http://localhost:11434).
	BaseURL string

	// Model is the model to use (default: llama3.2).
	Model string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration

	// RequestsPerSecond throttles requests. Zero disables throttling.
	RequestsPerSecond float64
}

// ModelService restores diacritics using Ollama's chat endpoint.
type ModelService struct {
	client  *http.Client
	baseURL string
	model   string
	limiter *throttle.Limiter

	mu          sync.RWMutex
	promptStore driven.PromptStore
}

// chatRequest is the Ollama /api/chat request format.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  options       `json:"options"`
}

// options holds generation parameters.
type options struct {
	Temperature float64 `json:"temperature"`
}

// chatMessage is the Ollama chat message format.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the Ollama /api/chat response format.
type chatResponse struct {
	Message *chatMessage `json:"message"`
	Done    bool         `json:"done"`
	Error   string       `json:"error,omitempty"`
}

// NewModelService creates a new Ollama model service.
func NewModelService(cfg Config) *ModelService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &ModelService{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		limiter: throttle.New(cfg.RequestsPerSecond, 1),
	}
}

// Generate sends one chunk as the user message under the restoration
// system prompt.
func (s *ModelService) Generate(ctx context.Context, input string) domain.Generation {
	if err := s.limiter.Wait(ctx); err != nil {
		return domain.TransportFailure(fmt.Errorf("ollama: rate limit wait: %w", err))
	}

	jsonBody, err := json.Marshal(chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: chat.SystemPrompt(s.prompts())},
			{Role: "user", Content: input},
		},
		Stream: false,
	})
	if err != nil {
		return domain.TransportFailure(fmt.Errorf("ollama: marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/api/chat",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return domain.TransportFailure(fmt.Errorf("ollama: create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return domain.TransportFailure(fmt.Errorf("ollama: send request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.TransportFailure(fmt.Errorf("ollama: read response: %w", err))
	}

	s.limiter.Observe(resp)
	if resp.StatusCode != http.StatusOK {
		return domain.TransportFailure(fmt.Errorf("ollama: %w", domain.NewHTTPStatusError(resp.StatusCode, body)))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return domain.UnexpectedShape()
	}
	if chatResp.Error != "" {
		return domain.TransportFailure(fmt.Errorf("ollama error: %s", chatResp.Error))
	}
	if chatResp.Message == nil {
		return domain.UnexpectedShape()
	}

	out := chat.Reattach(input, chatResp.Message.Content)
	if out == "" {
		return domain.UnexpectedShape()
	}
	return domain.WellFormed(out)
}

// ModelName returns the name of the model being used.
func (s *ModelService) ModelName() string {
	return s.model
}

// SetPromptStore sets the prompt store for loading the system prompt.
// If not set, the service uses the built-in prompt.
func (s *ModelService) SetPromptStore(store driven.PromptStore) {
	s.mu.Lock()
	s.promptStore = store
	s.mu.Unlock()
}

func (s *ModelService) prompts() driven.PromptStore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.promptStore
}

// Ping validates the service is reachable by checking the /api/tags endpoint.
// This is a lightweight check that validates connectivity without running inference.
func (s *ModelService) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/tags", http.NoBody)
	if err != nil {
		return fmt.Errorf("ollama: failed to create ping request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("ollama: ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, domain.MaxStatusBody))
		return fmt.Errorf("ollama: %w", domain.NewHTTPStatusError(resp.StatusCode, body))
	}
	return nil
}

// Close releases idle connections.
func (s *ModelService) Close() error {
	s.client.CloseIdleConnections()
	return nil
}
