// Package openai provides a model service adapter using an OpenAI-compatible
// chat completions API.
package openai

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
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o-mini"
	DefaultTimeout = 120 * time.Second
)

// Config holds configuration for the OpenAI model service.
type Config struct {
	// APIKey is the OpenAI API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api.openai.com/v1).
	// Can be changed for Azure OpenAI or compatible APIs.
	BaseURL string

	// Model is the chat model to use (default: gpt-4o-mini).
	Model string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration

	// RequestsPerSecond throttles requests. Zero disables throttling.
	RequestsPerSecond float64
}

// ModelService restores diacritics with a chat completion model.
type ModelService struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
	limiter *throttle.Limiter

	mu          sync.RWMutex
	promptStore driven.PromptStore
}

// chatCompletionRequest is the OpenAI /chat/completions request format.
type chatCompletionRequest struct {
	Model       string              `json:"model"`
	Messages    []chatCompletionMsg `json:"messages"`
	Temperature float64             `json:"temperature"`
}

// chatCompletionMsg is the OpenAI chat message format.
type chatCompletionMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionResponse is the OpenAI /chat/completions response format.
type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// NewModelService creates a new OpenAI model service.
func NewModelService(cfg Config) (*ModelService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
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
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		limiter: throttle.New(cfg.RequestsPerSecond, 1),
	}, nil
}

// Generate sends one chunk as the user message under the restoration
// system prompt.
func (s *ModelService) Generate(ctx context.Context, input string) domain.Generation {
	if err := s.limiter.Wait(ctx); err != nil {
		return domain.TransportFailure(fmt.Errorf("openai: rate limit wait: %w", err))
	}

	jsonBody, err := json.Marshal(chatCompletionRequest{
		Model: s.model,
		Messages: []chatCompletionMsg{
			{Role: "system", Content: chat.SystemPrompt(s.prompts())},
			{Role: "user", Content: input},
		},
		Temperature: 0,
	})
	if err != nil {
		return domain.TransportFailure(fmt.Errorf("openai: marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/chat/completions",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return domain.TransportFailure(fmt.Errorf("openai: create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return domain.TransportFailure(fmt.Errorf("openai: send request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.TransportFailure(fmt.Errorf("openai: read response: %w", err))
	}

	s.limiter.Observe(resp)
	if resp.StatusCode != http.StatusOK {
		return domain.TransportFailure(fmt.Errorf("openai: %w", domain.NewHTTPStatusError(resp.StatusCode, body)))
	}

	var chatResp chatCompletionResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return domain.UnexpectedShape()
	}
	if chatResp.Error != nil {
		return domain.TransportFailure(fmt.Errorf("openai error: %s", chatResp.Error.Message))
	}
	if len(chatResp.Choices) == 0 {
		return domain.UnexpectedShape()
	}

	out := chat.Reattach(input, chatResp.Choices[0].Message.Content)
	if out == "" {
		return domain.UnexpectedShape()
	}
	return domain.WellFormed(out)
}

// ModelName returns the name of the chat model being used.
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

// Ping validates the service is reachable by checking the /models endpoint.
// This is a lightweight check that validates the API key without running inference.
func (s *ModelService) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/models", http.NoBody)
	if err != nil {
		return fmt.Errorf("openai: failed to create ping request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("openai: ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, domain.MaxStatusBody))
		return fmt.Errorf("openai: %w", domain.NewHTTPStatusError(resp.StatusCode, body))
	}
	return nil
}

// Close releases idle connections.
func (s *ModelService) Close() error {
	s.client.CloseIdleConnections()
	return nil
}
