// Package huggingface provides a model service adapter for the Hugging Face
// inference API. The hosted model is a seq2seq diacritic restorer: the chunk
// is the whole input and the generated text is the restored chunk.
package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/diacritice/internal/adapters/driven/model/throttle"
	"github.com/custodia-labs/diacritice/internal/core/domain"
	"github.com/custodia-labs/diacritice/internal/core/ports/driven"
)

// Ensure ModelService implements the interface.
var _ driven.ModelService = (*ModelService)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api-inference.huggingface.co"
	DefaultModel   = domain.DefaultModel
	DefaultTimeout = 60 * time.Second
)

// Config holds configuration for the Hugging Face model service.
type Config struct {
	// APIKey is the Hugging Face access token (required).
	APIKey string

	// BaseURL is the inference API base URL (default: https://api-inference.huggingface.co).
	BaseURL string

	// Model is the model repository id (default: iliemihai/mt5-base-romanian-diacritics).
	Model string

	// Timeout is the request timeout (default: 60s).
	Timeout time.Duration

	// RequestsPerSecond throttles requests. Zero disables throttling.
	RequestsPerSecond float64
}

// ModelService restores diacritics using a hosted Hugging Face model.
type ModelService struct {
	client  *http.Client
	baseURL string
	model   string
	limiter *throttle.Limiter
}

// generateRequest is the inference API request format.
type generateRequest struct {
	Inputs  string          `json:"inputs"`
	Options generateOptions `json:"options"`
}

// generateOptions asks the API to wait for a cold model and skip its cache.
type generateOptions struct {
	WaitForModel bool `json:"wait_for_model"`
	UseCache     bool `json:"use_cache"`
}

// generation is one element of the inference API response array.
type generation struct {
	GeneratedText string `json:"generated_text"`
}

// NewModelService creates a new Hugging Face model service.
func NewModelService(cfg Config) (*ModelService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("huggingface: API token is required")
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

	// The token is static; oauth2 only sets the Authorization header.
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIKey, TokenType: "Bearer"})
	client := oauth2.NewClient(context.Background(), src)
	client.Timeout = cfg.Timeout

	return &ModelService{
		client:  client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		limiter: throttle.New(cfg.RequestsPerSecond, 1),
	}, nil
}

// Generate sends one chunk to the model.
func (s *ModelService) Generate(ctx context.Context, input string) domain.Generation {
	if err := s.limiter.Wait(ctx); err != nil {
		return domain.TransportFailure(fmt.Errorf("huggingface: rate limit wait: %w", err))
	}

	jsonBody, err := json.Marshal(generateRequest{
		Inputs:  input,
		Options: generateOptions{WaitForModel: true, UseCache: false},
	})
	if err != nil {
		return domain.TransportFailure(fmt.Errorf("huggingface: marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.modelURL(), bytes.NewReader(jsonBody))
	if err != nil {
		return domain.TransportFailure(fmt.Errorf("huggingface: create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Wait-For-Model", "true")
	req.Header.Set("X-Use-Cache", "false")

	resp, err := s.client.Do(req)
	if err != nil {
		return domain.TransportFailure(fmt.Errorf("huggingface: send request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.TransportFailure(fmt.Errorf("huggingface: read response: %w", err))
	}

	s.limiter.Observe(resp)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.TransportFailure(fmt.Errorf("huggingface: %w", domain.NewHTTPStatusError(resp.StatusCode, body)))
	}

	return parseGeneration(body)
}

// parseGeneration accepts only [{"generated_text": "<non-empty>"}, ...].
func parseGeneration(body []byte) domain.Generation {
	var items []generation
	if err := json.Unmarshal(body, &items); err != nil {
		return domain.UnexpectedShape()
	}
	if len(items) == 0 || items[0].GeneratedText == "" {
		return domain.UnexpectedShape()
	}
	return domain.WellFormed(items[0].GeneratedText)
}

// ModelName returns the model repository id.
func (s *ModelService) ModelName() string {
	return s.model
}

// Ping checks the model status endpoint. This validates the token
// without running inference.
func (s *ModelService) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/status/"+s.escapedModel(), http.NoBody)
	if err != nil {
		return fmt.Errorf("huggingface: failed to create ping request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("huggingface: ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, domain.MaxStatusBody))
		return fmt.Errorf("huggingface: %w", domain.NewHTTPStatusError(resp.StatusCode, body))
	}
	return nil
}

// Close releases idle connections.
func (s *ModelService) Close() error {
	s.client.CloseIdleConnections()
	return nil
}

func (s *ModelService) modelURL() string {
	return s.baseURL + "/models/" + s.escapedModel()
}

// escapedModel escapes each path segment of "owner/name".
func (s *ModelService) escapedModel() string {
	parts := strings.Split(s.model, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
