package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/diacritice/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for diacritice resources.
	uriScheme = "diacritice://"

	// uriStatus is the engine status resource.
	uriStatus = uriScheme + "status"
)

// statusInfo describes how the next restoration will run.
type statusInfo struct {
	External       bool   `json:"external"`
	Model          string `json:"model"`
	MaxChunkSize   int    `json:"max_chunk_size"`
	MaxInputLength int    `json:"max_input_length"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriStatus,
		Name:        "status",
		Description: "Restoration engine status and limits",
		MIMEType:    "application/json",
	}, s.handleStatusResource)
}

// handleStatusResource reports the engine that will serve the next request.
func (s *Server) handleStatusResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	info := statusInfo{
		External:       s.ports.Restore.ExternalEnabled(),
		Model:          s.ports.Restore.ModelName(),
		MaxChunkSize:   domain.DefaultMaxChunkSize,
		MaxInputLength: domain.DefaultMaxInputLength,
	}

	if s.ports.Settings != nil {
		settings, err := s.ports.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("loading settings: %w", err)
		}
		if settings.Restore.MaxChunkSize > 0 {
			info.MaxChunkSize = settings.Restore.MaxChunkSize
		}
		if settings.Restore.MaxInputLength > 0 {
			info.MaxInputLength = settings.Restore.MaxInputLength
		}
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling status: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
