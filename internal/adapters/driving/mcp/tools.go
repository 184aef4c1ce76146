package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/diacritice/internal/core/domain"
)

// ToolRestore is the name of the restoration tool.
const ToolRestore = "restore_diacritics"

// RestoreInput is the input schema for the restore tool.
type RestoreInput struct {
	Text string `json:"text" jsonschema:"Romanian text written without diacritics"`
}

// RestoreOutput is the output schema for the restore tool.
type RestoreOutput struct {
	Text   string `json:"text"`
	Engine string `json:"engine"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolRestore,
		Description: "Restore Romanian diacritics (ă, â, î, ș, ț) in text written without them",
	}, s.handleRestore)
}

// handleRestore handles the restore tool invocation.
func (s *Server) handleRestore(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RestoreInput,
) (*mcp.CallToolResult, RestoreOutput, error) {
	result, err := s.ports.Restore.Restore(ctx, input.Text)
	if err != nil {
		if domain.IsInputError(err) {
			return nil, RestoreOutput{}, err
		}
		return nil, RestoreOutput{}, fmt.Errorf("restoration failed: %w", err)
	}

	return nil, RestoreOutput{
		Text:   result.Text,
		Engine: result.Engine.WireName(),
	}, nil
}
