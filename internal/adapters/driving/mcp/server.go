package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/diacritice/internal/core/domain"
	"github.com/custodia-labs/diacritice/internal/logger"
)

// DefaultVersion is reported to clients unless WithVersion overrides it.
const DefaultVersion = "0.1.0"

// shutdownTimeout bounds how long open HTTP sessions get on cancellation.
const shutdownTimeout = 5 * time.Second

// instructions tells clients when to reach for the restore tool.
var instructions = fmt.Sprintf(
	"Call %s with Romanian text typed without diacritics (ă, â, î, ș, ț). "+
		"Input must be non-empty and at most %d characters; split longer documents. "+
		"The result names the engine used: %q when the language model answered, "+
		"%q when the rule-based fallback did. Read %s for the current engine.",
	ToolRestore, domain.DefaultMaxInputLength,
	domain.EngineExternal.WireName(), domain.EngineHeuristic.WireName(), uriStatus,
)

// Server exposes diacritic restoration over the Model Context Protocol.
type Server struct {
	ports   *Ports
	version string
	server  *mcp.Server
}

// Option configures the server.
type Option func(*Server)

// WithVersion sets the version reported in the initialize handshake.
func WithVersion(version string) Option {
	return func(s *Server) {
		if version != "" {
			s.version = version
		}
	}
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports, opts ...Option) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports:   ports,
		version: DefaultVersion,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.server = mcp.NewServer(
		&mcp.Implementation{Name: "diacritice", Version: s.version},
		&mcp.ServerOptions{Instructions: instructions},
	)

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Version returns the version reported to clients.
func (s *Server) Version() string {
	return s.version
}

// Run serves one client over stdio until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves the streamable HTTP transport on addr until ctx is done
// or the listener fails.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("MCP listening on %s", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := httpServer.Shutdown(shutdownCtx)
	<-errCh
	return err
}
