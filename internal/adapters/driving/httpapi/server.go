package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/custodia-labs/diacritice/internal/core/ports/driving"
	"github.com/custodia-labs/diacritice/internal/logger"
)

// Route paths.
const (
	PathRestore       = "/api/diacritice"
	PathNetlifyLegacy = "/.netlify/functions/diacritice"
	PathHealth        = "/healthz"
)

// shutdownTimeout bounds the graceful shutdown of in-flight requests.
const shutdownTimeout = 10 * time.Second

// Server is the HTTP server for diacritic restoration.
type Server struct {
	restore driving.RestoreService
	engine  *gin.Engine
}

// NewServer creates a new HTTP server backed by restore.
func NewServer(restore driving.RestoreService) (*Server, error) {
	if restore == nil {
		return nil, ErrMissingRestoreService
	}

	if !logger.IsVerbose() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.Use(requestID(), accessLog(), recovery())

	s := &Server{restore: restore, engine: engine}
	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	for _, path := range []string{PathRestore, PathNetlifyLegacy} {
		s.engine.POST(path, s.handleRestore)
	}
	s.engine.GET(PathHealth, s.handleHealth)

	s.engine.NoMethod(func(c *gin.Context) {
		c.String(http.StatusMethodNotAllowed, msgMethodNotAllowed)
	})
	s.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves HTTP on addr.
// It blocks until the context is cancelled or an error occurs. On
// cancellation in-flight requests get shutdownTimeout to finish.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Listening on %s", addr)
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
