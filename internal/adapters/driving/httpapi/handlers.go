package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/custodia-labs/diacritice/internal/core/domain"
	"github.com/custodia-labs/diacritice/internal/logger"
)

// restoreRequest is the request body. Text is a pointer so that a missing
// field can be told apart from an empty one.
type restoreRequest struct {
	Text *string `json:"text"`
}

// restoreResponse is the success body.
type restoreResponse struct {
	Text   string `json:"text"`
	Engine string `json:"engine"`
}

// errorResponse is the failure body.
type errorResponse struct {
	Error string `json:"error"`
}

// healthResponse reports whether requests will try the external model.
type healthResponse struct {
	Status   string `json:"status"`
	External bool   `json:"external"`
	Model    string `json:"model"`
}

func (s *Server) handleRestore(c *gin.Context) {
	var req restoreRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == nil || *req.Text == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: msgProvideText})
		return
	}

	result, err := s.restore.Restore(c.Request.Context(), *req.Text)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, restoreResponse{
			Text:   result.Text,
			Engine: result.Engine.WireName(),
		})
	case errors.Is(err, domain.ErrInputTooLong):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case domain.IsInputError(err):
		c.JSON(http.StatusBadRequest, errorResponse{Error: msgProvideText})
	default:
		logger.L().Error("restore failed",
			zap.String("request_id", c.GetString(ctxKeyRequestID)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: msgServerError})
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:   "ok",
		External: s.restore.ExternalEnabled(),
		Model:    s.restore.ModelName(),
	})
}
