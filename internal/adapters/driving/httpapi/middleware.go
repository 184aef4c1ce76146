package httpapi

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/custodia-labs/diacritice/internal/logger"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-ID"

// ctxKeyRequestID is the gin context key holding the request ID.
const ctxKeyRequestID = "request_id"

// maxRequestIDLen bounds client-supplied request IDs.
const maxRequestIDLen = 64

// requestID tags every request with an ID, reusing a short client ID when given.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		c.Set(ctxKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// accessLog writes one structured line per request through the package logger.
// Server errors are logged at error level so they show without --verbose.
func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("request_id", c.GetString(ctxKeyRequestID)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.L().Error("request", fields...)
			return
		}
		logger.L().Info("request", fields...)
	}
}

// recovery turns a handler panic into a logged 500.
func recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, err any) {
		logger.L().Error("panic recovered",
			zap.String("request_id", c.GetString(ctxKeyRequestID)),
			zap.Any("panic", err),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: msgServerError})
	})
}
