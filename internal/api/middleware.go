package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ericogr/hexcrusade/internal/constants"
	"github.com/ericogr/hexcrusade/internal/logging"
)

// RequestID reuses the caller's X-Request-ID or mints one, and echoes it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(constants.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(constants.ContextKeyRequestID, id)
		c.Header(constants.HeaderRequestID, id)
		c.Next()
	}
}

// RequestLogger logs one line per request after the handler ran.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		fields := logging.Fields{
			constants.LogFieldRequestID: c.GetString(constants.ContextKeyRequestID),
			constants.LogFieldMethod:    c.Request.Method,
			constants.LogFieldPath:      c.FullPath(),
			constants.LogFieldStatus:    c.Writer.Status(),
			constants.LogFieldLatency:   time.Since(start).String(),
		}
		if gameID := c.Param(constants.ParamGameID); gameID != "" {
			fields[constants.LogFieldGameID] = gameID
		}
		if len(c.Errors) > 0 {
			logging.Error("request failed", c.Errors.Last(), fields)
			return
		}
		logging.Info("request", fields)
	}
}
