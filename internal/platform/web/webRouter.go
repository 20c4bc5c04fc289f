package web

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"passwordStrengthBackend/internal/utils/random"
)

const requestIDHeader = "X-Request-ID"

// NewRouter builds the engine with recovery, request-id, and structured
// request logging. Request bodies are never logged; they carry passwords.
func NewRouter(handler *WebHandler, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(logger))
	SetupRoutes(r, handler)
	return r
}

func SetupRoutes(r *gin.Engine, handler *WebHandler) {
	api := r.Group("/api")
	{
		api.POST("/analyze", handler.AnalyzePassword)
		api.GET("/demo", handler.GetDemo)
		api.GET("/health", handler.HealthCheck)
	}
}

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = random.RequestID()
		}
		c.Set("requestID", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("requestId", c.GetString("requestID")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
