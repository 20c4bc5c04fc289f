package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"passwordStrengthBackend/internal/core/domain"
	"passwordStrengthBackend/internal/pkg/metrics"
	"passwordStrengthBackend/internal/port"
)

type AnalyzeRequest struct {
	Password *string `json:"password"`
}

type WebHandler struct {
	analyzer  port.AnalyzerService
	collector *metrics.Collector
}

func NewWebHandler(svc port.AnalyzerService, collector *metrics.Collector) *WebHandler {
	return &WebHandler{
		analyzer:  svc,
		collector: collector,
	}
}

func (h *WebHandler) AnalyzePassword(c *gin.Context) {
	h.collector.RecordRequest()

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Password == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingPassword.Error()})
		return
	}

	result, err := h.analyzer.Analyze(c.Request.Context(), *req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrPasswordTooLong) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *WebHandler) GetDemo(c *gin.Context) {
	h.collector.RecordRequest()

	demos, err := h.analyzer.Demo(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, demos)
}

func (h *WebHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "password-strength-analyzer",
		"system":  h.collector.Snapshot(),
	})
}
