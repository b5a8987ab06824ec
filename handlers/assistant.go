package handlers

import (
	"net/http"

	"lashstudio/models"
	"lashstudio/services/assistant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler exposes the conversational endpoint.
type AssistantHandler struct {
	Service assistant.AssistantService
	Logger  *zap.Logger
}

func NewAssistantHandler(svc assistant.AssistantService, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{Service: svc, Logger: logger}
}

// Converse runs a single assistant turn against the replayed history.
func (h *AssistantHandler) Converse(c *gin.Context) {
	var req models.ConverseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.Converse(c.Request.Context(), req)
	if err != nil {
		// The service degrades to a fallback reply internally; an error here
		// means something unexpected slipped through.
		h.Logger.Error("Assistant converse failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal server error occurred."})
		return
	}

	c.JSON(http.StatusOK, resp)
}
