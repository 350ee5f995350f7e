package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tejaIG/sevak-ai-poc/internal/services"
	"github.com/tejaIG/sevak-ai-poc/internal/services/dto"
)

type AssistantHandler struct {
	*BaseHandler
	assistantService services.AssistantService
}

func NewAssistantHandler(base *BaseHandler, assistantService services.AssistantService) *AssistantHandler {
	return &AssistantHandler{
		BaseHandler:      base,
		assistantService: assistantService,
	}
}

func (h *AssistantHandler) RegisterRoutes(r *gin.RouterGroup) {
	assistant := r.Group("/assistant")
	{
		assistant.POST("/chat", h.Chat)
	}
}

// Chat godoc
// @Summary Ask the SevakAI assistant
// @Description Answers from the knowledge base; on provider failure returns the contact-channel reply, never an error
// @Tags assistant
// @Accept json
// @Produce json
// @Param message body dto.ChatRequest true "Message and prior turns"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} apperrors.ErrorResponse "validation failed"
// @Router /assistant/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp := h.assistantService.Chat(c.Request.Context(), &req)
	c.JSON(http.StatusOK, resp)
}
