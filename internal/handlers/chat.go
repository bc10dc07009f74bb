package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/aura-backend/internal/logger"
	"github.com/yungbote/aura-backend/internal/services"
)

type ChatHandler struct {
	log         *logger.Logger
	chatService services.ChatService
}

func NewChatHandler(log *logger.Logger, chatService services.ChatService) *ChatHandler {
	return &ChatHandler{
		log:         log.With("handler", "ChatHandler"),
		chatService: chatService,
	}
}

type chatRequest struct {
	Text string `json:"text" binding:"required"`
}

// POST /api/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("text is required"))
		return
	}

	result, err := h.chatService.Handle(c.Request.Context(), req.Text)
	if err != nil {
		h.log.Error("Chat pipeline failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "chat_failed", err)
		return
	}

	if result.Emergency {
		RespondOK(c, gin.H{
			"emergency": true,
			"message":   result.Message,
			"resources": result.Resources,
		})
		return
	}

	RespondOK(c, gin.H{
		"response":     result.Response,
		"sentiment":    result.Sentiment,
		"emotion":      result.Emotion,
		"emoji":        result.Glyph,
		"confidence":   result.ConfidencePct,
		"stress_level": result.StressLevel,
	})
}

// GET /api/chat/history
func (h *ChatHandler) History(c *gin.Context) {
	messages, err := h.chatService.History(c.Request.Context(), 50)
	if err != nil {
		h.log.Error("Failed to load chat history", "error", err)
		RespondError(c, http.StatusInternalServerError, "history_failed", err)
		return
	}
	RespondOK(c, messages)
}
