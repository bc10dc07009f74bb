package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/aura-backend/internal/logger"
	"github.com/yungbote/aura-backend/internal/repos"
	"github.com/yungbote/aura-backend/internal/services"
)

type JournalHandler struct {
	log            *logger.Logger
	journalService services.JournalService
}

func NewJournalHandler(log *logger.Logger, journalService services.JournalService) *JournalHandler {
	return &JournalHandler{
		log:            log.With("handler", "JournalHandler"),
		journalService: journalService,
	}
}

type journalRequest struct {
	Content string `json:"content" binding:"required"`
}

// POST /api/journal
func (h *JournalHandler) Create(c *gin.Context) {
	var req journalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("content is required"))
		return
	}

	analysis, err := h.journalService.Create(c.Request.Context(), req.Content)
	if err != nil {
		h.log.Error("Journal create failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "journal_failed", err)
		return
	}

	RespondOK(c, gin.H{
		"message": "Journal entry saved",
		"analysis": gin.H{
			"mood":    analysis.Mood,
			"emotion": analysis.Emotion,
			"emoji":   analysis.Glyph,
			"stress":  analysis.Stress,
		},
	})
}

// GET /api/journals
func (h *JournalHandler) List(c *gin.Context) {
	entries, err := h.journalService.List(c.Request.Context())
	if err != nil {
		h.log.Error("Journal list failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "journal_list_failed", err)
		return
	}
	RespondOK(c, entries)
}

// DELETE /api/journal/:id
func (h *JournalHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("invalid journal id"))
		return
	}

	if err := h.journalService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "not_found", fmt.Errorf("journal not found"))
			return
		}
		h.log.Error("Journal delete failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "journal_delete_failed", err)
		return
	}
	RespondOK(c, gin.H{"message": "Journal deleted"})
}
