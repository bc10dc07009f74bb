package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/aura-backend/internal/logger"
	"github.com/yungbote/aura-backend/internal/services"
)

type StatsHandler struct {
	log          *logger.Logger
	statsService services.StatsService
}

func NewStatsHandler(log *logger.Logger, statsService services.StatsService) *StatsHandler {
	return &StatsHandler{
		log:          log.With("handler", "StatsHandler"),
		statsService: statsService,
	}
}

// GET /api/stats
func (h *StatsHandler) Overview(c *gin.Context) {
	overview, err := h.statsService.Overview(c.Request.Context())
	if err != nil {
		h.log.Error("Stats overview failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "stats_failed", err)
		return
	}
	RespondOK(c, gin.H{
		"streaks":           overview.Streaks,
		"mood_distribution": overview.MoodDistribution,
		"stress_trends":     overview.StressTrends,
	})
}

// POST /api/exercise/complete
func (h *StatsHandler) CompleteExercise(c *gin.Context) {
	streaks, err := h.statsService.RecordExercise(c.Request.Context())
	if err != nil {
		h.log.Error("Exercise record failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "exercise_failed", err)
		return
	}
	RespondOK(c, gin.H{"streaks": streaks})
}
