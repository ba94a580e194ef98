package handlers

import (
	"net/http"

	"github.com/Adi-Yadav1/Aarohan-Backend/internal/repository"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StatsHandler struct {
	log   *zap.Logger
	stats *services.StatsService
}

func NewStatsHandler(log *zap.Logger, stats *services.StatsService) *StatsHandler {
	return &StatsHandler{log: log, stats: stats}
}

// GetMyStats recomputes and returns the authenticated athlete's statistics
// snapshot: counts, personal bests, points, badges and recent submissions.
func (h *StatsHandler) GetMyStats(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	athlete, err := repository.GetAthleteByUserID(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, http.StatusForbidden, "Only athletes have statistics")
		return
	}

	stats, err := h.stats.ComputeStats(c.Request.Context(), athlete.ID)
	if err != nil {
		h.log.Error("Failed to compute stats", zap.Error(err), zap.String("athleteID", athlete.ID))
		respondError(c, http.StatusInternalServerError, "Failed to load statistics")
		return
	}

	respondOK(c, http.StatusOK, "Statistics loaded", stats)
}
