package handlers

import (
	"errors"
	"net/http"

	"github.com/Adi-Yadav1/Aarohan-Backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LeaderboardHandler struct {
	log         *zap.Logger
	leaderboard *services.LeaderboardService
}

func NewLeaderboardHandler(log *zap.Logger, leaderboard *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{log: log, leaderboard: leaderboard}
}

// GetLeaderboard returns the top-20 ranking for one test. Public.
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	testID := c.Param("testID")

	board, err := h.leaderboard.GetLeaderboard(c.Request.Context(), testID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Test not found")
			return
		}
		h.log.Error("Failed to compute leaderboard", zap.Error(err), zap.String("testID", testID))
		respondError(c, http.StatusInternalServerError, "Failed to load leaderboard")
		return
	}

	respondOK(c, http.StatusOK, "Leaderboard loaded", board)
}
