package handlers

import (
	"net/http"

	"github.com/Adi-Yadav1/Aarohan-Backend/internal/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BadgeHandler struct {
	log *zap.Logger
}

func NewBadgeHandler(log *zap.Logger) *BadgeHandler {
	return &BadgeHandler{log: log}
}

// ListBadges returns the active badge catalogue so clients can show what is
// earnable. Public.
func (h *BadgeHandler) ListBadges(c *gin.Context) {
	badges, err := repository.ListActiveBadges(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to list badges", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to load badges")
		return
	}
	respondOK(c, http.StatusOK, "Badges loaded", gin.H{"badges": badges, "total": len(badges)})
}
