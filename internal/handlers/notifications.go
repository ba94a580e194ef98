package handlers

import (
	"net/http"

	"github.com/Adi-Yadav1/Aarohan-Backend/internal/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	log *zap.Logger
}

func NewNotificationHandler(log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{log: log}
}

// ListNotifications returns the athlete's notifications, newest first.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	athlete, err := repository.GetAthleteByUserID(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, http.StatusForbidden, "Only athletes have notifications")
		return
	}

	notifications, err := repository.ListNotificationsByAthlete(c.Request.Context(), athlete.ID)
	if err != nil {
		h.log.Error("Failed to list notifications", zap.Error(err), zap.String("athleteID", athlete.ID))
		respondError(c, http.StatusInternalServerError, "Failed to load notifications")
		return
	}

	unread := 0
	for _, n := range notifications {
		if !n.IsRead {
			unread++
		}
	}
	respondOK(c, http.StatusOK, "Notifications loaded", gin.H{
		"notifications": notifications,
		"total":         len(notifications),
		"unread":        unread,
	})
}

// MarkNotificationRead flips the read flag on one of the athlete's own
// notifications.
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	athlete, err := repository.GetAthleteByUserID(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, http.StatusForbidden, "Only athletes have notifications")
		return
	}

	affected, err := repository.MarkNotificationRead(c.Request.Context(), c.Param("id"), athlete.ID)
	if err != nil {
		h.log.Error("Failed to mark notification read", zap.Error(err), zap.String("athleteID", athlete.ID))
		respondError(c, http.StatusInternalServerError, "Failed to update notification")
		return
	}
	if affected == 0 {
		respondError(c, http.StatusNotFound, "Notification not found")
		return
	}

	respondOK(c, http.StatusOK, "Notification marked as read", nil)
}
