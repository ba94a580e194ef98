package repository

import (
	"context"

	"github.com/Adi-Yadav1/Aarohan-Backend/internal/database"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/models"
)

func CreateNotification(ctx context.Context, n *models.Notification) error {
	return database.DB.WithContext(ctx).Create(n).Error
}

func ListNotificationsByAthlete(ctx context.Context, athleteID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := database.DB.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

// MarkNotificationRead flips the read flag; scoped to the athlete so one
// athlete cannot touch another's notifications.
func MarkNotificationRead(ctx context.Context, id, athleteID string) (int64, error) {
	result := database.DB.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND athlete_id = ?", id, athleteID).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}
