package repository

import (
	"context"

	"github.com/Adi-Yadav1/Aarohan-Backend/internal/database"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/models"
	"gorm.io/gorm"
)

// RegisterAthlete creates the user, the athlete profile and its empty stats
// row in one transaction, so no athlete ever exists without stats.
func RegisterAthlete(ctx context.Context, user *models.User, athlete *models.Athlete) error {
	return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		athlete.UserID = user.ID
		if err := tx.Create(athlete).Error; err != nil {
			return err
		}
		stats := &models.AthleteStats{AthleteID: athlete.ID}
		return tx.Create(stats).Error
	})
}

func GetAthleteByID(ctx context.Context, id string) (*models.Athlete, error) {
	var athlete models.Athlete
	result := database.DB.WithContext(ctx).First(&athlete, "id = ?", id)
	return &athlete, result.Error
}

func GetAthleteByUserID(ctx context.Context, userID string) (*models.Athlete, error) {
	var athlete models.Athlete
	result := database.DB.WithContext(ctx).First(&athlete, "user_id = ?", userID)
	return &athlete, result.Error
}

func ListActiveAthletes(ctx context.Context) ([]models.Athlete, error) {
	var athletes []models.Athlete
	err := database.DB.WithContext(ctx).Where("is_active = ?", true).Find(&athletes).Error
	return athletes, err
}

func CountAthletes(ctx context.Context) (int64, error) {
	var count int64
	err := database.DB.WithContext(ctx).Model(&models.Athlete{}).Count(&count).Error
	return count, err
}
