package repository

import (
	"context"
	"errors"

	"github.com/Adi-Yadav1/Aarohan-Backend/internal/database"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/models"
	"gorm.io/gorm"
)

func CreateBadge(ctx context.Context, badge *models.Badge) error {
	return database.DB.WithContext(ctx).Create(badge).Error
}

func GetBadgeByName(ctx context.Context, name string) (*models.Badge, error) {
	var badge models.Badge
	result := database.DB.WithContext(ctx).First(&badge, "name = ?", name)
	return &badge, result.Error
}

func ListActiveBadges(ctx context.Context) ([]models.Badge, error) {
	var badges []models.Badge
	err := database.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Order("badge_type, name").
		Find(&badges).Error
	return badges, err
}

func CountBadges(ctx context.Context) (int64, error) {
	var count int64
	err := database.DB.WithContext(ctx).Model(&models.Badge{}).Count(&count).Error
	return count, err
}

// AwardBadge records an earned badge. The (athlete, badge) pair is unique;
// awarding an already-held badge is a no-op and reports false.
func AwardBadge(ctx context.Context, athleteID, badgeID string, performanceID *string) (bool, error) {
	var existing models.AthleteBadge
	err := database.DB.WithContext(ctx).
		Where("athlete_id = ? AND badge_id = ?", athleteID, badgeID).
		First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	earned := models.AthleteBadge{
		AthleteID:     athleteID,
		BadgeID:       badgeID,
		PerformanceID: performanceID,
	}
	if err := database.DB.WithContext(ctx).Create(&earned).Error; err != nil {
		return false, err
	}
	return true, nil
}

// ListAthleteBadges returns an athlete's earned badges with badge details.
func ListAthleteBadges(ctx context.Context, athleteID string) ([]models.AthleteBadge, error) {
	var earned []models.AthleteBadge
	err := database.DB.WithContext(ctx).
		Preload("Badge").
		Where("athlete_id = ?", athleteID).
		Order("earned_at DESC").
		Find(&earned).Error
	return earned, err
}
