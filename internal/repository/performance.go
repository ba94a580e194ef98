package repository

import (
	"context"
	"time"

	"github.com/Adi-Yadav1/Aarohan-Backend/internal/database"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/models"
)

func CreatePerformance(ctx context.Context, perf *models.Performance) error {
	return database.DB.WithContext(ctx).Create(perf).Error
}

func GetPerformanceByID(ctx context.Context, id string) (*models.Performance, error) {
	var perf models.Performance
	result := database.DB.WithContext(ctx).
		Preload("Test").
		Preload("Athlete").
		First(&perf, "id = ?", id)
	return &perf, result.Error
}

// ListVerifiedByTest returns all verified performances for a test, best
// first under the test's direction. The secondary created_at order keeps
// tie order stable across reads; callers must not read meaning into it.
func ListVerifiedByTest(ctx context.Context, testID string, direction models.Direction) ([]models.Performance, error) {
	order := "value ASC, created_at ASC"
	if direction == models.HigherIsBetter {
		order = "value DESC, created_at ASC"
	}

	var perfs []models.Performance
	err := database.DB.WithContext(ctx).
		Preload("Athlete").
		Where("test_id = ? AND status = ?", testID, models.StatusVerified).
		Order(order).
		Find(&perfs).Error
	return perfs, err
}

func CountVerifiedByTest(ctx context.Context, testID string) (int64, error) {
	var count int64
	err := database.DB.WithContext(ctx).Model(&models.Performance{}).
		Where("test_id = ? AND status = ?", testID, models.StatusVerified).
		Count(&count).Error
	return count, err
}

// ListByAthlete returns all of an athlete's performances, oldest first,
// with tests preloaded for name/unit/direction lookups.
func ListByAthlete(ctx context.Context, athleteID string) ([]models.Performance, error) {
	var perfs []models.Performance
	err := database.DB.WithContext(ctx).
		Preload("Test").
		Where("athlete_id = ?", athleteID).
		Order("created_at ASC").
		Find(&perfs).Error
	return perfs, err
}

func ListRecentByAthlete(ctx context.Context, athleteID string, limit int) ([]models.Performance, error) {
	var perfs []models.Performance
	err := database.DB.WithContext(ctx).
		Preload("Test").
		Where("athlete_id = ?", athleteID).
		Order("created_at DESC").
		Limit(limit).
		Find(&perfs).Error
	return perfs, err
}

func CountByAthleteAndStatus(ctx context.Context, athleteID string, status models.PerformanceStatus) (int64, error) {
	var count int64
	err := database.DB.WithContext(ctx).Model(&models.Performance{}).
		Where("athlete_id = ? AND status = ?", athleteID, status).
		Count(&count).Error
	return count, err
}

// VerifyPerformance sets the status to VERIFIED with the verifier's
// metadata. Re-verifying a flagged performance is allowed; the flag
// metadata is left in place as history.
func VerifyPerformance(ctx context.Context, id, verifierID, notes string) error {
	now := time.Now()
	return database.DB.WithContext(ctx).Model(&models.Performance{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":             models.StatusVerified,
			"verified_by_id":     verifierID,
			"verified_at":        now,
			"verification_notes": notes,
		}).Error
}

// FlagPerformance sets the status to FLAGGED with the flagger's metadata.
func FlagPerformance(ctx context.Context, id, flaggerID, reason, notes string) error {
	now := time.Now()
	return database.DB.WithContext(ctx).Model(&models.Performance{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFlagged,
			"flagged_by_id": flaggerID,
			"flagged_at":    now,
			"flag_reason":   reason,
			"flag_notes":    notes,
		}).Error
}

func CountByStatus(ctx context.Context, status models.PerformanceStatus) (int64, error) {
	var count int64
	err := database.DB.WithContext(ctx).Model(&models.Performance{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func CountPerformances(ctx context.Context) (int64, error) {
	var count int64
	err := database.DB.WithContext(ctx).Model(&models.Performance{}).Count(&count).Error
	return count, err
}
