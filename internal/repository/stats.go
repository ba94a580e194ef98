package repository

import (
	"context"

	"github.com/Adi-Yadav1/Aarohan-Backend/internal/database"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/models"
)

func GetStatsByAthleteID(ctx context.Context, athleteID string) (*models.AthleteStats, error) {
	var stats models.AthleteStats
	result := database.DB.WithContext(ctx).First(&stats, "athlete_id = ?", athleteID)
	return &stats, result.Error
}

// SaveStats writes a recomputed snapshot over the athlete's cache row.
func SaveStats(ctx context.Context, stats *models.AthleteStats) error {
	return database.DB.WithContext(ctx).Model(&models.AthleteStats{}).
		Where("athlete_id = ?", stats.AthleteID).
		Updates(map[string]interface{}{
			"total_performances":    stats.TotalPerformances,
			"verified_performances": stats.VerifiedPerformances,
			"pending_performances":  stats.PendingPerformances,
			"flagged_performances":  stats.FlaggedPerformances,
			"total_badges":          stats.TotalBadges,
			"total_points":          stats.TotalPoints,
			"best_performances":     stats.BestPerformances,
		}).Error
}

// UpdateCurrentRank is written only by the rank reconciliation pass.
func UpdateCurrentRank(ctx context.Context, athleteID string, rank int) error {
	return database.DB.WithContext(ctx).Model(&models.AthleteStats{}).
		Where("athlete_id = ?", athleteID).
		Update("current_rank", rank).Error
}
