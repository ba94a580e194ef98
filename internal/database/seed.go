package database

import (
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/models"
	"go.uber.org/zap"
)

// Seed ensures the reference badges and a starter test catalogue exist.
// Rows are matched by name, so re-running on an existing database is a no-op
// and never overwrites admin edits.
func Seed(log *zap.Logger) {
	badges := []models.Badge{
		{
			Name:         "First Performance",
			Description:  "Submit your first performance",
			BadgeType:    models.BadgeMilestone,
			Icon:         "🎯",
			Requirements: "Submit 1 performance",
			Points:       50,
		},
		{
			Name:         "Consistent Athlete",
			Description:  "Get 10 performances verified",
			BadgeType:    models.BadgeMilestone,
			Icon:         "🏆",
			Requirements: "10 verified performances",
			Points:       75,
		},
		{
			Name:         "Speed Demon",
			Description:  "Top a sprint leaderboard",
			BadgeType:    models.BadgeAchievement,
			Icon:         "⚡",
			Requirements: "Rank #1 in any sprint test",
			Points:       100,
		},
	}
	for i := range badges {
		err := DB.Where(models.Badge{Name: badges[i].Name}).
			Attrs(badges[i]).
			FirstOrCreate(&models.Badge{}).Error
		if err != nil {
			log.Fatal("Failed to seed badge", zap.Error(err), zap.String("name", badges[i].Name))
		}
	}

	tests := []models.Test{
		{Name: "100m Sprint", Description: "Sprint over 100 meters", Unit: "seconds", Category: models.CategorySprints, Direction: models.LowerIsBetter},
		{Name: "1500m Run", Description: "Middle distance run", Unit: "seconds", Category: models.CategoryMiddleDistance, Direction: models.LowerIsBetter},
		{Name: "Long Jump", Description: "Standing or running long jump", Unit: "meters", Category: models.CategoryJumps, Direction: models.HigherIsBetter},
		{Name: "Shot Put", Description: "Shot put throw", Unit: "meters", Category: models.CategoryThrows, Direction: models.HigherIsBetter},
	}
	for i := range tests {
		err := DB.Where(models.Test{Name: tests[i].Name}).
			Attrs(tests[i]).
			FirstOrCreate(&models.Test{}).Error
		if err != nil {
			log.Fatal("Failed to seed test", zap.Error(err), zap.String("name", tests[i].Name))
		}
	}

	log.Info("Reference data seeded successfully.")
}
