package services

import (
	"context"
	"errors"

	"github.com/Adi-Yadav1/Aarohan-Backend/internal/models"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// leaderboardSize caps the ranking at the top 20 entries.
const leaderboardSize = 20

// LeaderboardService ranks verified performances per test. It is a pure
// read over the performance table: concurrent invocations need no
// coordination and nothing is written back.
type LeaderboardService struct {
	log *zap.Logger
}

func NewLeaderboardService(log *zap.Logger) *LeaderboardService {
	return &LeaderboardService{log: log}
}

// GetLeaderboard returns the top-20 verified performances for a test,
// ranked 1..N best-first under the test's direction. Ties keep store order;
// rank stays strictly increasing. An empty ranking is not an error.
//
// Total is the truncated list length (historical API behavior);
// TotalEligible carries the full verified count.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, testID string) (*models.LeaderboardResponse, error) {
	test, err := repository.GetTestByID(ctx, testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	eligibleCount, err := repository.CountVerifiedByTest(ctx, test.ID)
	if err != nil {
		return nil, err
	}
	eligible := int(eligibleCount)

	perfs, err := repository.ListVerifiedByTest(ctx, test.ID, test.Direction)
	if err != nil {
		return nil, err
	}

	if len(perfs) > leaderboardSize {
		perfs = perfs[:leaderboardSize]
	}

	entries := make([]models.LeaderboardEntry, 0, len(perfs))
	for i, p := range perfs {
		entries = append(entries, models.LeaderboardEntry{
			Rank: i + 1,
			Athlete: models.AthleteSummary{
				FirstName: p.Athlete.FirstName,
				LastName:  p.Athlete.LastName,
				State:     p.Athlete.State,
				District:  p.Athlete.District,
			},
			Value:     p.Value,
			CreatedAt: p.CreatedAt,
		})
	}

	s.log.Debug("Leaderboard computed",
		zap.String("testID", test.ID),
		zap.Int("entries", len(entries)),
		zap.Int("eligible", eligible),
	)

	return &models.LeaderboardResponse{
		Entries:       entries,
		Total:         len(entries),
		TotalEligible: eligible,
		TestInfo: models.TestInfo{
			Name:      test.Name,
			Unit:      test.Unit,
			Direction: test.Direction,
		},
	}, nil
}
