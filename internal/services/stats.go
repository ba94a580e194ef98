package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Adi-Yadav1/Aarohan-Backend/internal/models"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// recentPerformanceCount is how many latest submissions the stats snapshot
// carries, any status.
const recentPerformanceCount = 5

// StatsService aggregates per-athlete statistics on demand and writes the
// snapshot through to the AthleteStats cache row. The cache may go stale
// between writes; recomputation here is the source of truth.
type StatsService struct {
	log *zap.Logger
}

func NewStatsService(log *zap.Logger) *StatsService {
	return &StatsService{log: log}
}

// ComputeStats builds the full statistics snapshot for an athlete. An
// athlete with no performances gets zero-valued stats, not an error.
// CurrentRank is not computed here; the rank reconciliation pass owns it
// and this reads whatever that pass last persisted.
func (s *StatsService) ComputeStats(ctx context.Context, athleteID string) (*models.AthleteStatsResponse, error) {
	athlete, err := repository.GetAthleteByID(ctx, athleteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	perfs, err := repository.ListByAthlete(ctx, athlete.ID)
	if err != nil {
		return nil, err
	}

	resp := &models.AthleteStatsResponse{
		TotalPerformances: len(perfs),
		PersonalBests:     []models.PersonalBest{},
	}

	// One pass over the performances, oldest first: status counts plus
	// direction-aware personal bests. The ascending creation order makes
	// the earliest performance win value ties.
	bests := make(map[string]models.PersonalBest)
	for _, p := range perfs {
		switch p.Status {
		case models.StatusVerified:
			resp.VerifiedPerformances++
		case models.StatusPending:
			resp.PendingPerformances++
		case models.StatusFlagged:
			resp.FlaggedPerformances++
		}

		if p.Status != models.StatusVerified {
			continue
		}
		current, seen := bests[p.Test.Name]
		if !seen || betterThan(p.Value, current.BestValue, p.Test.Direction) {
			bests[p.Test.Name] = models.PersonalBest{
				TestName:   p.Test.Name,
				BestValue:  p.Value,
				Unit:       p.Test.Unit,
				AchievedAt: p.CreatedAt,
			}
		}
	}
	// Keep the catalogue's first-encountered order from the scan.
	seenNames := make(map[string]bool)
	for _, p := range perfs {
		if p.Status != models.StatusVerified || seenNames[p.Test.Name] {
			continue
		}
		seenNames[p.Test.Name] = true
		resp.PersonalBests = append(resp.PersonalBests, bests[p.Test.Name])
	}

	earned, err := repository.ListAthleteBadges(ctx, athlete.ID)
	if err != nil {
		return nil, err
	}
	resp.TotalBadges = len(earned)
	for _, ab := range earned {
		resp.TotalPoints += ab.Badge.Points
	}

	recent, err := repository.ListRecentByAthlete(ctx, athlete.ID, recentPerformanceCount)
	if err != nil {
		return nil, err
	}
	resp.RecentPerformances = make([]models.RecentPerformance, 0, len(recent))
	for _, p := range recent {
		resp.RecentPerformances = append(resp.RecentPerformances, models.RecentPerformance{
			TestName:  p.Test.Name,
			Value:     p.Value,
			Status:    p.Status,
			CreatedAt: p.CreatedAt,
		})
	}

	if stats, err := repository.GetStatsByAthleteID(ctx, athlete.ID); err == nil {
		resp.CurrentRank = stats.CurrentRank
	}

	if err := s.writeThrough(ctx, athlete.ID, resp); err != nil {
		// The snapshot cache is best effort; the response stands on its own.
		s.log.Warn("Failed to persist stats snapshot", zap.Error(err), zap.String("athleteID", athlete.ID))
	}

	return resp, nil
}

// writeThrough persists the snapshot into the AthleteStats row.
func (s *StatsService) writeThrough(ctx context.Context, athleteID string, resp *models.AthleteStatsResponse) error {
	bestJSON, err := json.Marshal(resp.PersonalBests)
	if err != nil {
		return err
	}
	return repository.SaveStats(ctx, &models.AthleteStats{
		AthleteID:            athleteID,
		TotalPerformances:    resp.TotalPerformances,
		VerifiedPerformances: resp.VerifiedPerformances,
		PendingPerformances:  resp.PendingPerformances,
		FlaggedPerformances:  resp.FlaggedPerformances,
		TotalBadges:          resp.TotalBadges,
		TotalPoints:          resp.TotalPoints,
		BestPerformances:     bestJSON,
	})
}

// betterThan reports whether a beats b under the test's direction.
func betterThan(a, b float64, direction models.Direction) bool {
	if direction == models.HigherIsBetter {
		return a > b
	}
	return a < b
}
