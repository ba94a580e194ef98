package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Adi-Yadav1/Aarohan-Backend/internal/models"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestComputeStatsUnknownAthlete(t *testing.T) {
	setupTestDB(t)
	svc := NewStatsService(zap.NewNop())

	_, err := svc.ComputeStats(context.Background(), "cm4missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestComputeStatsFreshAthlete(t *testing.T) {
	setupTestDB(t)
	svc := NewStatsService(zap.NewNop())
	athlete := createAthlete(t, "Deepa", "Nair")

	stats, err := svc.ComputeStats(context.Background(), athlete.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalPerformances)
	assert.Equal(t, 0, stats.TotalBadges)
	assert.Equal(t, 0, stats.TotalPoints)
	assert.Empty(t, stats.PersonalBests)
	assert.Empty(t, stats.RecentPerformances)
}

func TestComputeStatsCountsByStatus(t *testing.T) {
	setupTestDB(t)
	svc := NewStatsService(zap.NewNop())
	athlete := createAthlete(t, "Deepa", "Nair")
	jump := createTest(t, "Long Jump", "meters", models.HigherIsBetter)

	now := time.Now()
	addPerformance(t, athlete.ID, jump.ID, 5.0, models.StatusVerified, now)
	addPerformance(t, athlete.ID, jump.ID, 5.3, models.StatusPending, now.Add(time.Minute))
	addPerformance(t, athlete.ID, jump.ID, 5.6, models.StatusFlagged, now.Add(2*time.Minute))

	stats, err := svc.ComputeStats(context.Background(), athlete.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalPerformances)
	assert.Equal(t, 1, stats.VerifiedPerformances)
	assert.Equal(t, 1, stats.PendingPerformances)
	assert.Equal(t, 1, stats.FlaggedPerformances)

	// Only the verified 5.0 counts as a best; the better unverified
	// values do not.
	require.Len(t, stats.PersonalBests, 1)
	assert.Equal(t, 5.0, stats.PersonalBests[0].BestValue)
}

func TestComputeStatsPersonalBestsPerDirection(t *testing.T) {
	setupTestDB(t)
	svc := NewStatsService(zap.NewNop())
	athlete := createAthlete(t, "Deepa", "Nair")
	sprint := createTest(t, "100m Sprint", "seconds", models.LowerIsBetter)
	jump := createTest(t, "Long Jump", "meters", models.HigherIsBetter)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	addPerformance(t, athlete.ID, sprint.ID, 11.5, models.StatusVerified, base)
	addPerformance(t, athlete.ID, sprint.ID, 11.1, models.StatusVerified, base.Add(time.Hour))
	addPerformance(t, athlete.ID, jump.ID, 5.2, models.StatusVerified, base.Add(2*time.Hour))
	addPerformance(t, athlete.ID, jump.ID, 4.9, models.StatusVerified, base.Add(3*time.Hour))

	stats, err := svc.ComputeStats(context.Background(), athlete.ID)
	require.NoError(t, err)
	require.Len(t, stats.PersonalBests, 2)

	byName := make(map[string]models.PersonalBest)
	for _, pb := range stats.PersonalBests {
		byName[pb.TestName] = pb
	}
	assert.Equal(t, 11.1, byName["100m Sprint"].BestValue)
	assert.Equal(t, 5.2, byName["Long Jump"].BestValue)
}

func TestComputeStatsBestTieKeepsEarliest(t *testing.T) {
	setupTestDB(t)
	svc := NewStatsService(zap.NewNop())
	athlete := createAthlete(t, "Deepa", "Nair")
	sprint := createTest(t, "100m Sprint", "seconds", models.LowerIsBetter)

	first := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	addPerformance(t, athlete.ID, sprint.ID, 11.1, models.StatusVerified, first)
	addPerformance(t, athlete.ID, sprint.ID, 11.1, models.StatusVerified, first.Add(time.Hour))

	stats, err := svc.ComputeStats(context.Background(), athlete.ID)
	require.NoError(t, err)
	require.Len(t, stats.PersonalBests, 1)
	assert.True(t, stats.PersonalBests[0].AchievedAt.Equal(first))
}

func TestComputeStatsBadgePoints(t *testing.T) {
	setupTestDB(t)
	svc := NewStatsService(zap.NewNop())
	athlete := createAthlete(t, "Esha", "Verma")

	first := createBadge(t, "First Performance", 10, true)
	demon := createBadge(t, "Speed Demon", 50, true)
	_, err := repository.AwardBadge(context.Background(), athlete.ID, first.ID, nil)
	require.NoError(t, err)
	_, err = repository.AwardBadge(context.Background(), athlete.ID, demon.ID, nil)
	require.NoError(t, err)

	stats, err := svc.ComputeStats(context.Background(), athlete.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalBadges)
	assert.Equal(t, 60, stats.TotalPoints)
}

func TestComputeStatsRecentPerformances(t *testing.T) {
	setupTestDB(t)
	svc := NewStatsService(zap.NewNop())
	athlete := createAthlete(t, "Deepa", "Nair")
	sprint := createTest(t, "100m Sprint", "seconds", models.LowerIsBetter)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		addPerformance(t, athlete.ID, sprint.ID, 12.0-float64(i)*0.1, models.StatusPending, base.Add(time.Duration(i)*time.Hour))
	}

	stats, err := svc.ComputeStats(context.Background(), athlete.ID)
	require.NoError(t, err)

	require.Len(t, stats.RecentPerformances, 5)
	// Newest first.
	for i := 1; i < len(stats.RecentPerformances); i++ {
		assert.True(t, !stats.RecentPerformances[i-1].CreatedAt.Before(stats.RecentPerformances[i].CreatedAt))
	}
}

func TestComputeStatsWritesThroughToCache(t *testing.T) {
	setupTestDB(t)
	svc := NewStatsService(zap.NewNop())
	athlete := createAthlete(t, "Deepa", "Nair")
	sprint := createTest(t, "100m Sprint", "seconds", models.LowerIsBetter)
	addPerformance(t, athlete.ID, sprint.ID, 11.5, models.StatusVerified, time.Now())

	_, err := svc.ComputeStats(context.Background(), athlete.ID)
	require.NoError(t, err)

	row, err := repository.GetStatsByAthleteID(context.Background(), athlete.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, row.TotalPerformances)
	assert.Equal(t, 1, row.VerifiedPerformances)

	var bests []models.PersonalBest
	require.NoError(t, json.Unmarshal(row.BestPerformances, &bests))
	require.Len(t, bests, 1)
	assert.Equal(t, 11.5, bests[0].BestValue)
}
