package services

import (
	"context"
	"testing"
	"time"

	"github.com/Adi-Yadav1/Aarohan-Backend/internal/models"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func currentRank(t *testing.T, athleteID string) int {
	t.Helper()
	stats, err := repository.GetStatsByAthleteID(context.Background(), athleteID)
	require.NoError(t, err)
	return stats.CurrentRank
}

func TestRankReconciliationBestPositionAcrossTests(t *testing.T) {
	setupTestDB(t)
	svc := NewRankService(zap.NewNop())

	sprint := createTest(t, "100m Sprint", "seconds", models.LowerIsBetter)
	jump := createTest(t, "Long Jump", "meters", models.HigherIsBetter)

	a := createAthlete(t, "Gita", "Iyer")
	b := createAthlete(t, "Hari", "Menon")

	now := time.Now()
	// Sprint: b beats a. Jump: a beats b.
	addPerformance(t, a.ID, sprint.ID, 11.5, models.StatusVerified, now)
	addPerformance(t, b.ID, sprint.ID, 11.0, models.StatusVerified, now)
	addPerformance(t, a.ID, jump.ID, 6.0, models.StatusVerified, now)
	addPerformance(t, b.ID, jump.ID, 5.5, models.StatusVerified, now)

	svc.runReconciliation()

	// Both athletes hold a #1 somewhere.
	assert.Equal(t, 1, currentRank(t, a.ID))
	assert.Equal(t, 1, currentRank(t, b.ID))
}

func TestRankReconciliationOnlyBestResultCounts(t *testing.T) {
	setupTestDB(t)
	svc := NewRankService(zap.NewNop())
	sprint := createTest(t, "100m Sprint", "seconds", models.LowerIsBetter)

	a := createAthlete(t, "Gita", "Iyer")
	b := createAthlete(t, "Hari", "Menon")

	now := time.Now()
	// a holds positions 1 and would hold 2 with a second entry; b must
	// still be ranked 2nd, not 3rd.
	addPerformance(t, a.ID, sprint.ID, 10.8, models.StatusVerified, now)
	addPerformance(t, a.ID, sprint.ID, 10.9, models.StatusVerified, now)
	addPerformance(t, b.ID, sprint.ID, 11.0, models.StatusVerified, now)

	svc.runReconciliation()

	assert.Equal(t, 1, currentRank(t, a.ID))
	assert.Equal(t, 2, currentRank(t, b.ID))
}

func TestRankReconciliationUnrankedAthleteStaysZero(t *testing.T) {
	setupTestDB(t)
	svc := NewRankService(zap.NewNop())
	createTest(t, "100m Sprint", "seconds", models.LowerIsBetter)
	a := createAthlete(t, "Gita", "Iyer")

	svc.runReconciliation()

	assert.Zero(t, currentRank(t, a.ID))

	notifications, err := repository.ListNotificationsByAthlete(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestRankReconciliationNotifiesOnChange(t *testing.T) {
	setupTestDB(t)
	svc := NewRankService(zap.NewNop())
	sprint := createTest(t, "100m Sprint", "seconds", models.LowerIsBetter)
	a := createAthlete(t, "Gita", "Iyer")
	addPerformance(t, a.ID, sprint.ID, 11.0, models.StatusVerified, time.Now())

	svc.runReconciliation()
	// Second run with no changes must not re-notify.
	svc.runReconciliation()

	notifications, err := repository.ListNotificationsByAthlete(context.Background(), a.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotifyRankChanged, notifications[0].Type)
}
