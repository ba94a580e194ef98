package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Adi-Yadav1/Aarohan-Backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetLeaderboardUnknownTest(t *testing.T) {
	setupTestDB(t)
	svc := NewLeaderboardService(zap.NewNop())

	_, err := svc.GetLeaderboard(context.Background(), "cm4testmissing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetLeaderboardEmpty(t *testing.T) {
	setupTestDB(t)
	svc := NewLeaderboardService(zap.NewNop())
	test := createTest(t, "100m Sprint", "seconds", models.LowerIsBetter)

	board, err := svc.GetLeaderboard(context.Background(), test.ID)
	require.NoError(t, err)

	assert.Empty(t, board.Entries)
	assert.Equal(t, 0, board.Total)
	assert.Equal(t, 0, board.TotalEligible)
	assert.Equal(t, "100m Sprint", board.TestInfo.Name)
	assert.Equal(t, models.LowerIsBetter, board.TestInfo.Direction)
}

func TestGetLeaderboardOrderingLowerIsBetter(t *testing.T) {
	setupTestDB(t)
	svc := NewLeaderboardService(zap.NewNop())
	test := createTest(t, "100m Sprint", "seconds", models.LowerIsBetter)

	a := createAthlete(t, "Arjun", "Sharma")
	b := createAthlete(t, "Bhavna", "Patel")
	c := createAthlete(t, "Chirag", "Rao")

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	addPerformance(t, a.ID, test.ID, 11.2, models.StatusVerified, base)
	addPerformance(t, b.ID, test.ID, 10.9, models.StatusVerified, base.Add(time.Hour))
	addPerformance(t, c.ID, test.ID, 11.2, models.StatusVerified, base.Add(2*time.Hour))

	board, err := svc.GetLeaderboard(context.Background(), test.ID)
	require.NoError(t, err)
	require.Len(t, board.Entries, 3)

	// Lowest time wins; the 11.2 tie keeps submission order.
	assert.Equal(t, "Bhavna", board.Entries[0].Athlete.FirstName)
	assert.Equal(t, "Arjun", board.Entries[1].Athlete.FirstName)
	assert.Equal(t, "Chirag", board.Entries[2].Athlete.FirstName)
	for i, entry := range board.Entries {
		assert.Equal(t, i+1, entry.Rank)
	}
}

func TestGetLeaderboardOrderingHigherIsBetter(t *testing.T) {
	setupTestDB(t)
	svc := NewLeaderboardService(zap.NewNop())
	test := createTest(t, "Long Jump", "meters", models.HigherIsBetter)

	a := createAthlete(t, "Arjun", "Sharma")
	b := createAthlete(t, "Bhavna", "Patel")

	now := time.Now()
	addPerformance(t, a.ID, test.ID, 5.1, models.StatusVerified, now)
	addPerformance(t, b.ID, test.ID, 6.4, models.StatusVerified, now)

	board, err := svc.GetLeaderboard(context.Background(), test.ID)
	require.NoError(t, err)
	require.Len(t, board.Entries, 2)
	assert.Equal(t, 6.4, board.Entries[0].Value)
	assert.Equal(t, 5.1, board.Entries[1].Value)
}

func TestGetLeaderboardExcludesUnverified(t *testing.T) {
	setupTestDB(t)
	svc := NewLeaderboardService(zap.NewNop())
	test := createTest(t, "100m Sprint", "seconds", models.LowerIsBetter)
	athlete := createAthlete(t, "Arjun", "Sharma")

	now := time.Now()
	addPerformance(t, athlete.ID, test.ID, 10.5, models.StatusPending, now)
	addPerformance(t, athlete.ID, test.ID, 10.6, models.StatusFlagged, now)
	addPerformance(t, athlete.ID, test.ID, 11.0, models.StatusVerified, now)

	board, err := svc.GetLeaderboard(context.Background(), test.ID)
	require.NoError(t, err)
	require.Len(t, board.Entries, 1)
	assert.Equal(t, 11.0, board.Entries[0].Value)
	assert.Equal(t, 1, board.TotalEligible)
}

func TestGetLeaderboardTruncation(t *testing.T) {
	setupTestDB(t)
	svc := NewLeaderboardService(zap.NewNop())
	test := createTest(t, "100m Sprint", "seconds", models.LowerIsBetter)

	now := time.Now()
	for i := 0; i < 25; i++ {
		athlete := createAthlete(t, fmt.Sprintf("Athlete%02d", i), "Runner")
		addPerformance(t, athlete.ID, test.ID, 10.0+float64(i)*0.1, models.StatusVerified, now)
	}

	board, err := svc.GetLeaderboard(context.Background(), test.ID)
	require.NoError(t, err)

	assert.Len(t, board.Entries, 20)
	assert.Equal(t, 20, board.Total)
	assert.Equal(t, 25, board.TotalEligible)
	assert.Equal(t, 1, board.Entries[0].Rank)
	assert.Equal(t, 20, board.Entries[19].Rank)
}
