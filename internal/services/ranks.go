package services

import (
	"context"
	"strconv"
	"time"

	"github.com/Adi-Yadav1/Aarohan-Backend/internal/config"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/models"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/repository"
	"go.uber.org/zap"
)

// RankService is the periodic reconciliation pass that fills
// AthleteStats.CurrentRank. Rank needs a cross-athlete comparison per test,
// so it cannot be computed inside a single athlete's stats aggregation;
// instead this pass walks every test's leaderboard on a timer and persists
// each athlete's best position.
type RankService struct {
	log *zap.Logger
}

func NewRankService(log *zap.Logger) *RankService {
	return &RankService{log: log}
}

// Start runs the reconciliation loop in a goroutine.
func (s *RankService) Start() {
	interval := time.Duration(config.Conf.Leaderboard.RefreshIntervalSeconds) * time.Second
	s.log.Info("Starting rank reconciliation scheduler", zap.Duration("interval", interval))
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			<-ticker.C
			s.runReconciliation()
		}
	}()
}

func (s *RankService) runReconciliation() {
	ctx := context.Background()

	tests, err := repository.ListAllTests(ctx)
	if err != nil {
		s.log.Error("Failed to list tests for rank reconciliation", zap.Error(err))
		return
	}

	// An athlete's current rank is their best position across every
	// leaderboard they hold a verified result in.
	bestRank := make(map[string]int)
	for _, test := range tests {
		perfs, err := repository.ListVerifiedByTest(ctx, test.ID, test.Direction)
		if err != nil {
			s.log.Error("Failed to list verified performances", zap.Error(err), zap.String("testID", test.ID))
			return
		}
		seen := make(map[string]bool)
		position := 0
		for _, p := range perfs {
			// Only an athlete's best result counts toward a position.
			if seen[p.AthleteID] {
				continue
			}
			seen[p.AthleteID] = true
			position++
			if current, ok := bestRank[p.AthleteID]; !ok || position < current {
				bestRank[p.AthleteID] = position
			}
		}
	}

	athletes, err := repository.ListActiveAthletes(ctx)
	if err != nil {
		s.log.Error("Failed to list athletes for rank reconciliation", zap.Error(err))
		return
	}

	updated := 0
	for _, athlete := range athletes {
		rank := bestRank[athlete.ID] // zero when unranked

		stats, err := repository.GetStatsByAthleteID(ctx, athlete.ID)
		if err != nil {
			s.log.Error("Failed to load stats row", zap.Error(err), zap.String("athleteID", athlete.ID))
			continue
		}
		if stats.CurrentRank == rank {
			continue
		}

		if err := repository.UpdateCurrentRank(ctx, athlete.ID, rank); err != nil {
			s.log.Error("Failed to update rank", zap.Error(err), zap.String("athleteID", athlete.ID))
			continue
		}
		updated++

		if rank > 0 {
			notification := &models.Notification{
				AthleteID: athlete.ID,
				Type:      models.NotifyRankChanged,
				Title:     "Your rank changed",
				Message:   "Your best leaderboard position is now #" + strconv.Itoa(rank) + ".",
			}
			if err := repository.CreateNotification(ctx, notification); err != nil {
				s.log.Error("Failed to create rank notification", zap.Error(err), zap.String("athleteID", athlete.ID))
			}
		}
	}

	s.log.Debug("Rank reconciliation finished", zap.Int("updated", updated))
}
