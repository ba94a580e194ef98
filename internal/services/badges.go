package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Adi-Yadav1/Aarohan-Backend/internal/models"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Milestone badge names, matching the seeded reference data.
const (
	badgeFirstPerformance  = "First Performance"
	badgeConsistentAthlete = "Consistent Athlete"

	consistentAthleteThreshold = 10 // verified performances
)

// BadgeService awards milestone badges. Awards respect the (athlete, badge)
// uniqueness invariant: re-checking a milestone an athlete already holds is
// a no-op.
type BadgeService struct {
	log *zap.Logger
}

func NewBadgeService(log *zap.Logger) *BadgeService {
	return &BadgeService{log: log}
}

// OnPerformanceSubmitted awards "First Performance" for an athlete's first
// submission of any status.
func (s *BadgeService) OnPerformanceSubmitted(ctx context.Context, athleteID string, performanceID string) {
	s.tryAward(ctx, athleteID, badgeFirstPerformance, &performanceID)
}

// OnPerformanceVerified re-checks verification-count milestones.
func (s *BadgeService) OnPerformanceVerified(ctx context.Context, athleteID string, performanceID string) {
	verified, err := repository.CountByAthleteAndStatus(ctx, athleteID, models.StatusVerified)
	if err != nil {
		s.log.Error("Failed to count verified performances", zap.Error(err), zap.String("athleteID", athleteID))
		return
	}
	if verified >= consistentAthleteThreshold {
		s.tryAward(ctx, athleteID, badgeConsistentAthlete, &performanceID)
	}
}

// tryAward grants the named badge if it exists, is active and has not been
// earned yet. A missing badge definition only logs: deployments choose
// which reference badges to seed.
func (s *BadgeService) tryAward(ctx context.Context, athleteID, badgeName string, performanceID *string) {
	badge, err := repository.GetBadgeByName(ctx, badgeName)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Error("Failed to look up badge", zap.Error(err), zap.String("badge", badgeName))
		}
		return
	}
	if !badge.IsActive {
		return
	}

	awarded, err := repository.AwardBadge(ctx, athleteID, badge.ID, performanceID)
	if err != nil {
		s.log.Error("Failed to award badge", zap.Error(err),
			zap.String("athleteID", athleteID), zap.String("badge", badgeName))
		return
	}
	if !awarded {
		return
	}

	s.log.Info("Badge awarded", zap.String("athleteID", athleteID), zap.String("badge", badgeName))

	notification := &models.Notification{
		AthleteID: athleteID,
		Type:      models.NotifyBadgeEarned,
		Title:     "Badge earned: " + badge.Name,
		Message:   fmt.Sprintf("You earned the %s badge (%d points). %s", badge.Name, badge.Points, badge.Description),
	}
	if err := repository.CreateNotification(ctx, notification); err != nil {
		s.log.Error("Failed to create badge notification", zap.Error(err), zap.String("athleteID", athleteID))
	}
}
