package models

import (
	"time"

	"gorm.io/datatypes"
)

// AthleteStats is a derived, write-through cache of per-athlete aggregates.
// Exactly one row exists per athlete, created alongside the profile. It is
// never a source of truth: everything here is reconstructible from the
// Performance and AthleteBadge tables, and the stats service recomputes it
// on demand.
type AthleteStats struct {
	ID                   uint           `gorm:"primaryKey" json:"id"`
	AthleteID            string         `gorm:"size:20;uniqueIndex" json:"athlete_id"`
	Athlete              Athlete        `gorm:"foreignKey:AthleteID;constraint:OnDelete:CASCADE" json:"-"`
	TotalPerformances    int            `gorm:"default:0" json:"total_performances"`
	VerifiedPerformances int            `gorm:"default:0" json:"verified_performances"`
	PendingPerformances  int            `gorm:"default:0" json:"pending_performances"`
	FlaggedPerformances  int            `gorm:"default:0" json:"flagged_performances"`
	TotalBadges          int            `gorm:"default:0" json:"total_badges"`
	TotalPoints          int            `gorm:"default:0" json:"total_points"`
	CurrentRank          int            `gorm:"default:0" json:"current_rank"`
	BestPerformances     datatypes.JSON `json:"best_performances"`
	UpdatedAt            time.Time      `json:"updated_at"`
}
