package models

import (
	"time"

	"gorm.io/gorm"
)

type BadgeType string

const (
	BadgePerformance   BadgeType = "PERFORMANCE"
	BadgeMilestone     BadgeType = "MILESTONE"
	BadgeParticipation BadgeType = "PARTICIPATION"
	BadgeAchievement   BadgeType = "ACHIEVEMENT"
)

// Badge is static reference data describing an earnable award.
type Badge struct {
	ID           string    `gorm:"primaryKey;size:20" json:"id"`
	Name         string    `gorm:"size:100;uniqueIndex" json:"name"`
	Description  string    `json:"description"`
	BadgeType    BadgeType `gorm:"size:15" json:"badge_type"`
	Icon         string    `gorm:"size:10;default:🏆" json:"icon"`
	Requirements string    `json:"requirements"`
	Points       int       `gorm:"default:0" json:"points"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func (b *Badge) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = NewBadgeID()
	}
	return nil
}

// AthleteBadge joins an athlete to an earned badge. The (athlete, badge)
// pair is unique: a badge cannot be earned twice.
type AthleteBadge struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	AthleteID     string    `gorm:"size:20;uniqueIndex:idx_athlete_badge" json:"athlete_id"`
	Athlete       Athlete   `gorm:"foreignKey:AthleteID;constraint:OnDelete:CASCADE" json:"-"`
	BadgeID       string    `gorm:"size:20;uniqueIndex:idx_athlete_badge" json:"badge_id"`
	Badge         Badge     `gorm:"foreignKey:BadgeID;constraint:OnDelete:CASCADE" json:"badge"`
	EarnedAt      time.Time `gorm:"autoCreateTime" json:"earned_at"`
	PerformanceID *string   `gorm:"size:20" json:"performance_id,omitempty"`
}
