package models

import (
	"time"

	"gorm.io/gorm"
)

type NotificationType string

const (
	NotifyPerformanceVerified NotificationType = "PERFORMANCE_VERIFIED"
	NotifyPerformanceFlagged  NotificationType = "PERFORMANCE_FLAGGED"
	NotifyBadgeEarned         NotificationType = "BADGE_EARNED"
	NotifyRankChanged         NotificationType = "RANK_CHANGED"
	NotifySystemUpdate        NotificationType = "SYSTEM_UPDATE"
)

type Notification struct {
	ID        string           `gorm:"primaryKey;size:20" json:"id"`
	AthleteID string           `gorm:"size:20;index" json:"athlete_id"`
	Athlete   Athlete          `gorm:"foreignKey:AthleteID;constraint:OnDelete:CASCADE" json:"-"`
	Type      NotificationType `gorm:"size:20" json:"type"`
	Title     string           `gorm:"size:200" json:"title"`
	Message   string           `json:"message"`
	IsRead    bool             `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = NewNotificationID()
	}
	return nil
}
