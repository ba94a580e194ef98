package models

import (
	"time"

	"gorm.io/gorm"
)

// PerformanceStatus is a relaxed three-state label, not a strict state
// machine: admins may re-verify a flagged performance and vice versa.
type PerformanceStatus string

const (
	StatusPending  PerformanceStatus = "PENDING"
	StatusVerified PerformanceStatus = "VERIFIED"
	StatusFlagged  PerformanceStatus = "FLAGGED"
)

// Reasons an admin can give when flagging a submission.
const (
	FlagSuspiciousTiming   = "SUSPICIOUS_TIMING"
	FlagTechnicalViolation = "TECHNICAL_VIOLATION"
	FlagInvalidVideo       = "INVALID_VIDEO"
	FlagOther              = "OTHER"
)

type Performance struct {
	ID        string            `gorm:"primaryKey;size:20" json:"id"`
	TestID    string            `gorm:"size:20" json:"test_id"`
	Test      Test              `gorm:"foreignKey:TestID;constraint:OnDelete:CASCADE" json:"-"`
	AthleteID string            `gorm:"size:20" json:"athlete_id"`
	Athlete   Athlete           `gorm:"foreignKey:AthleteID;constraint:OnDelete:CASCADE" json:"-"`
	Value     float64           `json:"value"`
	Status    PerformanceStatus `gorm:"size:10;default:PENDING" json:"status"`

	// Media attachments (URLs into external storage)
	VideoURL string `json:"video_url"`
	ImageURL string `json:"image_url"`

	// Verification metadata
	VerifiedByID      *string    `gorm:"size:20" json:"verified_by,omitempty"`
	VerifiedAt        *time.Time `json:"verified_at,omitempty"`
	VerificationNotes string     `json:"verification_notes,omitempty"`

	// Flagging metadata
	FlaggedByID *string    `gorm:"size:20" json:"flagged_by,omitempty"`
	FlaggedAt   *time.Time `json:"flagged_at,omitempty"`
	FlagReason  string     `gorm:"size:20" json:"flag_reason,omitempty"`
	FlagNotes   string     `json:"flag_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Performance) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewPerformanceID()
	}
	if p.Status == "" {
		p.Status = StatusPending
	}
	return nil
}
