package models

import (
	"time"

	"gorm.io/gorm"
)

// Direction states which way a test's raw value improves. Race times get
// LOWER_IS_BETTER; jumps and throws get HIGHER_IS_BETTER. Both the
// leaderboard and personal-best computations order on it.
type Direction string

const (
	LowerIsBetter  Direction = "LOWER_IS_BETTER"
	HigherIsBetter Direction = "HIGHER_IS_BETTER"
)

// Test categories, shared with Athlete.Category.
const (
	CategorySprints          = "SPRINTS"
	CategoryMiddleDistance   = "MIDDLE_DISTANCE"
	CategoryLongDistance     = "LONG_DISTANCE"
	CategoryJumps            = "JUMPS"
	CategoryThrows           = "THROWS"
	CategoryCombinedEvents   = "COMBINED_EVENTS"
	CategoryFreestyle        = "FREESTYLE"
	CategoryBackstroke       = "BACKSTROKE"
	CategoryBreaststroke     = "BREASTSTROKE"
	CategoryButterfly        = "BUTTERFLY"
	CategoryIndividualMedley = "INDIVIDUAL_MEDLEY"
)

type Test struct {
	ID          string    `gorm:"primaryKey;size:20" json:"id"`
	Name        string    `gorm:"size:100" json:"name"`
	Description string    `json:"description"`
	Unit        string    `gorm:"size:20" json:"unit"`
	Category    string    `gorm:"size:20;default:SPRINTS" json:"category"`
	Direction   Direction `gorm:"size:20;default:LOWER_IS_BETTER" json:"direction"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t *Test) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = NewTestID()
	}
	if t.Direction == "" {
		t.Direction = LowerIsBetter
	}
	return nil
}
