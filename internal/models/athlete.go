package models

import (
	"time"

	"gorm.io/gorm"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// Sports an athlete can register under.
const (
	SportAthletics     = "ATHLETICS"
	SportSwimming      = "SWIMMING"
	SportCycling       = "CYCLING"
	SportWeightlifting = "WEIGHTLIFTING"
	SportBoxing        = "BOXING"
	SportWrestling     = "WRESTLING"
	SportBadminton     = "BADMINTON"
	SportTennis        = "TENNIS"
	SportFootball      = "FOOTBALL"
	SportBasketball    = "BASKETBALL"
)

type Athlete struct {
	ID              string    `gorm:"primaryKey;size:20" json:"id"`
	UserID          string    `gorm:"size:20;uniqueIndex" json:"user_id"`
	User            User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	FirstName       string    `gorm:"size:50" json:"first_name"`
	LastName        string    `gorm:"size:50" json:"last_name"`
	DateOfBirth     time.Time `json:"date_of_birth"`
	Gender          Gender    `gorm:"size:10" json:"gender"`
	Phone           string    `gorm:"size:15" json:"phone"`
	State           string    `gorm:"size:50" json:"state"`
	District        string    `gorm:"size:50" json:"district"`
	Address         string    `json:"address"`
	Sport           string    `gorm:"size:20" json:"sport"`
	Category        string    `gorm:"size:20" json:"category"`
	ProfileImageURL string    `json:"profile_image_url"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (a *Athlete) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = NewAthleteID()
	}
	return nil
}

func (a *Athlete) FullName() string {
	return a.FirstName + " " + a.LastName
}
