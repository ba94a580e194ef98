package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleAthlete Role = "ATHLETE"
)

type User struct {
	ID                     string     `gorm:"primaryKey;size:20" json:"id"`
	Username               string     `gorm:"size:150;uniqueIndex" json:"username"`
	Email                  string     `gorm:"size:254;uniqueIndex" json:"email"`
	Password               string     `gorm:"size:128" json:"-"`
	Role                   Role       `gorm:"size:10;default:ATHLETE" json:"role"`
	IsEmailVerified        bool       `json:"is_email_verified"`
	EmailVerificationToken string     `gorm:"size:100" json:"-"`
	PasswordResetToken     string     `gorm:"size:100" json:"-"`
	PasswordResetExpires   *time.Time `json:"-"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = NewUserID()
	}
	return nil
}

// SetPassword hashes and stores the given plaintext password.
func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
