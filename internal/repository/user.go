package repository

import (
	"context"
	"time"

	"github.com/Adi-Yadav1/Aarohan-Backend/internal/database"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/models"
)

func CreateUser(ctx context.Context, user *models.User) error {
	return database.DB.WithContext(ctx).Create(user).Error
}

func GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	result := database.DB.WithContext(ctx).First(&user, "email = ?", email)
	return &user, result.Error
}

func GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	result := database.DB.WithContext(ctx).First(&user, "id = ?", id)
	return &user, result.Error
}

// SetPasswordResetToken stores a reset token and its expiry on the user row.
func SetPasswordResetToken(ctx context.Context, userID, token string, expires time.Time) error {
	return database.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"password_reset_token":   token,
			"password_reset_expires": expires,
		}).Error
}

// GetUserByResetToken looks up a user by an unexpired password-reset token.
func GetUserByResetToken(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	result := database.DB.WithContext(ctx).
		Where("password_reset_token = ? AND password_reset_expires > ?", token, time.Now()).
		First(&user)
	return &user, result.Error
}

// UpdateUserPassword replaces the stored hash and clears any reset token.
func UpdateUserPassword(ctx context.Context, userID, hashedPassword string) error {
	return database.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"password":               hashedPassword,
			"password_reset_token":   "",
			"password_reset_expires": nil,
		}).Error
}

// GetUserByVerificationToken looks up a user by an unconsumed
// email-verification token.
func GetUserByVerificationToken(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	result := database.DB.WithContext(ctx).
		Where("email_verification_token = ? AND is_email_verified = ?", token, false).
		First(&user)
	return &user, result.Error
}

// MarkEmailVerified clears the verification token and sets the flag.
func MarkEmailVerified(ctx context.Context, userID string) error {
	return database.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"is_email_verified":        true,
			"email_verification_token": "",
		}).Error
}
