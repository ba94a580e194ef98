package services

import (
	"fmt"

	"github.com/Adi-Yadav1/Aarohan-Backend/internal/config"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/models"
	"go.uber.org/zap"
)

// EmailService is a placeholder for a real email sending service.
type EmailService struct {
	log *zap.Logger
}

func NewEmailService(log *zap.Logger) *EmailService {
	return &EmailService{log: log}
}

// SendPasswordResetEmail simulates delivering a password-reset link.
func (s *EmailService) SendPasswordResetEmail(user *models.User, token string) {
	if !config.Conf.Uploads.EmailNotifications {
		return
	}
	s.log.Info("Sending password reset email", zap.String("to", user.Email))
	// In a real application, you would use an SMTP client like go-mail
	// to send a templated HTML email here.
	fmt.Printf("--- SIMULATING EMAIL ---\nTo: %s\nSubject: Reset your password\nUse this token to reset your password: %s\n\n", user.Email, token)
}

// SendVerificationEmail simulates delivering an email-verification link.
func (s *EmailService) SendVerificationEmail(user *models.User, token string) {
	if !config.Conf.Uploads.EmailNotifications {
		return
	}
	s.log.Info("Sending verification email", zap.String("to", user.Email))
	fmt.Printf("--- SIMULATING EMAIL ---\nTo: %s\nSubject: Verify your email\nUse this token to verify your email address: %s\n\n", user.Email, token)
}
