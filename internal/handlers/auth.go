package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Adi-Yadav1/Aarohan-Backend/internal/auth"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/config"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/models"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/repository"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const secureTokenBytes = 32

type AuthHandler struct {
	log   *zap.Logger
	email *services.EmailService
}

func NewAuthHandler(log *zap.Logger, email *services.EmailService) *AuthHandler {
	return &AuthHandler{log: log, email: email}
}

// Register creates an athlete account: user, profile and empty stats row in
// one transaction, then issues an access token so the client is logged in
// straight away.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		respondError(c, http.StatusBadRequest, "date_of_birth must be YYYY-MM-DD")
		return
	}

	if _, err := repository.GetUserByEmail(c.Request.Context(), req.Email); err == nil {
		respondError(c, http.StatusConflict, "An account with this email already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		h.log.Error("Failed to check existing email", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to register")
		return
	}

	verifyToken, err := auth.GenerateSecureToken(secureTokenBytes)
	if err != nil {
		h.log.Error("Failed to generate verification token", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to register")
		return
	}

	user := &models.User{
		Username:               req.Email,
		Email:                  req.Email,
		Role:                   models.RoleAthlete,
		EmailVerificationToken: verifyToken,
	}
	if err := user.SetPassword(req.Password); err != nil {
		h.log.Error("Failed to hash password", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to register")
		return
	}

	athlete := &models.Athlete{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: dob,
		Gender:      models.Gender(req.Gender),
		Phone:       req.Phone,
		State:       req.State,
		District:    req.District,
		Address:     req.Address,
		Sport:       req.Sport,
		Category:    req.Category,
		IsActive:    true,
	}

	if err := repository.RegisterAthlete(c.Request.Context(), user, athlete); err != nil {
		h.log.Error("Failed to register athlete", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to register")
		return
	}

	h.email.SendVerificationEmail(user, verifyToken)

	token, err := auth.GenerateToken(user)
	if err != nil {
		h.log.Error("Failed to issue token after registration", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to register")
		return
	}

	h.log.Info("Athlete registered", zap.String("userID", user.ID), zap.String("athleteID", athlete.ID))
	respondOK(c, http.StatusCreated, "Registration successful", gin.H{
		"token":   token,
		"user":    user,
		"athlete": athlete,
	})
}

// Login exchanges credentials for a bearer token. The failure message never
// says which of email or password was wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := repository.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil || !user.CheckPassword(req.Password) {
		respondError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		h.log.Error("Failed to issue token", zap.Error(err), zap.String("userID", user.ID))
		respondError(c, http.StatusInternalServerError, "Failed to login")
		return
	}

	respondOK(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// Profile returns the authenticated user and, for athletes, their profile.
func (h *AuthHandler) Profile(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	data := gin.H{"user": user}
	if !user.IsAdmin() {
		athlete, err := repository.GetAthleteByUserID(c.Request.Context(), user.ID)
		if err != nil {
			h.log.Error("Failed to load athlete profile", zap.Error(err), zap.String("userID", user.ID))
			respondError(c, http.StatusInternalServerError, "Failed to load profile")
			return
		}
		data["athlete"] = athlete
	}

	respondOK(c, http.StatusOK, "Profile loaded", data)
}

// VerifyEmail consumes the token delivered at registration and marks the
// address verified. Tokens are single use.
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req models.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := repository.GetUserByVerificationToken(c.Request.Context(), req.Token)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid verification token")
		return
	}

	if err := repository.MarkEmailVerified(c.Request.Context(), user.ID); err != nil {
		h.log.Error("Failed to mark email verified", zap.Error(err), zap.String("userID", user.ID))
		respondError(c, http.StatusInternalServerError, "Failed to verify email")
		return
	}

	h.log.Info("Email verified", zap.String("userID", user.ID))
	respondOK(c, http.StatusOK, "Email verified", nil)
}

// ForgotPassword stores a reset token and emails it. The response is the
// same whether or not the email is registered, to avoid account enumeration.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := repository.GetUserByEmail(c.Request.Context(), req.Email)
	if err == nil {
		token, tokenErr := auth.GenerateSecureToken(secureTokenBytes)
		if tokenErr != nil {
			h.log.Error("Failed to generate reset token", zap.Error(tokenErr))
			respondError(c, http.StatusInternalServerError, "Failed to process request")
			return
		}
		ttl := time.Duration(config.Conf.Auth.ResetTokenTTLMinutes) * time.Minute
		if err := repository.SetPasswordResetToken(c.Request.Context(), user.ID, token, time.Now().Add(ttl)); err != nil {
			h.log.Error("Failed to store reset token", zap.Error(err), zap.String("userID", user.ID))
			respondError(c, http.StatusInternalServerError, "Failed to process request")
			return
		}
		h.email.SendPasswordResetEmail(user, token)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		h.log.Error("Failed to look up user for password reset", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to process request")
		return
	}

	respondOK(c, http.StatusOK, "If that email is registered, a reset link has been sent", nil)
}

// ResetPassword consumes an unexpired reset token and replaces the password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := repository.GetUserByResetToken(c.Request.Context(), req.Token)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid or expired reset token")
		return
	}

	if err := user.SetPassword(req.NewPassword); err != nil {
		h.log.Error("Failed to hash new password", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to reset password")
		return
	}
	if err := repository.UpdateUserPassword(c.Request.Context(), user.ID, user.Password); err != nil {
		h.log.Error("Failed to update password", zap.Error(err), zap.String("userID", user.ID))
		respondError(c, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	h.log.Info("Password reset completed", zap.String("userID", user.ID))
	respondOK(c, http.StatusOK, "Password has been reset", nil)
}
