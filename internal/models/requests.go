package models

// Request bodies for the JSON API. Binding tags are enforced by Gin's
// validator on ShouldBindJSON.

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"first_name" binding:"required,max=50"`
	LastName    string `json:"last_name" binding:"required,max=50"`
	DateOfBirth string `json:"date_of_birth" binding:"required"` // YYYY-MM-DD
	Gender      string `json:"gender" binding:"required,oneof=MALE FEMALE"`
	Phone       string `json:"phone" binding:"required,max=15"`
	State       string `json:"state" binding:"required,max=50"`
	District    string `json:"district" binding:"required,max=50"`
	Address     string `json:"address" binding:"required"`
	Sport       string `json:"sport" binding:"required"`
	Category    string `json:"category" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type SubmitPerformanceRequest struct {
	TestID   string  `json:"test_id" binding:"required"`
	Value    float64 `json:"value" binding:"required,gt=0"`
	VideoURL string  `json:"video_url"`
	ImageURL string  `json:"image_url"`
}

type VerifyPerformanceRequest struct {
	Notes string `json:"notes"`
}

type FlagPerformanceRequest struct {
	Reason string `json:"reason" binding:"required,oneof=SUSPICIOUS_TIMING TECHNICAL_VIOLATION INVALID_VIDEO OTHER"`
	Notes  string `json:"notes"`
}

type CreateTestRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	Unit        string `json:"unit" binding:"required,max=20"`
	Category    string `json:"category" binding:"required"`
	Direction   string `json:"direction" binding:"omitempty,oneof=LOWER_IS_BETTER HIGHER_IS_BETTER"`
}

type CreateBadgeRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Description  string `json:"description"`
	BadgeType    string `json:"badge_type" binding:"required,oneof=PERFORMANCE MILESTONE PARTICIPATION ACHIEVEMENT"`
	Icon         string `json:"icon"`
	Requirements string `json:"requirements"`
	Points       int    `json:"points" binding:"gte=0"`
}
