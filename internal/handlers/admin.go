package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Adi-Yadav1/Aarohan-Backend/internal/models"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/repository"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AdminHandler covers the verification workflow and reference-data
// management. Every route behind it is gated by AdminRequired.
type AdminHandler struct {
	log    *zap.Logger
	badges *services.BadgeService
	stats  *services.StatsService
}

func NewAdminHandler(log *zap.Logger, badges *services.BadgeService, stats *services.StatsService) *AdminHandler {
	return &AdminHandler{log: log, badges: badges, stats: stats}
}

func (h *AdminHandler) loadPerformance(c *gin.Context) (*models.Performance, bool) {
	perf, err := repository.GetPerformanceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Performance not found")
			return nil, false
		}
		h.log.Error("Failed to load performance", zap.Error(err), zap.String("performanceID", c.Param("id")))
		respondError(c, http.StatusInternalServerError, "Failed to load performance")
		return nil, false
	}
	return perf, true
}

// VerifyPerformance marks a submission VERIFIED. Re-verifying a flagged
// performance is allowed; statuses are labels, not a one-way state machine.
func (h *AdminHandler) VerifyPerformance(c *gin.Context) {
	admin, ok := CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.VerifyPerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	perf, ok := h.loadPerformance(c)
	if !ok {
		return
	}

	if err := repository.VerifyPerformance(c.Request.Context(), perf.ID, admin.ID, req.Notes); err != nil {
		h.log.Error("Failed to verify performance", zap.Error(err), zap.String("performanceID", perf.ID))
		respondError(c, http.StatusInternalServerError, "Failed to verify performance")
		return
	}

	notification := &models.Notification{
		AthleteID: perf.AthleteID,
		Type:      models.NotifyPerformanceVerified,
		Title:     "Performance verified",
		Message:   fmt.Sprintf("Your %s result of %g %s has been verified.", perf.Test.Name, perf.Value, perf.Test.Unit),
	}
	if err := repository.CreateNotification(c.Request.Context(), notification); err != nil {
		h.log.Error("Failed to create verification notification", zap.Error(err), zap.String("athleteID", perf.AthleteID))
	}

	h.badges.OnPerformanceVerified(c.Request.Context(), perf.AthleteID, perf.ID)
	if _, err := h.stats.ComputeStats(c.Request.Context(), perf.AthleteID); err != nil {
		h.log.Warn("Failed to refresh stats after verification", zap.Error(err), zap.String("athleteID", perf.AthleteID))
	}

	h.log.Info("Performance verified",
		zap.String("performanceID", perf.ID),
		zap.String("athlete", perf.Athlete.FullName()),
		zap.String("verifiedBy", admin.ID),
	)
	respondOK(c, http.StatusOK, "Performance verified", nil)
}

// FlagPerformance marks a submission FLAGGED with a reason. Flagged results
// leave every leaderboard and the athlete's verified aggregates.
func (h *AdminHandler) FlagPerformance(c *gin.Context) {
	admin, ok := CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.FlagPerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	perf, ok := h.loadPerformance(c)
	if !ok {
		return
	}

	if err := repository.FlagPerformance(c.Request.Context(), perf.ID, admin.ID, req.Reason, req.Notes); err != nil {
		h.log.Error("Failed to flag performance", zap.Error(err), zap.String("performanceID", perf.ID))
		respondError(c, http.StatusInternalServerError, "Failed to flag performance")
		return
	}

	notification := &models.Notification{
		AthleteID: perf.AthleteID,
		Type:      models.NotifyPerformanceFlagged,
		Title:     "Performance flagged",
		Message:   fmt.Sprintf("Your %s result of %g %s was flagged: %s.", perf.Test.Name, perf.Value, perf.Test.Unit, req.Reason),
	}
	if err := repository.CreateNotification(c.Request.Context(), notification); err != nil {
		h.log.Error("Failed to create flag notification", zap.Error(err), zap.String("athleteID", perf.AthleteID))
	}

	if _, err := h.stats.ComputeStats(c.Request.Context(), perf.AthleteID); err != nil {
		h.log.Warn("Failed to refresh stats after flagging", zap.Error(err), zap.String("athleteID", perf.AthleteID))
	}

	h.log.Info("Performance flagged",
		zap.String("performanceID", perf.ID),
		zap.String("athlete", perf.Athlete.FullName()),
		zap.String("flaggedBy", admin.ID),
		zap.String("reason", req.Reason),
	)
	respondOK(c, http.StatusOK, "Performance flagged", nil)
}

// Dashboard returns entity and per-status counts for the admin overview.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	var counts models.DashboardCounts
	var err error

	counts.TotalAthletes, err = repository.CountAthletes(ctx)
	if err == nil {
		counts.TotalTests, err = repository.CountTests(ctx)
	}
	if err == nil {
		counts.TotalBadges, err = repository.CountBadges(ctx)
	}
	if err == nil {
		counts.TotalPerformances, err = repository.CountPerformances(ctx)
	}
	if err == nil {
		counts.PendingPerformances, err = repository.CountByStatus(ctx, models.StatusPending)
	}
	if err == nil {
		counts.VerifiedPerformances, err = repository.CountByStatus(ctx, models.StatusVerified)
	}
	if err == nil {
		counts.FlaggedPerformances, err = repository.CountByStatus(ctx, models.StatusFlagged)
	}
	if err != nil {
		h.log.Error("Failed to compute dashboard counts", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	respondOK(c, http.StatusOK, "Dashboard loaded", counts)
}

// CreateTest adds a test to the catalogue. Direction defaults to
// LOWER_IS_BETTER when omitted.
func (h *AdminHandler) CreateTest(c *gin.Context) {
	var req models.CreateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	test := &models.Test{
		Name:        req.Name,
		Description: req.Description,
		Unit:        req.Unit,
		Category:    req.Category,
		Direction:   models.Direction(req.Direction),
		IsActive:    true,
	}
	if err := repository.CreateTest(c.Request.Context(), test); err != nil {
		h.log.Error("Failed to create test", zap.Error(err), zap.String("name", req.Name))
		respondError(c, http.StatusInternalServerError, "Failed to create test")
		return
	}

	h.log.Info("Test created", zap.String("testID", test.ID), zap.String("name", test.Name))
	respondOK(c, http.StatusCreated, "Test created", gin.H{"test": test})
}

// CreateBadge adds an earnable badge definition. Names are unique.
func (h *AdminHandler) CreateBadge(c *gin.Context) {
	var req models.CreateBadgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	badge := &models.Badge{
		Name:         req.Name,
		Description:  req.Description,
		BadgeType:    models.BadgeType(req.BadgeType),
		Icon:         req.Icon,
		Requirements: req.Requirements,
		Points:       req.Points,
		IsActive:     true,
	}
	if err := repository.CreateBadge(c.Request.Context(), badge); err != nil {
		h.log.Error("Failed to create badge", zap.Error(err), zap.String("name", req.Name))
		respondError(c, http.StatusInternalServerError, "Failed to create badge")
		return
	}

	h.log.Info("Badge created", zap.String("badgeID", badge.ID), zap.String("name", badge.Name))
	respondOK(c, http.StatusCreated, "Badge created", gin.H{"badge": badge})
}
