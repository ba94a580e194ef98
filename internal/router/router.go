package router

import (
	"net/http"
	"time"

	"github.com/Adi-Yadav1/Aarohan-Backend/internal/handlers"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/services"
	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func rateLimitExceeded(c *gin.Context, info ratelimit.Info) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, handlers.Response{
		Success: false, Message: "Too many requests. Try again later.",
	})
}

// Setup builds the Gin engine with middleware and all API routes.
func Setup(log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}
	})

	// Handlers and shared services
	emailService := services.NewEmailService(log)
	badgeService := services.NewBadgeService(log)
	statsService := services.NewStatsService(log)
	leaderboardService := services.NewLeaderboardService(log)

	authHandler := handlers.NewAuthHandler(log, emailService)
	testHandler := handlers.NewTestHandler(log, badgeService, statsService)
	badgeHandler := handlers.NewBadgeHandler(log)
	leaderboardHandler := handlers.NewLeaderboardHandler(log, leaderboardService)
	statsHandler := handlers.NewStatsHandler(log, statsService)
	notificationHandler := handlers.NewNotificationHandler(log)
	adminHandler := handlers.NewAdminHandler(log, badgeService, statsService)

	// Credential endpoints get a per-IP rate limit.
	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 5,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: rateLimitExceeded,
		KeyFunc:      keyFunc,
	})

	api := router.Group("/api")
	{
		api.POST("/auth/register", limiter, authHandler.Register)
		api.POST("/auth/login", limiter, authHandler.Login)
		api.POST("/auth/verify-email", limiter, authHandler.VerifyEmail)
		api.POST("/auth/forgot-password", limiter, authHandler.ForgotPassword)
		api.POST("/auth/reset-password", limiter, authHandler.ResetPassword)

		api.GET("/tests", testHandler.ListTests)
		api.GET("/badges", badgeHandler.ListBadges)
		api.GET("/leaderboard/:testID", leaderboardHandler.GetLeaderboard)

		authorized := api.Group("/")
		authorized.Use(AuthRequired(log))
		{
			authorized.GET("/auth/profile", authHandler.Profile)
			authorized.POST("/tests/submit", testHandler.SubmitPerformance)
			authorized.GET("/athletes/me/stats", statsHandler.GetMyStats)
			authorized.GET("/notifications", notificationHandler.ListNotifications)
			authorized.POST("/notifications/:id/read", notificationHandler.MarkNotificationRead)

			admin := authorized.Group("/admin")
			admin.Use(AdminRequired())
			{
				admin.GET("/dashboard", adminHandler.Dashboard)
				admin.POST("/tests", adminHandler.CreateTest)
				admin.POST("/badges", adminHandler.CreateBadge)
				admin.POST("/performances/:id/verify", adminHandler.VerifyPerformance)
				admin.POST("/performances/:id/flag", adminHandler.FlagPerformance)
			}
		}
	}

	return router
}
