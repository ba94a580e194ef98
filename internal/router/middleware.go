package router

import (
	"net/http"
	"strings"

	"github.com/Adi-Yadav1/Aarohan-Backend/internal/auth"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/handlers"
	"github.com/Adi-Yadav1/Aarohan-Backend/internal/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthRequired validates the bearer token and loads the user into the
// context. The user row is reloaded on every request so tokens for deleted
// accounts stop working immediately.
func AuthRequired(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handlers.Response{
				Success: false, Message: "Authentication required",
			})
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handlers.Response{
				Success: false, Message: "Invalid or expired token",
			})
			return
		}

		user, err := repository.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			log.Warn("Token for unknown user", zap.String("userID", claims.UserID))
			c.AbortWithStatusJSON(http.StatusUnauthorized, handlers.Response{
				Success: false, Message: "Invalid or expired token",
			})
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// AdminRequired gates a route group on the ADMIN role. Must run after
// AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := handlers.CurrentUser(c)
		if !ok || !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, handlers.Response{
				Success: false, Message: "Admin access required",
			})
			return
		}
		c.Next()
	}
}
