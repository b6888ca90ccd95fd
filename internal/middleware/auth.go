package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shubhanshu5320/medium-blog-backend/internal/auth"
)

// UserIDKey is the context key under which AuthRequired stores the
// authenticated user id for downstream handlers.
const UserIDKey = "userId"

// MessageResponse represents the structure for error responses
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthRequired validates JWT tokens and protects routes from unauthorized access.
// The raw Authorization header value is the token itself; the existing
// frontend sends it without a Bearer prefix. Every verification failure,
// and a verified token without a usable user id, gets the same 403 body.
func AuthRequired(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		claims, err := auth.ValidateToken(authHeader, jwtSecret)
		if err != nil || claims.UserID == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, MessageResponse{
				Message: "You are not logged in",
			})
			return
		}

		// Set user ID in context for downstream handlers
		c.Set(UserIDKey, claims.UserID)

		c.Next()
	}
}
