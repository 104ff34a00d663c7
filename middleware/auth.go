package middleware

import (
	"net/http"
	"strings"

	"bms-server/entities"
	"bms-server/repositories"
	"bms-server/services"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is where RequireAuth stores the caller's user row.
const ContextUserKey = "currentUser"

// extractToken strips the "Bearer " prefix from an Authorization header.
func extractToken(authHeader string) string {
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// RequireAuth validates the bearer token and loads the caller's user row on
// every request. No caching: a role change binds on the very next request.
func RequireAuth(tokens *services.TokenService, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header is required"})
			return
		}

		claims, err := tokens.Validate(extractToken(authHeader))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		user, err := users.GetByID(claims.UserID)
		if err != nil {
			// Token subject no longer exists (e.g. resident released).
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RequireAdmin allows only callers whose stored role is admin. Runs after
// RequireAuth. Non-admins always get 403, regardless of the target entity.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if user.Role != entities.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user loaded by RequireAuth, or nil.
func CurrentUser(c *gin.Context) *entities.User {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*entities.User)
	if !ok {
		return nil
	}
	return user
}
