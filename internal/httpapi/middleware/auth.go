package middleware

import (
	"net/http"
	"strings"

	"reviewhub/internal/httpapi/policy"
	"reviewhub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// AuthMiddleware is a Gin middleware for JWT authentication of API requests.
// It checks for the presence and validity of a JWT token in the
// Authorization header. Routes behind it always see an authenticated actor;
// public reads are simply not routed through it.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		// Extract token (format: "Bearer <token>")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(actorKey, policy.Actor{
			ID:            claims.UserID,
			Role:          claims.Role,
			IsStaff:       claims.IsStaff,
			Authenticated: true,
		})

		c.Next()
	}
}

// ActorFrom returns the caller identity set by AuthMiddleware. The zero
// Actor stands for an anonymous caller.
func ActorFrom(c *gin.Context) policy.Actor {
	if v, exists := c.Get(actorKey); exists {
		if actor, ok := v.(policy.Actor); ok {
			return actor
		}
	}
	return policy.Actor{}
}

// RequireAdmin gates admin-only resources. It runs after AuthMiddleware,
// so a failure here is always 403, never 401.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !policy.CanManageCatalog(ActorFrom(c)) {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}
