package security

import (
	"net/http"
	"strconv"
	"strings"

	"stockroom/pkg/roles"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID   = "userID"
	ctxRole     = "role"
	ctxUsername = "username"
)

// JWTMiddleware validates the bearer token and stores its claims in the context.
func JWTMiddleware(verifier *TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": http.StatusUnauthorized, "message": "Authorization header missing"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := verifier.Parse(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": http.StatusUnauthorized, "message": "Unauthenticated."})
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Set(ctxUsername, claims.Username)
		c.Next()
	}
}

// Authorize lets the request through when the caller's role is in allowed.
func Authorize(allowed ...roles.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ctxRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"status": http.StatusForbidden, "message": "Forbidden: insufficient permissions"})
			return
		}
		userRole, ok := role.(string)
		if !ok || !roles.Role(userRole).In(allowed) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"status": http.StatusForbidden, "message": "Forbidden: insufficient permissions"})
			return
		}

		c.Next()
	}
}

func GetUserID(c *gin.Context) (int, bool) {
	raw := c.GetString(ctxUserID)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}

	return id, true
}

// GetUsername returns the actor name recorded in stock logs.
func GetUsername(c *gin.Context) string {
	if name := c.GetString(ctxUsername); name != "" {
		return name
	}

	return "system"
}
