package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextKeyUsername is the key for the admin username in gin context
const ContextKeyUsername = "username"

// AdminRequired gates the mutating routes. It accepts the session token
// from the auth_token cookie or an Authorization: Bearer header and
// verifies signature and expiry, not mere cookie presence.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, _ := c.Cookie(CookieName)
		if tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := ValidateToken(tokenString)
		if err != nil {
			if err == ErrExpiredToken {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Session has expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid session"})
			}
			c.Abort()
			return
		}

		c.Set(ContextKeyUsername, claims.Username)

		c.Next()
	}
}

// GetUsername returns the authenticated admin username from the gin context
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(ContextKeyUsername)
	if !exists {
		return "", false
	}
	return username.(string), true
}
