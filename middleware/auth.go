package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MayBaraniKoKo/emperor-gold-catalogue/auth"
)

// RequireAdmin guards the console routes. A single boolean gate: a valid
// admin token passes, everything else is 401. No role levels beyond that.
func RequireAdmin(c *gin.Context) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}

	session, err := auth.ParseToken(tokenString)
	if err != nil || session.Role != auth.RoleAdmin {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	c.Set("admin_id", session.SubjectID)
	c.Next()
}

// RequireSession resolves any valid session (guest or admin) and exposes its
// id for cart scoping.
func RequireSession(c *gin.Context) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}

	session, err := auth.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	c.Set("session_id", session.SubjectID)
	c.Next()
}
