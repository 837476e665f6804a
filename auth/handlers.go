package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MayBaraniKoKo/emperor-gold-catalogue/models"
)

type credentialsInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/signup
func SignUp(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input credentialsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		hash, err := HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		admin := models.Admin{
			Email:        strings.ToLower(strings.TrimSpace(input.Email)),
			PasswordHash: hash,
		}
		if err := db.Create(&admin).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Account already exists"})
			return
		}

		token, err := IssueToken(Session{SubjectID: admin.ID, Email: admin.Email, Role: RoleAdmin})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"token": token, "email": admin.Email})
	}
}

// POST /auth/signin
func SignIn(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input credentialsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var admin models.Admin
		err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(input.Email))).First(&admin).Error
		if err != nil || !CheckPassword(admin.PasswordHash, input.Password) {
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up account"})
				return
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := IssueToken(Session{SubjectID: admin.ID, Email: admin.Email, Role: RoleAdmin})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "email": admin.Email})
	}
}

// GET /auth/session
// The console polls this to resolve its gate: 200 with the identity when the
// token is good, 401 otherwise.
func GetSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := ParseToken(c.GetHeader("Authorization"))
		if err != nil || session.Role != RoleAdmin {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": session.SubjectID, "email": session.Email})
	}
}

// POST /auth/guest
// Issues an anonymous session whose id scopes the caller's cart.
func CreateGuestSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := "guest_" + generateRandomString(16)
		token, err := IssueToken(Session{SubjectID: guestID, Role: RoleGuest})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"guest_id": guestID, "token": token})
	}
}

func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_guest"
	}
	return hex.EncodeToString(bytes)
}
