package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin = "admin"
	RoleGuest = "guest"

	tokenLifetime = 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Session is the identity carried by a token: either an authenticated admin
// or an anonymous guest whose id scopes their cart.
type Session struct {
	SubjectID string
	Email     string
	Role      string
}

func secret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// IssueToken signs a session token with a 24h expiry.
func IssueToken(s Session) (string, error) {
	claims := jwt.MapClaims{
		"sub":   s.SubjectID,
		"email": s.Email,
		"role":  s.Role,
		"exp":   time.Now().Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

// ParseToken validates a signed token and returns the session inside it.
func ParseToken(tokenString string) (Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return secret(), nil
	})
	if err != nil || !token.Valid {
		return Session{}, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, ErrInvalidToken
	}
	s := Session{}
	if sub, ok := claims["sub"].(string); ok {
		s.SubjectID = sub
	}
	if email, ok := claims["email"].(string); ok {
		s.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		s.Role = role
	}
	if s.SubjectID == "" || s.Role == "" {
		return Session{}, ErrInvalidToken
	}
	return s, nil
}
