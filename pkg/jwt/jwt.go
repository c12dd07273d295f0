package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the role claim required by the admin routes.
const RoleAdmin = "admin"

// GenerateToken creates a new JWT for a subject with the given role.
func GenerateToken(secret, subject, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"exp":  time.Now().Add(time.Hour * 24 * 7).Unix(), // Token expires in 7 days
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}
