package authUtils

import (
	"fmt"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// TokenInput carries the identity claims minted into a bearer token. In
// production tokens come from the external identity service; this generator
// exists for local development and tests.
type TokenInput struct {
	UID           string
	Role          string
	Status        string
	ServiceUID    string
	DepartmentUID string
}

// GenerateToken generates a signed JWT for the given identity claims.
func GenerateToken(input TokenInput) (string, error) {
	secretStr := os.Getenv("JWT_SECRET")
	if secretStr == "" {
		return "", fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	jwtSecret := []byte(secretStr)

	claims := jwt.MapClaims{
		"user_id": input.UID,
		"role":    input.Role,
		"status":  input.Status,
		"exp":     time.Now().Add(time.Hour * 72).Unix(), // Token expires in 72 hours
	}
	if input.ServiceUID != "" {
		claims["serviceUid"] = input.ServiceUID
	}
	if input.DepartmentUID != "" {
		claims["departmentUid"] = input.DepartmentUID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
