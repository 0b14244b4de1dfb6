package middlewares

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	"cityfix-be/models"
)

const identityKey = "identity"

// AuthMiddleware validates the bearer token and stores the caller's
// identity in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No authorization token provided"})
			c.Abort()
			return
		}

		// Extracting token from "Bearer <token>" format
		tokenString := authHeader
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = authHeader[7:]
		}

		jwtSecret := os.Getenv("JWT_SECRET")
		if jwtSecret == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "JWT secret not configured"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})

		if err != nil || !token.Valid {
			log.Printf("Token validation failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		ident, ok := identityFromClaims(claims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		c.Set(identityKey, ident)
		c.Next()
	}
}

func identityFromClaims(claims jwt.MapClaims) (models.Identity, bool) {
	uid, ok := claims["user_id"].(string)
	if !ok || uid == "" {
		return models.Identity{}, false
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return models.Identity{}, false
	}
	status, ok := claims["status"].(string)
	if !ok || status == "" {
		return models.Identity{}, false
	}

	ident := models.Identity{
		UID:    uid,
		Role:   models.Role(role),
		Status: models.UserStatus(status),
	}
	// Organizational claims are only present for staff tokens.
	if serviceUID, ok := claims["serviceUid"].(string); ok {
		ident.ServiceUID = serviceUID
	}
	if departmentUID, ok := claims["departmentUid"].(string); ok {
		ident.DepartmentUID = departmentUID
	}
	return ident, true
}

// CurrentIdentity returns the identity stored by AuthMiddleware.
func CurrentIdentity(c *gin.Context) (models.Identity, bool) {
	val, exists := c.Get(identityKey)
	if !exists {
		return models.Identity{}, false
	}
	ident, ok := val.(models.Identity)
	return ident, ok
}
