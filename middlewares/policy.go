package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cityfix-be/models"
)

// Policy declares who may call a route. Roles lists the allowed roles;
// an empty list means any authenticated caller. Statuses defaults to
// active users only.
type Policy struct {
	Roles    []models.Role
	Statuses []models.UserStatus
}

// Authorize enforces a route policy against the identity stored by
// AuthMiddleware.
func Authorize(policy Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := CurrentIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No authorization token provided"})
			c.Abort()
			return
		}

		statuses := policy.Statuses
		if len(statuses) == 0 {
			statuses = []models.UserStatus{models.UserStatusActive}
		}
		if !containsStatus(statuses, ident.Status) {
			c.JSON(http.StatusForbidden, gin.H{"error": "User account is not active"})
			c.Abort()
			return
		}

		if len(policy.Roles) > 0 && !containsRole(policy.Roles, ident.Role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func containsRole(roles []models.Role, role models.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func containsStatus(statuses []models.UserStatus, status models.UserStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
