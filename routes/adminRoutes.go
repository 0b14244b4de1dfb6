package routes

import (
	"github.com/gin-gonic/gin"

	"cityfix-be/controllers"
	"cityfix-be/middlewares"
	"cityfix-be/models"
)

// AdminIssueRoutes sets up the moderation and analytics routes
func AdminIssueRoutes(r *gin.Engine, admin *controllers.AdminIssueController) {
	moderation := middlewares.Authorize(middlewares.Policy{
		Roles: []models.Role{models.RoleModerator, models.RoleAdmin},
	})
	analytics := middlewares.Authorize(middlewares.Policy{
		Roles: []models.Role{models.RoleAdmin, models.RoleAnalyst},
	})

	adminIssue := r.Group("/api/v1/admin/issues", middlewares.AuthMiddleware())
	{
		adminIssue.GET("", moderation, admin.GetIssues)
		adminIssue.GET("/analytics", analytics, admin.GetIssueAnalytics)
		adminIssue.GET("/:id", moderation, admin.GetIssueByID)
		adminIssue.PUT("/:id/approve", moderation, admin.ApproveIssue)
		adminIssue.PUT("/:id/decline", moderation, admin.DeclineIssue)
	}
}
