package routes

import (
	"github.com/gin-gonic/gin"

	"cityfix-be/controllers"
	"cityfix-be/middlewares"
	"cityfix-be/models"
)

const dailyIssueLimit = 5

// IssueRoutes sets up the issue routes
func IssueRoutes(r *gin.Engine, issues *controllers.IssueController,
	reservations *controllers.ReservationController, solutions *controllers.SolutionController) {

	anyActive := middlewares.Authorize(middlewares.Policy{})
	residentOnly := middlewares.Authorize(middlewares.Policy{Roles: []models.Role{models.RoleResident}})
	employeeOnly := middlewares.Authorize(middlewares.Policy{Roles: []models.Role{models.RoleEmployee}})
	holderRoles := middlewares.Authorize(middlewares.Policy{
		Roles: []models.Role{models.RoleService, models.RoleEmployee, models.RoleAdmin},
	})

	issue := r.Group("/api/v1/issues", middlewares.AuthMiddleware())
	{
		issue.GET("", anyActive, issues.GetIssues)
		issue.GET("/count", anyActive, issues.GetIssuesCount)
		issue.GET("/radius", anyActive, issues.GetIssuesInRadius)
		issue.GET("/square", anyActive, issues.GetIssuesInSquare)
		issue.GET("/holder", holderRoles, issues.GetIssuesByHolder)
		issue.POST("", residentOnly, middlewares.IssueRateLimiter(dailyIssueLimit), issues.CreateIssue)

		issue.GET("/resident/me", residentOnly, issues.GetMyIssues)
		issue.GET("/resident/:uid/count", anyActive, issues.GetResidentIssuesCount)

		issue.GET("/:id", anyActive, issues.GetIssueByID)
		issue.GET("/:id/likes/count", anyActive, issues.GetIssueLikesCount)
		issue.GET("/:id/like/status", residentOnly, issues.GetLikeStatus)
		issue.POST("/:id/like", residentOnly, issues.LikeIssue)
		issue.DELETE("/:id/like", residentOnly, issues.UnlikeIssue)

		issue.GET("/:id/reservation", anyActive, reservations.GetIssueReservation)
		issue.POST("/:id/reservation", employeeOnly, reservations.CreateIssueReservation)
		issue.GET("/:id/solution", anyActive, solutions.GetIssueSolution)
		issue.POST("/:id/solution", employeeOnly, solutions.CreateIssueSolution)

		issue.GET("/:id/moderation", anyActive, issues.GetModerationResponse)
	}
}
