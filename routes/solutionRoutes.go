package routes

import (
	"github.com/gin-gonic/gin"

	"cityfix-be/controllers"
	"cityfix-be/middlewares"
	"cityfix-be/models"
)

// SolutionRoutes sets up the solution routes
func SolutionRoutes(r *gin.Engine, solutions *controllers.SolutionController) {
	anyActive := middlewares.Authorize(middlewares.Policy{})
	staff := middlewares.Authorize(middlewares.Policy{
		Roles: []models.Role{models.RoleService, models.RoleEmployee, models.RoleModerator, models.RoleAdmin, models.RoleAnalyst},
	})

	solution := r.Group("/api/v1/solutions", middlewares.AuthMiddleware())
	{
		solution.GET("/count", anyActive, solutions.GetSolutionsCount)
		solution.GET("/average-time", anyActive, solutions.GetAverageSolutionsTime)
		solution.GET("/:id", anyActive, solutions.GetSolutionByID)

		solution.GET("/service/:uid", staff, solutions.GetSolutionsByService)
		solution.GET("/service/:uid/count", anyActive, solutions.GetSolutionsByServiceCount)
		solution.GET("/employee/:uid", staff, solutions.GetSolutionsByEmployee)
		solution.GET("/employee/:uid/count", anyActive, solutions.GetSolutionsByEmployeeCount)
		solution.GET("/department/:uid", staff, solutions.GetSolutionsByDepartment)
		solution.GET("/department/:uid/count", anyActive, solutions.GetSolutionsByDepartmentCount)
	}
}
