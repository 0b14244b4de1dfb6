package routes

import (
	"github.com/gin-gonic/gin"

	"cityfix-be/controllers"
	"cityfix-be/middlewares"
	"cityfix-be/models"
)

// CategoryRoutes sets up the category routes
func CategoryRoutes(r *gin.Engine, categories *controllers.CategoryController) {
	anyActive := middlewares.Authorize(middlewares.Policy{})
	adminOnly := middlewares.Authorize(middlewares.Policy{Roles: []models.Role{models.RoleAdmin}})

	category := r.Group("/api/v1/categories", middlewares.AuthMiddleware())
	{
		category.GET("", anyActive, categories.GetCategories)
		category.GET("/:id", anyActive, categories.GetCategoryByID)
		category.POST("", adminOnly, categories.CreateCategory)
		category.PUT("/:id", adminOnly, categories.UpdateCategory)
		category.DELETE("/:id", adminOnly, categories.DeleteCategory)
	}
}
