package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cityfix-be/services"
	"cityfix-be/utils"
)

type CategoryController struct {
	categories *services.CategoryService
}

func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{categories: categories}
}

type categoryInput struct {
	Name string `json:"name" binding:"required,max=64"`
}

// GetCategories handles retrieving all categories
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	categories, err := ctrl.categories.GetCategories(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetCategoryByID handles retrieving one category
func (ctrl *CategoryController) GetCategoryByID(c *gin.Context) {
	id, err := parseIDParam(c, "category")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	category, err := ctrl.categories.FindCategoryByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// CreateCategory handles adding a category
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var input categoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := ctrl.categories.CreateCategory(c.Request.Context(), input.Name)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles renaming a category
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id, err := parseIDParam(c, "category")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	var input categoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := ctrl.categories.UpdateCategory(c.Request.Context(), id, input.Name)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory handles removing an unreferenced category
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, err := parseIDParam(c, "category")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if err := ctrl.categories.DeleteCategory(c.Request.Context(), id); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
