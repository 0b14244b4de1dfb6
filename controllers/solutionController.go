package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cityfix-be/middlewares"
	"cityfix-be/models"
	"cityfix-be/repository"
	"cityfix-be/services"
	"cityfix-be/utils"
)

type SolutionController struct {
	solutions *services.SolutionService
	directory services.Directory
}

func NewSolutionController(solutions *services.SolutionService, directory services.Directory) *SolutionController {
	return &SolutionController{solutions: solutions, directory: directory}
}

// CreateIssueSolution handles an employee solving a reserved issue
func (ctrl *SolutionController) CreateIssueSolution(c *gin.Context) {
	ident, _ := middlewares.CurrentIdentity(c)

	issueID, err := parseIDParam(c, "issue")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	description := c.PostForm("description")
	if description == "" || len(description) > 1000 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Description must be between 1 and 1000 characters"})
		return
	}

	photo, contentType, photoName, err := readPhoto(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	solution, err := ctrl.solutions.CreateIssueSolution(c.Request.Context(), services.CreateSolutionInput{
		IssueID:          issueID,
		EmployeeUID:      ident.UID,
		Description:      description,
		Photo:            photo,
		PhotoContentType: contentType,
		PhotoName:        photoName,
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, solutionView(*solution, ident.Role))
}

// GetIssueSolution handles retrieving the solution of an issue
func (ctrl *SolutionController) GetIssueSolution(c *gin.Context) {
	ident, _ := middlewares.CurrentIdentity(c)

	issueID, err := parseIDParam(c, "issue")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	solution, err := ctrl.solutions.FindSolutionByIssueID(c.Request.Context(), issueID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, solutionView(*solution, ident.Role))
}

// GetSolutionByID handles retrieving one solution
func (ctrl *SolutionController) GetSolutionByID(c *gin.Context) {
	ident, _ := middlewares.CurrentIdentity(c)

	id, err := parseIDParam(c, "solution")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	solution, err := ctrl.solutions.FindSolutionByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, solutionView(*solution, ident.Role))
}

// GetSolutionsCount handles counting solutions matching the filter
func (ctrl *SolutionController) GetSolutionsCount(c *gin.Context) {
	filter, err := parseHolderFilter(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	count, err := ctrl.solutions.GetSolutionsCount(c.Request.Context(), filter)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GetAverageSolutionsTime handles computing the mean time from
// reservation to solution in seconds
func (ctrl *SolutionController) GetAverageSolutionsTime(c *gin.Context) {
	filter, err := parseHolderFilter(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	average, err := ctrl.solutions.GetAverageSolutionsTime(c.Request.Context(), filter)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"averageSeconds": average})
}

// GetSolutionsByService handles listing a service's solutions
func (ctrl *SolutionController) GetSolutionsByService(c *gin.Context) {
	ident, _ := middlewares.CurrentIdentity(c)

	serviceUID := c.Param("uid")
	if ident.Role == models.RoleService && serviceUID != ident.UID {
		utils.HandleError(c, utils.Forbidden("You can only view your own service's solutions."))
		return
	}

	ctrl.listSolutions(c, ident, repository.HolderFilter{ServiceUID: serviceUID})
}

// GetSolutionsByServiceCount handles counting a service's solutions
func (ctrl *SolutionController) GetSolutionsByServiceCount(c *gin.Context) {
	ctrl.countSolutions(c, repository.HolderFilter{ServiceUID: c.Param("uid")})
}

// GetSolutionsByEmployee handles listing an employee's solutions
func (ctrl *SolutionController) GetSolutionsByEmployee(c *gin.Context) {
	ident, _ := middlewares.CurrentIdentity(c)

	employeeUID := c.Param("uid")
	switch ident.Role {
	case models.RoleEmployee:
		if employeeUID != ident.UID {
			utils.HandleError(c, utils.Forbidden("You can only view your own solutions."))
			return
		}
	case models.RoleService:
		inService, err := ctrl.directory.IsEmployeeInService(c.Request.Context(), employeeUID, ident.UID)
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		if !inService {
			utils.HandleError(c, utils.Forbidden("Employee does not belong to your service."))
			return
		}
	}

	ctrl.listSolutions(c, ident, repository.HolderFilter{EmployeeUID: employeeUID})
}

// GetSolutionsByEmployeeCount handles counting an employee's solutions
func (ctrl *SolutionController) GetSolutionsByEmployeeCount(c *gin.Context) {
	ctrl.countSolutions(c, repository.HolderFilter{EmployeeUID: c.Param("uid")})
}

// GetSolutionsByDepartment handles listing a department's solutions
func (ctrl *SolutionController) GetSolutionsByDepartment(c *gin.Context) {
	ident, _ := middlewares.CurrentIdentity(c)

	departmentUID := c.Param("uid")
	if ident.Role == models.RoleService {
		owns, err := ctrl.directory.IsServiceOwnerOfDepartment(c.Request.Context(), ident.UID, departmentUID)
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		if !owns {
			utils.HandleError(c, utils.Forbidden("Department does not belong to your service."))
			return
		}
	}

	ctrl.listSolutions(c, ident, repository.HolderFilter{DepartmentUID: departmentUID})
}

// GetSolutionsByDepartmentCount handles counting a department's solutions
func (ctrl *SolutionController) GetSolutionsByDepartmentCount(c *gin.Context) {
	ctrl.countSolutions(c, repository.HolderFilter{DepartmentUID: c.Param("uid")})
}

func (ctrl *SolutionController) listSolutions(c *gin.Context, ident models.Identity, base repository.HolderFilter) {
	filter, err := parseHolderFilter(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if base.ServiceUID != "" {
		filter.ServiceUID = base.ServiceUID
	}
	if base.DepartmentUID != "" {
		filter.DepartmentUID = base.DepartmentUID
	}
	if base.EmployeeUID != "" {
		filter.EmployeeUID = base.EmployeeUID
	}

	solutions, err := ctrl.solutions.GetSolutions(c.Request.Context(), filter, parsePageRequest(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, solutionViews(solutions, ident.Role))
}

func (ctrl *SolutionController) countSolutions(c *gin.Context, filter repository.HolderFilter) {
	count, err := ctrl.solutions.GetSolutionsCount(c.Request.Context(), filter)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
