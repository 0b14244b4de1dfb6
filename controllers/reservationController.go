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

type ReservationController struct {
	reservations *services.ReservationService
	directory    services.Directory
}

func NewReservationController(reservations *services.ReservationService, directory services.Directory) *ReservationController {
	return &ReservationController{reservations: reservations, directory: directory}
}

// CreateIssueReservation handles an employee reserving a published issue
func (ctrl *ReservationController) CreateIssueReservation(c *gin.Context) {
	ident, _ := middlewares.CurrentIdentity(c)

	issueID, err := parseIDParam(c, "issue")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	reservation, err := ctrl.reservations.CreateIssueReservation(c.Request.Context(), issueID, ident)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reservationView(*reservation, ident.Role))
}

// GetIssueReservation handles retrieving the reservation of an issue
func (ctrl *ReservationController) GetIssueReservation(c *gin.Context) {
	ident, _ := middlewares.CurrentIdentity(c)

	issueID, err := parseIDParam(c, "issue")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	reservation, err := ctrl.reservations.FindReservationByIssueID(c.Request.Context(), issueID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservationView(*reservation, ident.Role))
}

// GetReservations handles retrieving a filtered page of reservations
func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	ident, _ := middlewares.CurrentIdentity(c)

	filter, err := parseHolderFilter(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	reservations, err := ctrl.reservations.GetReservations(c.Request.Context(), filter, parsePageRequest(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservationViews(reservations, ident.Role))
}

// GetReservationByID handles retrieving one reservation. Access is
// limited to the staff the reservation belongs to.
func (ctrl *ReservationController) GetReservationByID(c *gin.Context) {
	ident, _ := middlewares.CurrentIdentity(c)

	id, err := parseIDParam(c, "reservation")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	reservation, err := ctrl.reservations.FindReservationByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	allowed, err := ctrl.canAccessHolder(c, ident, reservation.ServiceUID, reservation.DepartmentUID, reservation.EmployeeUID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if !allowed {
		utils.HandleError(c, utils.Forbidden("You cannot view this reservation."))
		return
	}

	c.JSON(http.StatusOK, reservationView(*reservation, ident.Role))
}

// GetReservationsByService handles listing a service's reservations
func (ctrl *ReservationController) GetReservationsByService(c *gin.Context) {
	ident, _ := middlewares.CurrentIdentity(c)

	serviceUID := c.Param("uid")
	if ident.Role == models.RoleService && serviceUID != ident.UID {
		utils.HandleError(c, utils.Forbidden("You can only view your own service's reservations."))
		return
	}

	ctrl.listReservations(c, ident, repository.HolderFilter{ServiceUID: serviceUID})
}

// GetReservationsByServiceCount handles counting a service's reservations
func (ctrl *ReservationController) GetReservationsByServiceCount(c *gin.Context) {
	ctrl.countReservations(c, repository.HolderFilter{ServiceUID: c.Param("uid")})
}

// GetReservationsByEmployee handles listing an employee's reservations.
// An employee sees their own; a service sees its employees'.
func (ctrl *ReservationController) GetReservationsByEmployee(c *gin.Context) {
	ident, _ := middlewares.CurrentIdentity(c)

	employeeUID := c.Param("uid")
	switch ident.Role {
	case models.RoleEmployee:
		if employeeUID != ident.UID {
			utils.HandleError(c, utils.Forbidden("You can only view your own reservations."))
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

	ctrl.listReservations(c, ident, repository.HolderFilter{EmployeeUID: employeeUID})
}

// GetReservationsByEmployeeCount handles counting an employee's reservations
func (ctrl *ReservationController) GetReservationsByEmployeeCount(c *gin.Context) {
	ctrl.countReservations(c, repository.HolderFilter{EmployeeUID: c.Param("uid")})
}

// GetReservationsByDepartment handles listing a department's reservations
func (ctrl *ReservationController) GetReservationsByDepartment(c *gin.Context) {
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

	ctrl.listReservations(c, ident, repository.HolderFilter{DepartmentUID: departmentUID})
}

// GetReservationsByDepartmentCount handles counting a department's reservations
func (ctrl *ReservationController) GetReservationsByDepartmentCount(c *gin.Context) {
	ctrl.countReservations(c, repository.HolderFilter{DepartmentUID: c.Param("uid")})
}

func (ctrl *ReservationController) listReservations(c *gin.Context, ident models.Identity, base repository.HolderFilter) {
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

	reservations, err := ctrl.reservations.GetReservations(c.Request.Context(), filter, parsePageRequest(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservationViews(reservations, ident.Role))
}

func (ctrl *ReservationController) countReservations(c *gin.Context, filter repository.HolderFilter) {
	count, err := ctrl.reservations.GetReservationsCount(c.Request.Context(), filter)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// canAccessHolder decides whether the caller may see a holder-scoped
// record: moderation staff always, a service for its own uid, an
// employee for their own uid or their department's.
func (ctrl *ReservationController) canAccessHolder(c *gin.Context, ident models.Identity, serviceUID, departmentUID, employeeUID string) (bool, error) {
	if ident.IsModerator() || ident.Role == models.RoleAnalyst {
		return true, nil
	}
	switch ident.Role {
	case models.RoleService:
		return serviceUID == ident.UID, nil
	case models.RoleEmployee:
		if employeeUID == ident.UID {
			return true, nil
		}
		return ctrl.directory.IsEmployeeInDepartment(c.Request.Context(), ident.UID, departmentUID)
	}
	return false, nil
}
