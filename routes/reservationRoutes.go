package routes

import (
	"github.com/gin-gonic/gin"

	"cityfix-be/controllers"
	"cityfix-be/middlewares"
	"cityfix-be/models"
)

// ReservationRoutes sets up the reservation routes
func ReservationRoutes(r *gin.Engine, reservations *controllers.ReservationController) {
	anyActive := middlewares.Authorize(middlewares.Policy{})
	staff := middlewares.Authorize(middlewares.Policy{
		Roles: []models.Role{models.RoleService, models.RoleEmployee, models.RoleModerator, models.RoleAdmin, models.RoleAnalyst},
	})
	oversight := middlewares.Authorize(middlewares.Policy{
		Roles: []models.Role{models.RoleModerator, models.RoleAdmin, models.RoleAnalyst},
	})

	reservation := r.Group("/api/v1/reservations", middlewares.AuthMiddleware())
	{
		reservation.GET("", oversight, reservations.GetReservations)
		reservation.GET("/:id", staff, reservations.GetReservationByID)

		reservation.GET("/service/:uid", staff, reservations.GetReservationsByService)
		reservation.GET("/service/:uid/count", anyActive, reservations.GetReservationsByServiceCount)
		reservation.GET("/employee/:uid", staff, reservations.GetReservationsByEmployee)
		reservation.GET("/employee/:uid/count", anyActive, reservations.GetReservationsByEmployeeCount)
		reservation.GET("/department/:uid", staff, reservations.GetReservationsByDepartment)
		reservation.GET("/department/:uid/count", anyActive, reservations.GetReservationsByDepartmentCount)
	}
}
