package controllers

import (
	"github.com/gin-gonic/gin"

	"cityfix-be/models"
)

// Role-scoped projections. Each holder-bearing record is rendered
// through a dispatch table keyed by the caller's role, so adding a role
// means adding a table entry rather than another branch.

func issueView(issue models.Issue) gin.H {
	return gin.H{
		"id":          issue.ID,
		"status":      issue.Status,
		"title":       issue.Title,
		"description": issue.Description,
		"photo":       issue.Photo,
		"longitude":   issue.Longitude,
		"latitude":    issue.Latitude,
		"category": gin.H{
			"id":   issue.Category.ID,
			"name": issue.Category.Name,
		},
		"authorUid": issue.AuthorUID,
		"createdAt": issue.CreatedAt,
		"likes":     issue.LikeCount,
	}
}

func issueViews(issues []models.Issue) []gin.H {
	views := make([]gin.H, 0, len(issues))
	for _, issue := range issues {
		views = append(views, issueView(issue))
	}
	return views
}

var reservationProjections = map[models.Role]func(models.IssueReservation) gin.H{
	models.RoleService:   serviceReservationView,
	models.RoleAdmin:     serviceReservationView,
	models.RoleModerator: serviceReservationView,
	models.RoleAnalyst:   serviceReservationView,
	models.RoleEmployee:  departmentReservationView,
}

// reservationView renders a reservation for the caller's role. Roles
// without a table entry get the public shape.
func reservationView(reservation models.IssueReservation, role models.Role) gin.H {
	if project, ok := reservationProjections[role]; ok {
		return project(reservation)
	}
	return publicReservationView(reservation)
}

func reservationViews(reservations []models.IssueReservation, role models.Role) []gin.H {
	views := make([]gin.H, 0, len(reservations))
	for _, reservation := range reservations {
		views = append(views, reservationView(reservation, role))
	}
	return views
}

func serviceReservationView(reservation models.IssueReservation) gin.H {
	view := departmentReservationView(reservation)
	view["serviceUid"] = reservation.ServiceUID
	return view
}

func departmentReservationView(reservation models.IssueReservation) gin.H {
	view := publicReservationView(reservation)
	view["departmentUid"] = reservation.DepartmentUID
	view["employeeUid"] = reservation.EmployeeUID
	return view
}

func publicReservationView(reservation models.IssueReservation) gin.H {
	return gin.H{
		"id":        reservation.ID,
		"issueId":   reservation.IssueID,
		"createdAt": reservation.CreatedAt,
	}
}

var solutionProjections = map[models.Role]func(models.IssueSolution) gin.H{
	models.RoleService:   serviceSolutionView,
	models.RoleAdmin:     serviceSolutionView,
	models.RoleModerator: serviceSolutionView,
	models.RoleAnalyst:   serviceSolutionView,
	models.RoleEmployee:  departmentSolutionView,
}

// solutionView renders a solution for the caller's role.
func solutionView(solution models.IssueSolution, role models.Role) gin.H {
	if project, ok := solutionProjections[role]; ok {
		return project(solution)
	}
	return publicSolutionView(solution)
}

func solutionViews(solutions []models.IssueSolution, role models.Role) []gin.H {
	views := make([]gin.H, 0, len(solutions))
	for _, solution := range solutions {
		views = append(views, solutionView(solution, role))
	}
	return views
}

func serviceSolutionView(solution models.IssueSolution) gin.H {
	view := departmentSolutionView(solution)
	view["serviceUid"] = solution.ServiceUID
	return view
}

func departmentSolutionView(solution models.IssueSolution) gin.H {
	view := publicSolutionView(solution)
	view["departmentUid"] = solution.DepartmentUID
	view["employeeUid"] = solution.EmployeeUID
	return view
}

func publicSolutionView(solution models.IssueSolution) gin.H {
	return gin.H{
		"id":          solution.ID,
		"issueId":     solution.IssueID,
		"description": solution.Description,
		"photo":       solution.Photo,
		"createdAt":   solution.CreatedAt,
	}
}
