package controllers

import (
	"testing"

	"cityfix-be/models"
)

func sampleReservation() models.IssueReservation {
	return models.IssueReservation{
		ID:            1,
		IssueID:       7,
		ServiceUID:    "svc-1",
		DepartmentUID: "dep-1",
		EmployeeUID:   "emp-1",
	}
}

func TestReservationViewByRole(t *testing.T) {
	reservation := sampleReservation()

	tests := []struct {
		role           models.Role
		wantService    bool
		wantDepartment bool
	}{
		{models.RoleService, true, true},
		{models.RoleAdmin, true, true},
		{models.RoleModerator, true, true},
		{models.RoleAnalyst, true, true},
		{models.RoleEmployee, false, true},
		{models.RoleResident, false, false},
	}

	for _, tt := range tests {
		view := reservationView(reservation, tt.role)

		_, hasService := view["serviceUid"]
		if hasService != tt.wantService {
			t.Errorf("role %s: serviceUid present = %v, want %v", tt.role, hasService, tt.wantService)
		}
		_, hasDepartment := view["departmentUid"]
		if hasDepartment != tt.wantDepartment {
			t.Errorf("role %s: departmentUid present = %v, want %v", tt.role, hasDepartment, tt.wantDepartment)
		}
		if view["issueId"] != uint(7) {
			t.Errorf("role %s: every view carries the issue id", tt.role)
		}
	}
}

func TestSolutionViewPublicShape(t *testing.T) {
	solution := models.IssueSolution{
		ID:            3,
		IssueID:       7,
		ServiceUID:    "svc-1",
		DepartmentUID: "dep-1",
		EmployeeUID:   "emp-1",
		Description:   "Pothole filled",
		Photo:         "https://cdn.example.com/issues/solved.jpg",
	}

	view := solutionView(solution, models.RoleResident)
	if _, ok := view["employeeUid"]; ok {
		t.Error("public view must not leak the employee uid")
	}
	if view["description"] != "Pothole filled" {
		t.Error("public view carries the solution description")
	}
}
