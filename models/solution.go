package models

import (
	"time"
)

// IssueSolution closes a SOLVING issue. The holder uids are copied from the
// reservation, never re-derived from the caller.
type IssueSolution struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	IssueID       uint      `gorm:"uniqueIndex;not null" json:"issueId"`
	Issue         Issue     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Description   string    `gorm:"size:1000;not null" json:"description"`
	Photo         string    `gorm:"not null" json:"photo"`
	ServiceUID    string    `gorm:"size:128;not null;index" json:"serviceUid"`
	DepartmentUID string    `gorm:"size:128;not null;index" json:"departmentUid"`
	EmployeeUID   string    `gorm:"size:128;not null;index" json:"employeeUid"`
	CreatedAt     time.Time `json:"createdAt"`
}
