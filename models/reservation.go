package models

import (
	"time"
)

// IssueReservation is an exclusive claim by one employee on a PUBLISHED
// issue. The service/department/employee uids are snapshots of the claims
// at reservation time, not live references: they record who held the issue
// then, immune to later transfers.
type IssueReservation struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	IssueID       uint      `gorm:"uniqueIndex;not null" json:"issueId"`
	Issue         Issue     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ServiceUID    string    `gorm:"size:128;not null;index" json:"serviceUid"`
	DepartmentUID string    `gorm:"size:128;not null;index" json:"departmentUid"`
	EmployeeUID   string    `gorm:"size:128;not null;index" json:"employeeUid"`
	CreatedAt     time.Time `json:"createdAt"`
}
