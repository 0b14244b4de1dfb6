package models

import (
	"time"
)

// Like is a resident's endorsement of an issue. The composite unique index
// makes the one-like-per-resident invariant a storage guarantee, so two
// concurrent likes cannot both land.
type Like struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	IssueID     uint      `gorm:"not null;index;uniqueIndex:idx_like_issue_resident" json:"issueId"`
	Issue       Issue     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ResidentUID string    `gorm:"size:128;not null;uniqueIndex:idx_like_issue_resident" json:"residentUid"`
	CreatedAt   time.Time `json:"createdAt"`
}
