package models

import (
	"time"
)

// ModerationResponse records why a moderator declined an issue.
type ModerationResponse struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	IssueID      uint      `gorm:"uniqueIndex;not null" json:"issueId"`
	Issue        Issue     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ModeratorUID string    `gorm:"size:128;not null" json:"moderatorUid"`
	Comment      string    `gorm:"size:1000;not null" json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}
