package models

import (
	"time"
)

// IssueStatus enum
type IssueStatus string

const (
	StatusModeration IssueStatus = "MODERATION"
	StatusPublished  IssueStatus = "PUBLISHED"
	StatusSolving    IssueStatus = "SOLVING"
	StatusSolved     IssueStatus = "SOLVED"
	StatusDeleted    IssueStatus = "DELETED"
)

// statusTransitions is the full lifecycle graph. A transition not listed
// here is illegal no matter who asks for it.
var statusTransitions = map[IssueStatus][]IssueStatus{
	StatusModeration: {StatusPublished, StatusDeleted},
	StatusPublished:  {StatusSolving},
	StatusSolving:    {StatusSolved},
}

// CanTransition reports whether the lifecycle graph allows moving from one
// status to another.
func CanTransition(from, to IssueStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ParseIssueStatus validates a raw query/body value against the enum.
func ParseIssueStatus(raw string) (IssueStatus, bool) {
	switch IssueStatus(raw) {
	case StatusModeration, StatusPublished, StatusSolving, StatusSolved, StatusDeleted:
		return IssueStatus(raw), true
	}
	return "", false
}

// PublicStatuses are the statuses visible to callers other than the issue
// author and moderators.
func PublicStatuses() []IssueStatus {
	return []IssueStatus{StatusPublished, StatusSolving, StatusSolved}
}

// Issue represents a civic issue reported by a resident. Category, author
// and coordinates are fixed at creation; only Status moves, and only along
// the lifecycle graph.
type Issue struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Status      IssueStatus `gorm:"type:varchar(16);not null;index" json:"status"`
	Longitude   float64     `gorm:"not null" json:"longitude"`
	Latitude    float64     `gorm:"not null" json:"latitude"`
	Photo       string      `gorm:"not null" json:"photo"`
	Title       string      `gorm:"size:64;not null" json:"title"`
	Description string      `gorm:"size:1000;not null" json:"description"`
	CategoryID  uint        `gorm:"not null;index" json:"categoryId"`
	Category    Category    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category"`
	AuthorUID   string      `gorm:"size:128;not null;index" json:"authorUid"`
	CreatedAt   time.Time   `gorm:"index" json:"createdAt"`

	// Derived at query time, never stored
	LikeCount int64 `gorm:"-" json:"likeCount"`
}
