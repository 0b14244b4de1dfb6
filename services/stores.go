package services

import (
	"context"

	"cityfix-be/models"
	"cityfix-be/repository"
)

// Store interfaces consumed by the services. The repository package
// provides the production implementations; tests substitute fakes.

type IssueStore interface {
	Create(ctx context.Context, issue *models.Issue) error
	FindByID(ctx context.Context, id uint) (*models.Issue, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, filter repository.IssueFilter, page repository.PageRequest) ([]models.Issue, error)
	Count(ctx context.Context, filter repository.IssueFilter) (int64, error)
	ListByHolder(ctx context.Context, holder repository.HolderFilter, filter repository.IssueFilter, page repository.PageRequest) ([]models.Issue, error)
	CountByCategory(ctx context.Context) ([]repository.CategoryCount, error)
	TransitionStatus(ctx context.Context, id uint, from, to models.IssueStatus) error
}

type ReservationStore interface {
	CreateWithTransition(ctx context.Context, reservation *models.IssueReservation) error
	FindByID(ctx context.Context, id uint) (*models.IssueReservation, error)
	FindByIssueID(ctx context.Context, issueID uint) (*models.IssueReservation, error)
	List(ctx context.Context, filter repository.HolderFilter, page repository.PageRequest) ([]models.IssueReservation, error)
	Count(ctx context.Context, filter repository.HolderFilter) (int64, error)
}

type SolutionStore interface {
	CreateWithTransition(ctx context.Context, solution *models.IssueSolution) error
	FindByID(ctx context.Context, id uint) (*models.IssueSolution, error)
	FindByIssueID(ctx context.Context, issueID uint) (*models.IssueSolution, error)
	List(ctx context.Context, filter repository.HolderFilter, page repository.PageRequest) ([]models.IssueSolution, error)
	Count(ctx context.Context, filter repository.HolderFilter) (int64, error)
	ResolutionDurations(ctx context.Context, filter repository.HolderFilter) ([]float64, error)
}

type LikeStore interface {
	Create(ctx context.Context, like *models.Like) error
	Delete(ctx context.Context, issueID uint, residentUID string) error
	Exists(ctx context.Context, issueID uint, residentUID string) (bool, error)
	CountByIssueID(ctx context.Context, issueID uint) (int64, error)
	CountByIssueIDs(ctx context.Context, issueIDs []uint) (map[uint]int64, error)
	TopLiked(ctx context.Context, limit int) ([]repository.IssueLikeTotal, error)
}

type CategoryStore interface {
	Create(ctx context.Context, category *models.Category) error
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id uint) (*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uint) error
	CountIssuesReferencing(ctx context.Context, id uint) (int64, error)
}

type ModerationStore interface {
	CreateWithDecline(ctx context.Context, response *models.ModerationResponse) error
	FindByIssueID(ctx context.Context, issueID uint) (*models.ModerationResponse, error)
}

type Directory interface {
	GetDepartment(ctx context.Context, uid string) (*models.Department, error)
	GetEmployee(ctx context.Context, uid string) (*models.Employee, error)
	IsEmployeeInDepartment(ctx context.Context, employeeUID, departmentUID string) (bool, error)
	IsEmployeeInService(ctx context.Context, employeeUID, serviceUID string) (bool, error)
	IsServiceOwnerOfDepartment(ctx context.Context, serviceUID, departmentUID string) (bool, error)
}

// PhotoStorage is the blob storage collaborator. Upload returns the public
// locator of the stored object; Remove takes that locator back.
type PhotoStorage interface {
	Upload(ctx context.Context, data []byte, contentType, originalName string) (string, error)
	Remove(ctx context.Context, locator string) error
}

// StatusNotification is the payload published on every committed status
// change.
type StatusNotification struct {
	IssueID uint               `json:"issueId"`
	UserID  string             `json:"userId"`
	Status  models.IssueStatus `json:"status"`
}

// Notifier is the asynchronous notification channel. Publishing is
// best-effort: failures are surfaced to the caller for logging but never
// roll back the committed transition.
type Notifier interface {
	PublishStatusChange(ctx context.Context, notification StatusNotification) error
}
