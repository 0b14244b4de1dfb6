package services

import (
	"context"
	"log"

	"cityfix-be/models"
	"cityfix-be/repository"
	"cityfix-be/utils"
)

// ReservationService takes published issues into solving on behalf of an
// employee. The department snapshot is copied from the caller's claims at
// reservation time, so later staff moves never rewrite history.
type ReservationService struct {
	issues       IssueStore
	reservations ReservationStore
	directory    Directory
	notifier     Notifier
}

func NewReservationService(issues IssueStore, reservations ReservationStore, directory Directory, notifier Notifier) *ReservationService {
	return &ReservationService{
		issues:       issues,
		reservations: reservations,
		directory:    directory,
		notifier:     notifier,
	}
}

// CreateIssueReservation reserves a PUBLISHED issue for the calling
// employee. The employee's department must cover the issue's category.
func (s *ReservationService) CreateIssueReservation(ctx context.Context, issueID uint, ident models.Identity) (*models.IssueReservation, error) {
	issue, err := s.issues.FindByID(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if issue.Status != models.StatusPublished {
		return nil, utils.InvalidState("Issue is not published.")
	}

	department, err := s.directory.GetDepartment(ctx, ident.DepartmentUID)
	if err != nil {
		return nil, err
	}
	if !department.AllowsCategory(issue.CategoryID) {
		return nil, utils.Forbidden("Employee has no access to this category.")
	}

	reservation := &models.IssueReservation{
		IssueID:       issueID,
		ServiceUID:    ident.ServiceUID,
		DepartmentUID: ident.DepartmentUID,
		EmployeeUID:   ident.UID,
	}
	if err := s.reservations.CreateWithTransition(ctx, reservation); err != nil {
		return nil, err
	}

	s.notifyStatusChange(ctx, issueID, issue.AuthorUID, models.StatusSolving)
	return reservation, nil
}

// FindReservationByID loads one reservation.
func (s *ReservationService) FindReservationByID(ctx context.Context, id uint) (*models.IssueReservation, error) {
	return s.reservations.FindByID(ctx, id)
}

// FindReservationByIssueID loads the reservation attached to an issue.
func (s *ReservationService) FindReservationByIssueID(ctx context.Context, issueID uint) (*models.IssueReservation, error) {
	exists, err := s.issues.Exists(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, utils.NotFound("Issue is not found.")
	}

	return s.reservations.FindByIssueID(ctx, issueID)
}

// GetReservations returns one filtered page of reservations.
func (s *ReservationService) GetReservations(ctx context.Context, filter repository.HolderFilter, page repository.PageRequest) ([]models.IssueReservation, error) {
	return s.reservations.List(ctx, filter, page)
}

// GetReservationsCount returns the number of reservations matching the
// filter.
func (s *ReservationService) GetReservationsCount(ctx context.Context, filter repository.HolderFilter) (int64, error) {
	return s.reservations.Count(ctx, filter)
}

func (s *ReservationService) notifyStatusChange(ctx context.Context, issueID uint, authorUID string, status models.IssueStatus) {
	notification := StatusNotification{IssueID: issueID, UserID: authorUID, Status: status}
	if err := s.notifier.PublishStatusChange(ctx, notification); err != nil {
		log.Printf("Warning: failed to publish status change for issue %d: %v", issueID, err)
	}
}
