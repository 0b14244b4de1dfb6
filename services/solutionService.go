package services

import (
	"context"
	"log"

	"github.com/montanaflynn/stats"

	"cityfix-be/models"
	"cityfix-be/repository"
	"cityfix-be/utils"
)

// SolutionService closes the lifecycle: the employee who reserved an
// issue attaches a solution and the issue becomes SOLVED. The
// organizational snapshot is copied from the reservation, never taken
// from the caller's current claims.
type SolutionService struct {
	issues       IssueStore
	reservations ReservationStore
	solutions    SolutionStore
	storage      PhotoStorage
	notifier     Notifier
}

func NewSolutionService(issues IssueStore, reservations ReservationStore, solutions SolutionStore,
	storage PhotoStorage, notifier Notifier) *SolutionService {
	return &SolutionService{
		issues:       issues,
		reservations: reservations,
		solutions:    solutions,
		storage:      storage,
		notifier:     notifier,
	}
}

// CreateSolutionInput carries the validated fields of a new solution.
type CreateSolutionInput struct {
	IssueID          uint
	EmployeeUID      string
	Description      string
	Photo            []byte
	PhotoContentType string
	PhotoName        string
}

// CreateIssueSolution resolves a SOLVING issue. Only the employee who
// holds the reservation may solve it.
func (s *SolutionService) CreateIssueSolution(ctx context.Context, input CreateSolutionInput) (*models.IssueSolution, error) {
	if len(input.Photo) == 0 {
		return nil, utils.Validation("Photo is required.")
	}

	issue, err := s.issues.FindByID(ctx, input.IssueID)
	if err != nil {
		return nil, err
	}

	reservation, err := s.reservations.FindByIssueID(ctx, input.IssueID)
	if err != nil {
		if utils.IsKind(err, utils.KindNotFound) {
			return nil, utils.InvalidState("Issue is not reserved.")
		}
		return nil, err
	}
	if reservation.EmployeeUID != input.EmployeeUID {
		return nil, utils.Forbidden("You cannot add a solution to the issue you didn't reserve.")
	}

	photoURL, err := s.storage.Upload(ctx, input.Photo, input.PhotoContentType, input.PhotoName)
	if err != nil {
		return nil, err
	}

	solution := &models.IssueSolution{
		IssueID:       input.IssueID,
		ServiceUID:    reservation.ServiceUID,
		DepartmentUID: reservation.DepartmentUID,
		EmployeeUID:   reservation.EmployeeUID,
		Description:   input.Description,
		Photo:         photoURL,
	}
	if err := s.solutions.CreateWithTransition(ctx, solution); err != nil {
		// Nothing was written; take the uploaded photo back so a lost
		// race does not leave an orphaned object behind.
		if removeErr := s.storage.Remove(ctx, photoURL); removeErr != nil {
			log.Printf("Warning: failed to remove orphaned photo %s: %v", photoURL, removeErr)
		}
		return nil, err
	}

	s.notifyStatusChange(ctx, input.IssueID, issue.AuthorUID, models.StatusSolved)
	return solution, nil
}

// FindSolutionByID loads one solution.
func (s *SolutionService) FindSolutionByID(ctx context.Context, id uint) (*models.IssueSolution, error) {
	return s.solutions.FindByID(ctx, id)
}

// FindSolutionByIssueID loads the solution attached to an issue.
func (s *SolutionService) FindSolutionByIssueID(ctx context.Context, issueID uint) (*models.IssueSolution, error) {
	exists, err := s.issues.Exists(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, utils.NotFound("Issue is not found.")
	}

	return s.solutions.FindByIssueID(ctx, issueID)
}

// GetSolutions returns one filtered page of solutions.
func (s *SolutionService) GetSolutions(ctx context.Context, filter repository.HolderFilter, page repository.PageRequest) ([]models.IssueSolution, error) {
	return s.solutions.List(ctx, filter, page)
}

// GetSolutionsCount returns the number of solutions matching the filter.
func (s *SolutionService) GetSolutionsCount(ctx context.Context, filter repository.HolderFilter) (int64, error) {
	return s.solutions.Count(ctx, filter)
}

// GetAverageSolutionsTime returns the mean reservation-to-solution time
// in seconds for the filtered set, or 0 when nothing matches.
func (s *SolutionService) GetAverageSolutionsTime(ctx context.Context, filter repository.HolderFilter) (float64, error) {
	durations, err := s.solutions.ResolutionDurations(ctx, filter)
	if err != nil {
		return 0, err
	}
	if len(durations) == 0 {
		return 0, nil
	}

	mean, err := stats.Mean(durations)
	if err != nil {
		return 0, err
	}
	return mean, nil
}

func (s *SolutionService) notifyStatusChange(ctx context.Context, issueID uint, authorUID string, status models.IssueStatus) {
	notification := StatusNotification{IssueID: issueID, UserID: authorUID, Status: status}
	if err := s.notifier.PublishStatusChange(ctx, notification); err != nil {
		log.Printf("Warning: failed to publish status change for issue %d: %v", issueID, err)
	}
}
