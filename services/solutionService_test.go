package services

import (
	"context"
	"testing"

	"cityfix-be/models"
	"cityfix-be/repository"
	"cityfix-be/utils"
)

func TestCreateSolutionCopiesReservationSnapshot(t *testing.T) {
	issues := &fakeIssueStore{
		FindByIDFn: func(ctx context.Context, id uint) (*models.Issue, error) {
			return &models.Issue{ID: id, Status: models.StatusSolving, AuthorUID: "resident-1"}, nil
		},
	}
	reservations := &fakeReservationStore{
		FindByIssueIDFn: func(ctx context.Context, issueID uint) (*models.IssueReservation, error) {
			return &models.IssueReservation{
				IssueID:       issueID,
				ServiceUID:    "svc-1",
				DepartmentUID: "dep-1",
				EmployeeUID:   "emp-1",
			}, nil
		},
	}
	var created *models.IssueSolution
	solutions := &fakeSolutionStore{
		CreateWithTransitionFn: func(ctx context.Context, solution *models.IssueSolution) error {
			created = solution
			return nil
		},
	}
	storage := &fakeStorage{
		UploadFn: func(ctx context.Context, data []byte, contentType, originalName string) (string, error) {
			return "https://cdn.example.com/issues/solved.jpg", nil
		},
	}
	notifier := &fakeNotifier{}
	svc := NewSolutionService(issues, reservations, solutions, storage, notifier)

	_, err := svc.CreateIssueSolution(context.Background(), CreateSolutionInput{
		IssueID:     7,
		EmployeeUID: "emp-1",
		Description: "Pothole filled",
		Photo:       []byte{0x1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ServiceUID != "svc-1" || created.DepartmentUID != "dep-1" || created.EmployeeUID != "emp-1" {
		t.Errorf("snapshot not copied from the reservation: %+v", created)
	}
	if len(notifier.published) != 1 || notifier.published[0].Status != models.StatusSolved {
		t.Errorf("expected SOLVED notification, got %+v", notifier.published)
	}
}

func TestCreateSolutionWithoutReservation(t *testing.T) {
	issues := &fakeIssueStore{
		FindByIDFn: func(ctx context.Context, id uint) (*models.Issue, error) {
			return &models.Issue{ID: id, Status: models.StatusPublished}, nil
		},
	}
	reservations := &fakeReservationStore{
		FindByIssueIDFn: func(ctx context.Context, issueID uint) (*models.IssueReservation, error) {
			return nil, utils.NotFound("Reservation is not found.")
		},
	}
	svc := NewSolutionService(issues, reservations, &fakeSolutionStore{}, &fakeStorage{}, &fakeNotifier{})

	_, err := svc.CreateIssueSolution(context.Background(), CreateSolutionInput{
		IssueID:     7,
		EmployeeUID: "emp-1",
		Description: "Pothole filled",
		Photo:       []byte{0x1},
	})
	if !utils.IsKind(err, utils.KindInvalidState) {
		t.Fatalf("expected invalid state error, got %v", err)
	}
}

func TestCreateSolutionByDifferentEmployee(t *testing.T) {
	issues := &fakeIssueStore{
		FindByIDFn: func(ctx context.Context, id uint) (*models.Issue, error) {
			return &models.Issue{ID: id, Status: models.StatusSolving}, nil
		},
	}
	reservations := &fakeReservationStore{
		FindByIssueIDFn: func(ctx context.Context, issueID uint) (*models.IssueReservation, error) {
			return &models.IssueReservation{IssueID: issueID, EmployeeUID: "emp-1"}, nil
		},
	}
	svc := NewSolutionService(issues, reservations, &fakeSolutionStore{}, &fakeStorage{}, &fakeNotifier{})

	_, err := svc.CreateIssueSolution(context.Background(), CreateSolutionInput{
		IssueID:     7,
		EmployeeUID: "emp-2",
		Description: "Pothole filled",
		Photo:       []byte{0x1},
	})
	if !utils.IsKind(err, utils.KindForbidden) {
		t.Fatalf("expected forbidden error, got %v", err)
	}
}

func TestCreateSolutionLostRaceRemovesPhoto(t *testing.T) {
	issues := &fakeIssueStore{
		FindByIDFn: func(ctx context.Context, id uint) (*models.Issue, error) {
			return &models.Issue{ID: id, Status: models.StatusSolving}, nil
		},
	}
	reservations := &fakeReservationStore{
		FindByIssueIDFn: func(ctx context.Context, issueID uint) (*models.IssueReservation, error) {
			return &models.IssueReservation{IssueID: issueID, EmployeeUID: "emp-1"}, nil
		},
	}
	solutions := &fakeSolutionStore{
		CreateWithTransitionFn: func(ctx context.Context, solution *models.IssueSolution) error {
			return utils.InvalidState("Issue is already solved.")
		},
	}
	var removed string
	storage := &fakeStorage{
		UploadFn: func(ctx context.Context, data []byte, contentType, originalName string) (string, error) {
			return "https://cdn.example.com/issues/orphan.jpg", nil
		},
		RemoveFn: func(ctx context.Context, locator string) error {
			removed = locator
			return nil
		},
	}
	notifier := &fakeNotifier{}
	svc := NewSolutionService(issues, reservations, solutions, storage, notifier)

	_, err := svc.CreateIssueSolution(context.Background(), CreateSolutionInput{
		IssueID:     7,
		EmployeeUID: "emp-1",
		Description: "Pothole filled",
		Photo:       []byte{0x1},
	})
	if !utils.IsKind(err, utils.KindInvalidState) {
		t.Fatalf("expected invalid state error, got %v", err)
	}
	if removed != "https://cdn.example.com/issues/orphan.jpg" {
		t.Errorf("uploaded photo not removed after the failed transition, got %q", removed)
	}
	if len(notifier.published) != 0 {
		t.Error("no notification expected on a failed transition")
	}
}

func TestCreateSolutionRequiresPhoto(t *testing.T) {
	svc := NewSolutionService(&fakeIssueStore{}, &fakeReservationStore{}, &fakeSolutionStore{}, &fakeStorage{}, &fakeNotifier{})

	_, err := svc.CreateIssueSolution(context.Background(), CreateSolutionInput{
		IssueID:     7,
		EmployeeUID: "emp-1",
		Description: "Pothole filled",
	})
	if !utils.IsKind(err, utils.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAverageSolutionsTime(t *testing.T) {
	solutions := &fakeSolutionStore{
		ResolutionDurationsFn: func(ctx context.Context, filter repository.HolderFilter) ([]float64, error) {
			return []float64{3600, 7200}, nil
		},
	}
	svc := NewSolutionService(&fakeIssueStore{}, &fakeReservationStore{}, solutions, &fakeStorage{}, &fakeNotifier{})

	average, err := svc.GetAverageSolutionsTime(context.Background(), repository.HolderFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if average != 5400 {
		t.Errorf("expected 5400, got %f", average)
	}
}

func TestAverageSolutionsTimeEmpty(t *testing.T) {
	solutions := &fakeSolutionStore{
		ResolutionDurationsFn: func(ctx context.Context, filter repository.HolderFilter) ([]float64, error) {
			return nil, nil
		},
	}
	svc := NewSolutionService(&fakeIssueStore{}, &fakeReservationStore{}, solutions, &fakeStorage{}, &fakeNotifier{})

	average, err := svc.GetAverageSolutionsTime(context.Background(), repository.HolderFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if average != 0 {
		t.Errorf("expected 0 for an empty set, got %f", average)
	}
}
